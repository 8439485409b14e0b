package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	apps, _ := args.Get(0).([]domain.Application)
	return apps, args.Error(1)
}
func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	apps, _ := args.Get(0).([]domain.Application)
	return apps, args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, jobID int64, userID string) (bool, error) {
	args := m.Called(ctx, jobID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}
func (m *MockJobRepo) FetchWithCompany(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	jobs, _ := args.Get(0).([]domain.JobWithCompany)
	return jobs, int64(args.Int(1)), args.Error(2)
}
func (m *MockJobRepo) FetchPublicActiveJobs(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	jobs, _ := args.Get(0).([]domain.JobWithCompany)
	return jobs, int64(args.Int(1)), args.Error(2)
}
func (m *MockJobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, companyID, limit, offset)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, int64(args.Int(1)), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) GetByOwnerUserID(ctx context.Context, userID string) (*domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Company, int64, error) {
	args := m.Called(ctx, limit, offset)
	companies, _ := args.Get(0).([]domain.Company)
	return companies, int64(args.Int(1)), args.Error(2)
}
func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	return m.Called(ctx, doc).Error(0)
}
func (m *MockDocumentRepo) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Document, error) {
	args := m.Called(ctx, userID)
	docs, _ := args.Get(0).([]domain.Document)
	return docs, args.Error(1)
}
func (m *MockDocumentRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepo) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	items, _ := args.Get(0).([]domain.Notification)
	return items, int64(args.Int(1)), args.Error(2)
}
func (m *MockNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return int64(args.Int(0)), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *MockNotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type appFixture struct {
	apps      *MockApplicationRepo
	jobs      *MockJobRepo
	companies *MockCompanyRepo
	docs      *MockDocumentRepo
	notifs    *MockNotificationRepo
	uc        domain.ApplicationUsecase
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	logger.Init()

	f := &appFixture{
		apps:      new(MockApplicationRepo),
		jobs:      new(MockJobRepo),
		companies: new(MockCompanyRepo),
		docs:      new(MockDocumentRepo),
		notifs:    new(MockNotificationRepo),
	}
	notifUC := usecase.NewNotificationUsecase(f.notifs)
	f.uc = usecase.NewApplicationUsecase(f.apps, f.jobs, f.companies, f.docs, notifUC)
	return f
}

func activeJob() *domain.Job {
	return &domain.Job{ID: 10, CompanyID: 5, Title: "Backend Engineer", Status: domain.JobStatusActive}
}

func TestApplyToJob(t *testing.T) {
	f := newAppFixture(t)

	f.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(), nil)
	f.apps.On("CheckExists", mock.Anything, int64(10), "seeker-1").Return(false, nil)
	f.docs.On("GetByID", mock.Anything, int64(3)).Return(&domain.Document{ID: 3, UserID: "seeker-1", Kind: domain.DocumentKindCV}, nil)
	f.apps.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.companies.On("GetByID", mock.Anything, int64(5)).Return(&domain.Company{ID: 5, OwnerUserID: "owner-1"}, nil)
	f.notifs.On("Create", mock.Anything, mock.Anything).Return(nil)

	app, err := f.uc.ApplyToJob(context.Background(), "seeker-1", 10, 3, "Hello")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
	require.NotNil(t, app.CoverLetter)
	assert.Equal(t, "Hello", *app.CoverLetter)
}

func TestApplyToClosedJob(t *testing.T) {
	f := newAppFixture(t)

	job := activeJob()
	job.Status = domain.JobStatusClosed
	f.jobs.On("GetByID", mock.Anything, int64(10)).Return(job, nil)

	_, err := f.uc.ApplyToJob(context.Background(), "seeker-1", 10, 3, "")
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestApplyTwice(t *testing.T) {
	f := newAppFixture(t)

	f.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(), nil)
	f.apps.On("CheckExists", mock.Anything, int64(10), "seeker-1").Return(true, nil)

	_, err := f.uc.ApplyToJob(context.Background(), "seeker-1", 10, 3, "")
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestApplyWithForeignDocument(t *testing.T) {
	f := newAppFixture(t)

	f.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(), nil)
	f.apps.On("CheckExists", mock.Anything, int64(10), "seeker-1").Return(false, nil)
	f.docs.On("GetByID", mock.Anything, int64(3)).Return(&domain.Document{ID: 3, UserID: "someone-else"}, nil)

	_, err := f.uc.ApplyToJob(context.Background(), "seeker-1", 10, 3, "")
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	f.apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateApplicationStatusTransitions(t *testing.T) {
	f := newAppFixture(t)

	f.apps.On("GetByID", mock.Anything, int64(7)).Return(&domain.Application{
		ID: 7, JobID: 10, UserID: "seeker-1", Status: domain.ApplicationStatusApplied,
	}, nil)
	f.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(), nil)
	f.companies.On("GetByOwnerUserID", mock.Anything, "owner-1").Return(&domain.Company{ID: 5, OwnerUserID: "owner-1"}, nil)
	f.apps.On("UpdateStatus", mock.Anything, int64(7), domain.ApplicationStatusReviewed).Return(nil)
	f.notifs.On("Create", mock.Anything, mock.Anything).Return(nil)

	// applied → reviewed is allowed
	require.NoError(t, f.uc.UpdateApplicationStatus(context.Background(), "owner-1", 7, domain.ApplicationStatusReviewed))

	// applied → accepted skips review and is rejected
	err := f.uc.UpdateApplicationStatus(context.Background(), "owner-1", 7, domain.ApplicationStatusAccepted)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestUpdateApplicationStatusForeignJob(t *testing.T) {
	f := newAppFixture(t)

	f.apps.On("GetByID", mock.Anything, int64(7)).Return(&domain.Application{
		ID: 7, JobID: 10, Status: domain.ApplicationStatusApplied,
	}, nil)
	f.jobs.On("GetByID", mock.Anything, int64(10)).Return(activeJob(), nil)
	f.companies.On("GetByOwnerUserID", mock.Anything, "intruder").Return(&domain.Company{ID: 99, OwnerUserID: "intruder"}, nil)

	err := f.uc.UpdateApplicationStatus(context.Background(), "intruder", 7, domain.ApplicationStatusReviewed)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	f.apps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
