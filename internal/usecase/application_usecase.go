package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	appRepo       domain.ApplicationRepository
	jobRepo       domain.JobRepository
	companyRepo   domain.CompanyRepository
	documentRepo  domain.DocumentRepository
	notifications domain.NotificationUsecase
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	companyRepo domain.CompanyRepository,
	documentRepo domain.DocumentRepository,
	notifications domain.NotificationUsecase,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		companyRepo:   companyRepo,
		documentRepo:  documentRepo,
		notifications: notifications,
	}
}

func (u *applicationUsecase) ApplyToJob(ctx context.Context, userID string, jobID, cvDocumentID int64, coverLetter string) (*domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("This job is no longer accepting applications")
	}

	exists, err := u.appRepo.CheckExists(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	// The CV must be one of the applicant's own documents.
	doc, err := u.documentRepo.GetByID(ctx, cvDocumentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("CV document not found")
		}
		return nil, err
	}
	if doc.UserID != userID {
		return nil, apperror.Forbidden("You can only attach your own documents")
	}

	app := &domain.Application{
		JobID:        jobID,
		UserID:       userID,
		CvDocumentID: cvDocumentID,
		Status:       domain.ApplicationStatusApplied,
	}
	if coverLetter != "" {
		app.CoverLetter = &coverLetter
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	// Notify the job owner. Best effort: never fails the application.
	if company, err := u.companyRepo.GetByID(ctx, job.CompanyID); err == nil {
		u.notifications.Notify(ctx, company.OwnerUserID,
			"New application received",
			fmt.Sprintf("A candidate applied to %q.", job.Title))
	}

	return app, nil
}

func (u *applicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	return u.appRepo.GetByUserID(ctx, userID)
}

func (u *applicationUsecase) ListByJobID(ctx context.Context, userID string, jobID int64) ([]domain.Application, error) {
	if err := u.requireJobOwnership(ctx, userID, jobID); err != nil {
		return nil, err
	}
	return u.appRepo.GetByJobID(ctx, jobID)
}

func (u *applicationUsecase) UpdateApplicationStatus(ctx context.Context, userID string, applicationID int64, status string) error {
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return err
	}
	if err := u.requireJobOwnership(ctx, userID, app.JobID); err != nil {
		return err
	}

	if !transitionAllowed(app.Status, status) {
		return apperror.BadRequest(fmt.Sprintf("Cannot change status from %s to %s", app.Status, status))
	}
	if err := u.appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return err
	}

	u.notifications.Notify(ctx, app.UserID,
		"Application status updated",
		fmt.Sprintf("Your application is now %s.", status))
	return nil
}

// requireJobOwnership verifies the job belongs to the caller's company.
func (u *applicationUsecase) requireJobOwnership(ctx context.Context, userID string, jobID int64) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Forbidden("You can only manage applications for your own jobs")
		}
		return err
	}
	if job.CompanyID != company.ID {
		return apperror.Forbidden("You can only manage applications for your own jobs")
	}
	return nil
}

func transitionAllowed(from, to string) bool {
	for _, next := range domain.ValidStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
