package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithDefaults(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockUserRepo) Activate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	users, _ := args.Get(0).([]domain.User)
	return users, int64(args.Int(1)), args.Error(2)
}
func (m *MockUserRepo) ReplaceRoles(ctx context.Context, userID string, roles []string) error {
	return m.Called(ctx, userID, roles).Error(0)
}

type authFixture struct {
	repo   *MockUserRepo
	tokens *token.Issuer
	hasher *security.Hasher
	uc     domain.AuthUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	logger.Init()

	repo := new(MockUserRepo)
	hasher := security.NewHasher(4) // minimum cost, tests only
	tokens := token.NewIssuer(token.Config{Secret: "test-secret"})
	challenges := security.NewChallengeStore()
	mailer := email.NewEmailService(&config.Config{}) // unconfigured, sends nothing
	secLog := security.InitSecurityLogger("test", "test")

	uc := usecase.NewAuthUsecase(repo, hasher, tokens, challenges, mailer, secLog, "http://localhost:3000", true)
	return &authFixture{repo: repo, tokens: tokens, hasher: hasher, uc: uc}
}

func (f *authFixture) activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := f.hasher.HashPassword(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
		PasswordHash: hash,
		Roles:        []string{domain.RoleJobSeeker},
		Active:       true,
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.On("CreateWithDefaults", mock.Anything, mock.Anything).
		Return(apperror.Conflict("An account with this email already exists"))

	_, err := f.uc.Register(context.Background(), "Alice", "Smith", "alice@example.com", "Password1")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestRegisterAssignsDefaults(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.On("CreateWithDefaults", mock.Anything, mock.Anything).Return(nil)

	user, err := f.uc.Register(context.Background(), "Alice", "Smith", "alice@example.com", "Password1")
	require.NoError(t, err)

	assert.Equal(t, []string{domain.RoleJobSeeker}, user.Roles)
	assert.False(t, user.Active)
	assert.NotEqual(t, "Password1", user.PasswordHash)
}

func TestRegisterPopulatesIdentity(t *testing.T) {
	f := newAuthFixture(t)

	var inserted *domain.User
	f.repo.On("CreateWithDefaults", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*domain.User)
		}).
		Return(nil)

	user, err := f.uc.Register(context.Background(), "Alice", "Smith", "alice@example.com", "Password1")
	require.NoError(t, err)

	// The repository inserts the ID into a UUID primary key column, so it
	// must be generated before the insert.
	require.NotNil(t, inserted)
	_, err = uuid.Parse(inserted.ID)
	assert.NoError(t, err)
	assert.Equal(t, inserted.ID, user.ID)
	assert.False(t, inserted.CreatedAt.IsZero())
	assert.False(t, inserted.UpdatedAt.IsZero())
}

func TestLoginIdentityIsNotDisclosed(t *testing.T) {
	f := newAuthFixture(t)

	active := f.activeUser(t, "Password1")
	inactive := f.activeUser(t, "Password1")
	inactive.Active = false

	f.repo.On("GetByEmail", mock.Anything, "missing@example.com").Return(nil, domain.ErrNotFound)
	f.repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(active, nil)
	f.repo.On("GetByEmail", mock.Anything, "inactive@example.com").Return(inactive, nil)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "missing@example.com", "Password1"},
		{"wrong password", "alice@example.com", "WrongPass1"},
		{"inactive account", "inactive@example.com", "Password1"},
	}

	var messages []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Login(context.Background(), tc.email, tc.password)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 401, appErr.Code)
			messages = append(messages, appErr.Message)
		})
	}

	// All three failure modes must read identically
	for _, msg := range messages {
		assert.Equal(t, messages[0], msg)
	}
}

func TestLoginOpensChallengeNotSession(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(f.activeUser(t, "Password1"), nil)

	result, err := f.uc.Login(context.Background(), "alice@example.com", "Password1")
	require.NoError(t, err)

	assert.True(t, result.RequiresTwoFactor)
	assert.NotEmpty(t, result.ChallengeID)
	assert.Equal(t, 300, result.ExpiresInSeconds)
	// echo enabled outside production
	assert.Len(t, result.Code, 6)
}

func TestTwoFactorFlow(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(f.activeUser(t, "Password1"), nil)

	login, err := f.uc.Login(context.Background(), "alice@example.com", "Password1")
	require.NoError(t, err)

	session, err := f.uc.VerifyTwoFactor(context.Background(), login.ChallengeID, login.Code)
	require.NoError(t, err)

	assert.Equal(t, "user-1", session.User.ID)
	assert.Equal(t, "Alice Smith", session.User.Name)
	assert.Equal(t, []string{domain.RoleJobSeeker}, session.User.Roles)

	claims, err := f.tokens.Verify(session.Token, token.PurposeSession)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)

	// The challenge is consumed: replaying the same code fails
	_, err = f.uc.VerifyTwoFactor(context.Background(), login.ChallengeID, login.Code)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestVerifyTwoFactorWrongCode(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(f.activeUser(t, "Password1"), nil)

	login, err := f.uc.Login(context.Background(), "alice@example.com", "Password1")
	require.NoError(t, err)

	wrong := "000000"
	if login.Code == wrong {
		wrong = "000001"
	}

	_, err = f.uc.VerifyTwoFactor(context.Background(), login.ChallengeID, wrong)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
	assert.Equal(t, "Invalid verification code", appErr.Message)

	// A wrong guess does not burn the challenge
	_, err = f.uc.VerifyTwoFactor(context.Background(), login.ChallengeID, login.Code)
	assert.NoError(t, err)
}

func TestActivateAccount(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.On("Activate", mock.Anything, "user-1").Return(nil)

	activation, err := f.tokens.Issue(token.PurposeActivation, "user-1", "alice@example.com", "Alice", nil)
	require.NoError(t, err)

	assert.NoError(t, f.uc.Activate(context.Background(), activation))
}

func TestActivateRejectsSessionToken(t *testing.T) {
	f := newAuthFixture(t)

	session, err := f.tokens.Issue(token.PurposeSession, "user-1", "alice@example.com", "Alice", nil)
	require.NoError(t, err)

	err = f.uc.Activate(context.Background(), session)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
	f.repo.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.On("GetByEmail", mock.Anything, "missing@example.com").Return(nil, domain.ErrNotFound)

	assert.NoError(t, f.uc.ForgotPassword(context.Background(), "missing@example.com"))
}

func TestResetPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.On("UpdatePassword", mock.Anything, "user-1", mock.Anything).Return(nil)

	reset, err := f.tokens.Issue(token.PurposePasswordReset, "user-1", "alice@example.com", "Alice", nil)
	require.NoError(t, err)

	assert.NoError(t, f.uc.ResetPassword(context.Background(), reset, "NewPassword1"))

	// Session tokens must not reset passwords
	session, err := f.tokens.Issue(token.PurposeSession, "user-1", "alice@example.com", "Alice", nil)
	require.NoError(t, err)
	err = f.uc.ResetPassword(context.Background(), session, "NewPassword1")
	require.Error(t, err)
}
