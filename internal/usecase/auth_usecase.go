package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/token"

	"github.com/google/uuid"
)

// The same message covers unknown email, wrong password, and inactive
// account, so login responses never reveal which one it was.
const invalidCredentialsMsg = "Invalid email or password"

type authUsecase struct {
	userRepo    domain.UserRepository
	hasher      *security.Hasher
	tokens      *token.Issuer
	challenges  *security.ChallengeStore
	mailer      *email.EmailService
	secLog      *security.SecurityLogger
	frontendURL string
	echoCodes   bool
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	hasher *security.Hasher,
	tokens *token.Issuer,
	challenges *security.ChallengeStore,
	mailer *email.EmailService,
	secLog *security.SecurityLogger,
	frontendURL string,
	echoCodes bool,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		hasher:      hasher,
		tokens:      tokens,
		challenges:  challenges,
		mailer:      mailer,
		secLog:      secLog,
		frontendURL: frontendURL,
		echoCodes:   echoCodes,
	}
}

func (u *authUsecase) Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error) {
	hash, err := u.hasher.HashPassword(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		Roles:        []string{domain.RoleJobSeeker},
		Active:       false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.CreateWithDefaults(ctx, user); err != nil {
		return nil, err
	}

	// The activation email is best effort: a delivery failure must not roll
	// back the registration. The user can request a new link later.
	activationToken, err := u.tokens.Issue(token.PurposeActivation, user.ID, user.Email, user.DisplayName(), nil)
	if err != nil {
		logger.Log.Error("failed to issue activation token", "error", err, "user_id", user.ID)
		return user, nil
	}
	if u.mailer.IsConfigured() {
		link := fmt.Sprintf("%s/activate?token=%s", u.frontendURL, activationToken)
		if err := u.mailer.SendActivationLink(user.Email, user.DisplayName(), link); err != nil {
			logger.Log.Error("failed to send activation email", "error", err, "user_id", user.ID)
		}
	}

	return user, nil
}

func (u *authUsecase) Activate(ctx context.Context, tokenString string) error {
	claims, err := u.tokens.Verify(tokenString, token.PurposeActivation)
	if err != nil {
		return apperror.Unauthorized("Invalid or expired activation link")
	}

	if err := u.userRepo.Activate(ctx, claims.Subject); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Unauthorized("Invalid or expired activation link")
		}
		return err
	}

	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventAccountActivated,
		SubjectType:  "user_id",
		SubjectValue: claims.Subject,
	})
	return nil
}

// Login checks credentials and, on success, opens a two-factor challenge.
// It never returns a session token; the caller must verify the emailed code.
func (u *authUsecase) Login(ctx context.Context, emailAddr, password string) (*domain.LoginResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			u.secLog.LogLoginFailed(ctx, emailAddr, "", "", "unknown_email")
			return nil, apperror.Unauthorized(invalidCredentialsMsg)
		}
		return nil, err
	}

	if err := u.hasher.ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if errors.Is(err, security.ErrPasswordMismatch) {
			u.secLog.LogLoginFailed(ctx, emailAddr, "", "", "wrong_password")
			return nil, apperror.Unauthorized(invalidCredentialsMsg)
		}
		return nil, apperror.Internal(err)
	}

	if !user.Active {
		u.secLog.LogLoginFailed(ctx, emailAddr, "", "", "inactive_account")
		return nil, apperror.Unauthorized(invalidCredentialsMsg)
	}

	ch, err := u.challenges.Create(user.ID, user.Email, user.DisplayName(), user.Roles)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventTwoFactorIssued,
		SubjectType:  "email",
		SubjectValue: security.MaskEmail(user.Email),
	})

	if u.mailer.IsConfigured() {
		if err := u.mailer.SendTwoFactorCode(user.Email, user.DisplayName(), ch.Code); err != nil {
			logger.Log.Error("failed to send 2fa code", "error", err, "user_id", user.ID)
		}
	}

	result := &domain.LoginResult{
		RequiresTwoFactor: true,
		ChallengeID:       ch.ID,
		ExpiresInSeconds:  int(security.ChallengeTTL.Seconds()),
	}
	if u.echoCodes {
		result.Code = ch.Code
	}
	return result, nil
}

func (u *authUsecase) VerifyTwoFactor(ctx context.Context, challengeID, code string) (*domain.SessionResult, error) {
	ch, err := u.challenges.Consume(challengeID, code)
	if err != nil {
		u.secLog.LogTwoFactorFailed(ctx, challengeID, "", "", err.Error())
		switch {
		case errors.Is(err, security.ErrChallengeExpired):
			return nil, apperror.Unauthorized("Challenge expired, please log in again")
		case errors.Is(err, security.ErrCodeMismatch):
			return nil, apperror.Unauthorized("Invalid verification code")
		default:
			return nil, apperror.Unauthorized("Invalid or expired challenge")
		}
	}

	sessionToken, err := u.tokens.Issue(token.PurposeSession, ch.UserID, ch.Email, ch.Name, ch.Roles)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventLoginSuccess,
		SubjectType:  "user_id",
		SubjectValue: ch.UserID,
	})

	result := &domain.SessionResult{Token: sessionToken}
	result.User.ID = ch.UserID
	result.User.Email = ch.Email
	result.User.Name = ch.Name
	result.User.Roles = ch.Roles
	return result, nil
}

// ForgotPassword always reports success to the caller so the endpoint
// cannot be used to probe which emails are registered.
func (u *authUsecase) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := u.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	resetToken, err := u.tokens.Issue(token.PurposePasswordReset, user.ID, user.Email, user.DisplayName(), nil)
	if err != nil {
		logger.Log.Error("failed to issue reset token", "error", err, "user_id", user.ID)
		return nil
	}

	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventPasswordResetIssued,
		SubjectType:  "email",
		SubjectValue: security.MaskEmail(user.Email),
	})

	if u.mailer.IsConfigured() {
		link := fmt.Sprintf("%s/reset-password?token=%s", u.frontendURL, resetToken)
		if err := u.mailer.SendPasswordResetLink(user.Email, user.DisplayName(), link); err != nil {
			logger.Log.Error("failed to send reset email", "error", err, "user_id", user.ID)
		}
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	claims, err := u.tokens.Verify(tokenString, token.PurposePasswordReset)
	if err != nil {
		return apperror.Unauthorized("Invalid or expired reset link")
	}

	hash, err := u.hasher.HashPassword(newPassword)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := u.userRepo.UpdatePassword(ctx, claims.Subject, hash); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Unauthorized("Invalid or expired reset link")
		}
		return err
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
