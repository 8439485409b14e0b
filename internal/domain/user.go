package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName is the name carried in tokens and challenge snapshots.
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type UserRepository interface {
	// CreateWithDefaults inserts the user, assigns the default role, and
	// creates an empty job-seeker profile in one transaction.
	CreateWithDefaults(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Activate(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	List(ctx context.Context, limit, offset int) ([]User, int64, error)
	ReplaceRoles(ctx context.Context, userID string, roles []string) error
}

// LoginResult is returned by Login: a pending 2FA challenge, never a token.
type LoginResult struct {
	RequiresTwoFactor bool   `json:"requires_two_factor"`
	ChallengeID       string `json:"challenge_id"`
	ExpiresInSeconds  int    `json:"expires_in_seconds"`
	// Code is populated outside production only, for test automation
	Code string `json:"code,omitempty"`
}

// SessionResult is returned once 2FA verification succeeds.
type SessionResult struct {
	Token string `json:"token"`
	User  struct {
		ID    string   `json:"id"`
		Email string   `json:"email"`
		Name  string   `json:"name"`
		Roles []string `json:"roles"`
	} `json:"user"`
}

type AuthUsecase interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*User, error)
	Activate(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyTwoFactor(ctx context.Context, challengeID, code string) (*SessionResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type AdminUsecase interface {
	ListUsers(ctx context.Context, page, pageSize int) ([]User, int64, error)
	AssignRoles(ctx context.Context, userID string, roles []string) error
	DeactivateUser(ctx context.Context, userID string) error
	ReactivateUser(ctx context.Context, userID string) error
}
