package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied  = "applied"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ValidStatusTransitions describes the allowed application lifecycle:
// applied → reviewed → accepted / rejected
var ValidStatusTransitions = map[string][]string{
	ApplicationStatusApplied:  {ApplicationStatusReviewed},
	ApplicationStatusReviewed: {ApplicationStatusAccepted, ApplicationStatusRejected},
}

// Application represents a job application from a job seeker
type Application struct {
	ID           int64     `json:"id"`
	JobID        int64     `json:"job_id"`
	UserID       string    `json:"user_id"`
	CvDocumentID int64     `json:"cv_document_id"`
	CoverLetter  *string   `json:"cover_letter,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined data for list responses
	ApplicantName *string `json:"applicant_name,omitempty"`
	JobTitle      *string `json:"job_title,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByUserID(ctx context.Context, userID string) ([]Application, error)
	CheckExists(ctx context.Context, jobID int64, userID string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Job seeker operations
	ApplyToJob(ctx context.Context, userID string, jobID, cvDocumentID int64, coverLetter string) (*Application, error)
	GetMyApplications(ctx context.Context, userID string) ([]Application, error)

	// Employer operations
	ListByJobID(ctx context.Context, userID string, jobID int64) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, userID string, applicationID int64, status string) error
}
