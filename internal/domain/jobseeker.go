package domain

import (
	"context"
	"time"
)

// JobSeekerProfile holds the personal details of a job seeker
type JobSeekerProfile struct {
	UserID        string    `json:"user_id"`
	Headline      *string   `json:"headline,omitempty"`
	Bio           *string   `json:"bio,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	BirthDate     *string   `json:"birth_date,omitempty"` // YYYY-MM-DD
	Gender        *string   `json:"gender,omitempty"`
	Nationality   *string   `json:"nationality,omitempty"`
	MaritalStatus *string   `json:"marital_status,omitempty"`
	Skills        []string  `json:"skills"`
	PhotoURL      *string   `json:"photo_url,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Education struct {
	ID           int64   `json:"id"`
	UserID       string  `json:"user_id"`
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy *string `json:"field_of_study,omitempty"`
	StartYear    int     `json:"start_year"`
	EndYear      *int    `json:"end_year,omitempty"`
	Description  *string `json:"description,omitempty"`
}

type Experience struct {
	ID          int64   `json:"id"`
	UserID      string  `json:"user_id"`
	CompanyName string  `json:"company_name"`
	JobTitle    string  `json:"job_title"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     *string `json:"end_date,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Reference struct {
	ID       int64   `json:"id"`
	UserID   string  `json:"user_id"`
	Name     string  `json:"name"`
	Relation string  `json:"relation"`
	Company  *string `json:"company,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type Address struct {
	ID         int64   `json:"id"`
	UserID     string  `json:"user_id"`
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	Province   *string `json:"province,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    string  `json:"country"`
	IsPrimary  bool    `json:"is_primary"`
}

// JobSeekerFullProfile aggregates profile data for the detail endpoint
type JobSeekerFullProfile struct {
	Profile     *JobSeekerProfile `json:"profile"`
	Educations  []Education       `json:"educations"`
	Experiences []Experience      `json:"experiences"`
	References  []Reference       `json:"references"`
	Addresses   []Address         `json:"addresses"`
}

type JobSeekerRepository interface {
	GetProfile(ctx context.Context, userID string) (*JobSeekerProfile, error)
	UpsertProfile(ctx context.Context, profile *JobSeekerProfile) error

	ListEducations(ctx context.Context, userID string) ([]Education, error)
	CreateEducation(ctx context.Context, edu *Education) error
	UpdateEducation(ctx context.Context, edu *Education) error
	DeleteEducation(ctx context.Context, userID string, id int64) error

	ListExperiences(ctx context.Context, userID string) ([]Experience, error)
	CreateExperience(ctx context.Context, exp *Experience) error
	UpdateExperience(ctx context.Context, exp *Experience) error
	DeleteExperience(ctx context.Context, userID string, id int64) error

	ListReferences(ctx context.Context, userID string) ([]Reference, error)
	CreateReference(ctx context.Context, ref *Reference) error
	UpdateReference(ctx context.Context, ref *Reference) error
	DeleteReference(ctx context.Context, userID string, id int64) error

	ListAddresses(ctx context.Context, userID string) ([]Address, error)
	CreateAddress(ctx context.Context, addr *Address) error
	UpdateAddress(ctx context.Context, addr *Address) error
	DeleteAddress(ctx context.Context, userID string, id int64) error
}

type JobSeekerUsecase interface {
	GetFullProfile(ctx context.Context, userID string) (*JobSeekerFullProfile, error)
	UpdateProfile(ctx context.Context, profile *JobSeekerProfile) error

	AddEducation(ctx context.Context, edu *Education) error
	UpdateEducation(ctx context.Context, edu *Education) error
	DeleteEducation(ctx context.Context, userID string, id int64) error

	AddExperience(ctx context.Context, exp *Experience) error
	UpdateExperience(ctx context.Context, exp *Experience) error
	DeleteExperience(ctx context.Context, userID string, id int64) error

	AddReference(ctx context.Context, ref *Reference) error
	UpdateReference(ctx context.Context, ref *Reference) error
	DeleteReference(ctx context.Context, userID string, id int64) error

	AddAddress(ctx context.Context, addr *Address) error
	UpdateAddress(ctx context.Context, addr *Address) error
	DeleteAddress(ctx context.Context, userID string, id int64) error
}
