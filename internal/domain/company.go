package domain

import (
	"context"
	"time"
)

type Company struct {
	ID          int64     `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Industry    *string   `json:"industry,omitempty"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	Location    *string   `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	GetByOwnerUserID(ctx context.Context, userID string) (*Company, error)
	Fetch(ctx context.Context, limit, offset int) ([]Company, int64, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id int64) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, userID string, company *Company) error
	GetCompany(ctx context.Context, id int64) (*Company, error)
	GetMyCompany(ctx context.Context, userID string) (*Company, error)
	ListCompanies(ctx context.Context, page, pageSize int) ([]Company, int64, error)
	// Update and delete enforce ownership; admins bypass the owner check.
	UpdateCompany(ctx context.Context, userID string, roles []string, company *Company) error
	DeleteCompany(ctx context.Context, userID string, roles []string, id int64) error
}
