package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (owner_user_id, name, description, website, industry, logo_url, location, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW()) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		company.OwnerUserID, company.Name, company.Description, company.Website,
		company.Industry, company.LogoURL, company.Location,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You already have a company profile")
		}
		return err
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT id, owner_user_id, name, description, website, industry, logo_url, location, created_at, updated_at
	          FROM companies WHERE id = $1`
	var company domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID, &company.OwnerUserID, &company.Name, &company.Description,
		&company.Website, &company.Industry, &company.LogoURL, &company.Location,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) GetByOwnerUserID(ctx context.Context, userID string) (*domain.Company, error) {
	query := `SELECT id, owner_user_id, name, description, website, industry, logo_url, location, created_at, updated_at
	          FROM companies WHERE owner_user_id = $1`
	var company domain.Company
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&company.ID, &company.OwnerUserID, &company.Name, &company.Description,
		&company.Website, &company.Industry, &company.LogoURL, &company.Location,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Company, int64, error) {
	query := `SELECT id, owner_user_id, name, description, website, industry, logo_url, location, created_at, updated_at
	          FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(
			&company.ID, &company.OwnerUserID, &company.Name, &company.Description,
			&company.Website, &company.Industry, &company.LogoURL, &company.Location,
			&company.CreatedAt, &company.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		companies = append(companies, company)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET
		name = $2,
		description = $3,
		website = $4,
		industry = $5,
		logo_url = $6,
		location = $7,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Website,
		company.Industry, company.LogoURL, company.Location,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
