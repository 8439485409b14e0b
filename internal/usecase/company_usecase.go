package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, userID string, company *domain.Company) error {
	company.OwnerUserID = userID
	return u.companyRepo.Create(ctx, company)
}

func (u *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) GetMyCompany(ctx context.Context, userID string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("You do not have a company profile yet")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) ListCompanies(ctx context.Context, page, pageSize int) ([]domain.Company, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.companyRepo.Fetch(ctx, limit, offset)
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, userID string, roles []string, company *domain.Company) error {
	existing, err := u.companyRepo.GetByID(ctx, company.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return err
	}
	if existing.OwnerUserID != userID && !isAdmin(roles) {
		return apperror.Forbidden("You can only modify your own company")
	}

	company.OwnerUserID = existing.OwnerUserID
	return u.companyRepo.Update(ctx, company)
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, userID string, roles []string, id int64) error {
	existing, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return err
	}
	if existing.OwnerUserID != userID && !isAdmin(roles) {
		return apperror.Forbidden("You can only delete your own company")
	}
	return u.companyRepo.Delete(ctx, id)
}

func isAdmin(roles []string) bool {
	for _, role := range roles {
		if role == domain.RoleAdmin {
			return true
		}
	}
	return false
}

// paginate converts 1-based page params to limit/offset with bounds.
func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize
}
