package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type adminUsecase struct {
	userRepo domain.UserRepository
}

func NewAdminUsecase(userRepo domain.UserRepository) domain.AdminUsecase {
	return &adminUsecase{userRepo: userRepo}
}

func (u *adminUsecase) ListUsers(ctx context.Context, page, pageSize int) ([]domain.User, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.userRepo.List(ctx, limit, offset)
}

func (u *adminUsecase) AssignRoles(ctx context.Context, userID string, roles []string) error {
	if len(roles) == 0 {
		return apperror.BadRequest("At least one role is required")
	}
	for _, role := range roles {
		switch role {
		case domain.RoleAdmin, domain.RoleEmployer, domain.RoleJobSeeker:
		default:
			return apperror.BadRequest("Unknown role: " + role)
		}
	}

	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return u.userRepo.ReplaceRoles(ctx, userID, roles)
}

func (u *adminUsecase) DeactivateUser(ctx context.Context, userID string) error {
	return u.setActive(ctx, userID, false)
}

func (u *adminUsecase) ReactivateUser(ctx context.Context, userID string) error {
	return u.setActive(ctx, userID, true)
}

func (u *adminUsecase) setActive(ctx context.Context, userID string, active bool) error {
	if err := u.userRepo.SetActive(ctx, userID, active); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}
