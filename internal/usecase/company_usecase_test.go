package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ownedCompany() *domain.Company {
	return &domain.Company{ID: 5, OwnerUserID: "owner-1", Name: "Acme"}
}

func TestUpdateCompanyOwnership(t *testing.T) {
	repo := new(MockCompanyRepo)
	uc := usecase.NewCompanyUsecase(repo)

	repo.On("GetByID", mock.Anything, int64(5)).Return(ownedCompany(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	update := &domain.Company{ID: 5, Name: "Acme Renamed"}

	// Owner may update
	require.NoError(t, uc.UpdateCompany(context.Background(), "owner-1", []string{domain.RoleEmployer}, update))
	// Ownership survives whatever the client sent
	assert.Equal(t, "owner-1", update.OwnerUserID)

	// Another employer may not
	err := uc.UpdateCompany(context.Background(), "intruder", []string{domain.RoleEmployer}, update)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
}

func TestUpdateCompanyAdminBypass(t *testing.T) {
	repo := new(MockCompanyRepo)
	uc := usecase.NewCompanyUsecase(repo)

	repo.On("GetByID", mock.Anything, int64(5)).Return(ownedCompany(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	update := &domain.Company{ID: 5, Name: "Moderated"}
	require.NoError(t, uc.UpdateCompany(context.Background(), "admin-1", []string{domain.RoleAdmin}, update))
	assert.Equal(t, "owner-1", update.OwnerUserID)
}

func TestDeleteCompanyAdminBypass(t *testing.T) {
	repo := new(MockCompanyRepo)
	uc := usecase.NewCompanyUsecase(repo)

	repo.On("GetByID", mock.Anything, int64(5)).Return(ownedCompany(), nil)
	repo.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := uc.DeleteCompany(context.Background(), "intruder", []string{domain.RoleJobSeeker}, 5)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	require.NoError(t, uc.DeleteCompany(context.Background(), "admin-1", []string{domain.RoleAdmin}, 5))
}
