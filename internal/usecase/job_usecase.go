package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, companyRepo: companyRepo}
}

// ownCompany resolves the caller's company; job ownership is derived from
// company ownership, never from a client-supplied company_id.
func (u *jobUsecase) ownCompany(ctx context.Context, userID string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Create a company profile before managing jobs")
		}
		return nil, err
	}
	return company, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	company, err := u.ownCompany(ctx, userID)
	if err != nil {
		return err
	}

	job.CompanyID = company.ID
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}
	if !validJobStatus(job.Status) {
		return apperror.BadRequest("Invalid job status")
	}
	if job.SalaryMax > 0 && job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("salary_min cannot exceed salary_max")
	}
	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetailsWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobsWithCompany(ctx context.Context, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.FetchWithCompany(ctx, limit, offset)
}

func (u *jobUsecase) ListPublicActiveJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.FetchPublicActiveJobs(ctx, limit, offset)
}

func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) ([]domain.Job, int64, error) {
	company, err := u.ownCompany(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.FetchByCompanyID(ctx, company.ID, limit, offset)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	company, err := u.ownCompany(ctx, userID)
	if err != nil {
		return err
	}
	if existing.CompanyID != company.ID {
		return apperror.Forbidden("You can only modify jobs posted by your company")
	}

	job.CompanyID = existing.CompanyID
	if job.Status == "" {
		job.Status = existing.Status
	}
	if !validJobStatus(job.Status) {
		return apperror.BadRequest("Invalid job status")
	}
	if job.SalaryMax > 0 && job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("salary_min cannot exceed salary_max")
	}
	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	company, err := u.ownCompany(ctx, userID)
	if err != nil {
		return err
	}
	if existing.CompanyID != company.ID {
		return apperror.Forbidden("You can only delete jobs posted by your company")
	}
	return u.jobRepo.Delete(ctx, id)
}

func validJobStatus(status string) bool {
	switch status {
	case domain.JobStatusActive, domain.JobStatusClosed, domain.JobStatusDraft:
		return true
	}
	return false
}
