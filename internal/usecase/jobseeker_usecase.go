package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobSeekerUsecase struct {
	repo domain.JobSeekerRepository
}

func NewJobSeekerUsecase(repo domain.JobSeekerRepository) domain.JobSeekerUsecase {
	return &jobSeekerUsecase{repo: repo}
}

func (u *jobSeekerUsecase) GetFullProfile(ctx context.Context, userID string) (*domain.JobSeekerFullProfile, error) {
	profile, err := u.repo.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	educations, err := u.repo.ListEducations(ctx, userID)
	if err != nil {
		return nil, err
	}
	experiences, err := u.repo.ListExperiences(ctx, userID)
	if err != nil {
		return nil, err
	}
	references, err := u.repo.ListReferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	addresses, err := u.repo.ListAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.JobSeekerFullProfile{
		Profile:     profile,
		Educations:  educations,
		Experiences: experiences,
		References:  references,
		Addresses:   addresses,
	}, nil
}

func (u *jobSeekerUsecase) UpdateProfile(ctx context.Context, profile *domain.JobSeekerProfile) error {
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	return u.repo.UpsertProfile(ctx, profile)
}

func (u *jobSeekerUsecase) AddEducation(ctx context.Context, edu *domain.Education) error {
	return u.repo.CreateEducation(ctx, edu)
}

func (u *jobSeekerUsecase) UpdateEducation(ctx context.Context, edu *domain.Education) error {
	return notFoundAs(u.repo.UpdateEducation(ctx, edu), "Education entry not found")
}

func (u *jobSeekerUsecase) DeleteEducation(ctx context.Context, userID string, id int64) error {
	return notFoundAs(u.repo.DeleteEducation(ctx, userID, id), "Education entry not found")
}

func (u *jobSeekerUsecase) AddExperience(ctx context.Context, exp *domain.Experience) error {
	return u.repo.CreateExperience(ctx, exp)
}

func (u *jobSeekerUsecase) UpdateExperience(ctx context.Context, exp *domain.Experience) error {
	return notFoundAs(u.repo.UpdateExperience(ctx, exp), "Experience entry not found")
}

func (u *jobSeekerUsecase) DeleteExperience(ctx context.Context, userID string, id int64) error {
	return notFoundAs(u.repo.DeleteExperience(ctx, userID, id), "Experience entry not found")
}

func (u *jobSeekerUsecase) AddReference(ctx context.Context, ref *domain.Reference) error {
	return u.repo.CreateReference(ctx, ref)
}

func (u *jobSeekerUsecase) UpdateReference(ctx context.Context, ref *domain.Reference) error {
	return notFoundAs(u.repo.UpdateReference(ctx, ref), "Reference not found")
}

func (u *jobSeekerUsecase) DeleteReference(ctx context.Context, userID string, id int64) error {
	return notFoundAs(u.repo.DeleteReference(ctx, userID, id), "Reference not found")
}

func (u *jobSeekerUsecase) AddAddress(ctx context.Context, addr *domain.Address) error {
	return u.repo.CreateAddress(ctx, addr)
}

func (u *jobSeekerUsecase) UpdateAddress(ctx context.Context, addr *domain.Address) error {
	return notFoundAs(u.repo.UpdateAddress(ctx, addr), "Address not found")
}

func (u *jobSeekerUsecase) DeleteAddress(ctx context.Context, userID string, id int64) error {
	return notFoundAs(u.repo.DeleteAddress(ctx, userID, id), "Address not found")
}

// notFoundAs maps repository ErrNotFound to a client-facing 404. Updates and
// deletes are scoped by user_id in SQL, so a foreign row also reads as 404
// rather than revealing it exists.
func notFoundAs(err error, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return err
}
