package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobSeekerRepo struct {
	db *pgxpool.Pool
}

func NewJobSeekerRepository(db *pgxpool.Pool) domain.JobSeekerRepository {
	return &jobSeekerRepo{db: db}
}

func (r *jobSeekerRepo) GetProfile(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	query := `SELECT user_id, headline, bio, phone, to_char(birth_date, 'YYYY-MM-DD'), gender, nationality, marital_status, skills, photo_url, updated_at
	          FROM job_seeker_profiles WHERE user_id = $1`
	var profile domain.JobSeekerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.Headline, &profile.Bio, &profile.Phone,
		&profile.BirthDate, &profile.Gender, &profile.Nationality,
		&profile.MaritalStatus, pq.Array(&profile.Skills), &profile.PhotoURL,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *jobSeekerRepo) UpsertProfile(ctx context.Context, profile *domain.JobSeekerProfile) error {
	query := `
		INSERT INTO job_seeker_profiles (user_id, headline, bio, phone, birth_date, gender, nationality, marital_status, skills, photo_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			headline = EXCLUDED.headline,
			bio = EXCLUDED.bio,
			phone = EXCLUDED.phone,
			birth_date = EXCLUDED.birth_date,
			gender = EXCLUDED.gender,
			nationality = EXCLUDED.nationality,
			marital_status = EXCLUDED.marital_status,
			skills = EXCLUDED.skills,
			photo_url = EXCLUDED.photo_url,
			updated_at = NOW()`
	_, err := r.db.Exec(ctx, query,
		profile.UserID, profile.Headline, profile.Bio, profile.Phone,
		profile.BirthDate, profile.Gender, profile.Nationality,
		profile.MaritalStatus, pq.Array(profile.Skills), profile.PhotoURL,
	)
	return err
}

// --- Educations ---

func (r *jobSeekerRepo) ListEducations(ctx context.Context, userID string) ([]domain.Education, error) {
	query := `SELECT id, user_id, institution, degree, field_of_study, start_year, end_year, description
	          FROM educations WHERE user_id = $1 ORDER BY start_year DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Education
	for rows.Next() {
		var edu domain.Education
		if err := rows.Scan(&edu.ID, &edu.UserID, &edu.Institution, &edu.Degree,
			&edu.FieldOfStudy, &edu.StartYear, &edu.EndYear, &edu.Description); err != nil {
			return nil, err
		}
		items = append(items, edu)
	}
	return items, rows.Err()
}

func (r *jobSeekerRepo) CreateEducation(ctx context.Context, edu *domain.Education) error {
	query := `INSERT INTO educations (user_id, institution, degree, field_of_study, start_year, end_year, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		edu.UserID, edu.Institution, edu.Degree, edu.FieldOfStudy,
		edu.StartYear, edu.EndYear, edu.Description,
	).Scan(&edu.ID)
}

func (r *jobSeekerRepo) UpdateEducation(ctx context.Context, edu *domain.Education) error {
	query := `UPDATE educations SET institution = $3, degree = $4, field_of_study = $5, start_year = $6, end_year = $7, description = $8
	          WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query,
		edu.ID, edu.UserID, edu.Institution, edu.Degree, edu.FieldOfStudy,
		edu.StartYear, edu.EndYear, edu.Description,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobSeekerRepo) DeleteEducation(ctx context.Context, userID string, id int64) error {
	return r.deleteScoped(ctx, `DELETE FROM educations WHERE id = $1 AND user_id = $2`, id, userID)
}

// --- Experiences ---

func (r *jobSeekerRepo) ListExperiences(ctx context.Context, userID string) ([]domain.Experience, error) {
	query := `SELECT id, user_id, company_name, job_title, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), description
	          FROM experiences WHERE user_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Experience
	for rows.Next() {
		var exp domain.Experience
		if err := rows.Scan(&exp.ID, &exp.UserID, &exp.CompanyName, &exp.JobTitle,
			&exp.StartDate, &exp.EndDate, &exp.Description); err != nil {
			return nil, err
		}
		items = append(items, exp)
	}
	return items, rows.Err()
}

func (r *jobSeekerRepo) CreateExperience(ctx context.Context, exp *domain.Experience) error {
	query := `INSERT INTO experiences (user_id, company_name, job_title, start_date, end_date, description)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		exp.UserID, exp.CompanyName, exp.JobTitle, exp.StartDate, exp.EndDate, exp.Description,
	).Scan(&exp.ID)
}

func (r *jobSeekerRepo) UpdateExperience(ctx context.Context, exp *domain.Experience) error {
	query := `UPDATE experiences SET company_name = $3, job_title = $4, start_date = $5, end_date = $6, description = $7
	          WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query,
		exp.ID, exp.UserID, exp.CompanyName, exp.JobTitle, exp.StartDate, exp.EndDate, exp.Description,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobSeekerRepo) DeleteExperience(ctx context.Context, userID string, id int64) error {
	return r.deleteScoped(ctx, `DELETE FROM experiences WHERE id = $1 AND user_id = $2`, id, userID)
}

// --- References ---

func (r *jobSeekerRepo) ListReferences(ctx context.Context, userID string) ([]domain.Reference, error) {
	query := `SELECT id, user_id, name, relation, company, email, phone
	          FROM jobseeker_references WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Reference
	for rows.Next() {
		var ref domain.Reference
		if err := rows.Scan(&ref.ID, &ref.UserID, &ref.Name, &ref.Relation,
			&ref.Company, &ref.Email, &ref.Phone); err != nil {
			return nil, err
		}
		items = append(items, ref)
	}
	return items, rows.Err()
}

func (r *jobSeekerRepo) CreateReference(ctx context.Context, ref *domain.Reference) error {
	query := `INSERT INTO jobseeker_references (user_id, name, relation, company, email, phone)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		ref.UserID, ref.Name, ref.Relation, ref.Company, ref.Email, ref.Phone,
	).Scan(&ref.ID)
}

func (r *jobSeekerRepo) UpdateReference(ctx context.Context, ref *domain.Reference) error {
	query := `UPDATE jobseeker_references SET name = $3, relation = $4, company = $5, email = $6, phone = $7
	          WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query,
		ref.ID, ref.UserID, ref.Name, ref.Relation, ref.Company, ref.Email, ref.Phone,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobSeekerRepo) DeleteReference(ctx context.Context, userID string, id int64) error {
	return r.deleteScoped(ctx, `DELETE FROM jobseeker_references WHERE id = $1 AND user_id = $2`, id, userID)
}

// --- Addresses ---

func (r *jobSeekerRepo) ListAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	query := `SELECT id, user_id, line1, line2, city, province, postal_code, country, is_primary
	          FROM addresses WHERE user_id = $1 ORDER BY is_primary DESC, id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Address
	for rows.Next() {
		var addr domain.Address
		if err := rows.Scan(&addr.ID, &addr.UserID, &addr.Line1, &addr.Line2,
			&addr.City, &addr.Province, &addr.PostalCode, &addr.Country, &addr.IsPrimary); err != nil {
			return nil, err
		}
		items = append(items, addr)
	}
	return items, rows.Err()
}

func (r *jobSeekerRepo) CreateAddress(ctx context.Context, addr *domain.Address) error {
	query := `INSERT INTO addresses (user_id, line1, line2, city, province, postal_code, country, is_primary)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		addr.UserID, addr.Line1, addr.Line2, addr.City, addr.Province,
		addr.PostalCode, addr.Country, addr.IsPrimary,
	).Scan(&addr.ID)
}

func (r *jobSeekerRepo) UpdateAddress(ctx context.Context, addr *domain.Address) error {
	query := `UPDATE addresses SET line1 = $3, line2 = $4, city = $5, province = $6, postal_code = $7, country = $8, is_primary = $9
	          WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query,
		addr.ID, addr.UserID, addr.Line1, addr.Line2, addr.City, addr.Province,
		addr.PostalCode, addr.Country, addr.IsPrimary,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobSeekerRepo) DeleteAddress(ctx context.Context, userID string, id int64) error {
	return r.deleteScoped(ctx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
}

func (r *jobSeekerRepo) deleteScoped(ctx context.Context, query string, id int64, userID string) error {
	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
