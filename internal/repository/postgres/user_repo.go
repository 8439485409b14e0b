package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// CreateWithDefaults inserts the user, its default role, and an empty
// job-seeker profile in one transaction. Rollback on any failure keeps
// registration all-or-nothing.
func (r *userRepo) CreateWithDefaults(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO users (id, email, first_name, last_name, password_hash, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.Exec(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName,
		user.PasswordHash, user.Active, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Internal(err)
	}

	for _, role := range user.Roles {
		if _, err := tx.Exec(ctx, `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`, user.ID, role); err != nil {
			return apperror.Internal(err)
		}
	}

	if _, err := tx.Exec(ctx, `INSERT INTO job_seeker_profiles (user_id) VALUES ($1)`, user.ID); err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, `WHERE u.id = $1`, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `WHERE u.email = $1`, email)
}

func (r *userRepo) getBy(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.password_hash, u.active,
		       u.created_at, u.updated_at,
		       COALESCE(array_agg(ur.role) FILTER (WHERE ur.role IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		` + where + `
		GROUP BY u.id`

	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.PasswordHash, &user.Active, &user.CreatedAt, &user.UpdatedAt,
		pq.Array(&user.Roles),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET email = $2, first_name = $3, last_name = $4, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, user.ID, user.Email, user.FirstName, user.LastName)
	return err
}

func (r *userRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	result, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) Activate(ctx context.Context, id string) error {
	return r.SetActive(ctx, id, true)
}

func (r *userRepo) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.db.Exec(ctx, `UPDATE users SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.password_hash, u.active,
		       u.created_at, u.updated_at,
		       COALESCE(array_agg(ur.role) FILTER (WHERE ur.role IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.PasswordHash, &user.Active, &user.CreatedAt, &user.UpdatedAt,
			pq.Array(&user.Roles),
		); err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ReplaceRoles swaps a user's role set in one transaction.
func (r *userRepo) ReplaceRoles(ctx context.Context, userID string, roles []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for _, role := range roles {
		if _, err := tx.Exec(ctx, `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`, userID, role); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
