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

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email, hashed_password, kind, created_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.HashedPassword, user.Kind, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("user with this email already exists")
		}
		return err
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, email, hashed_password, kind, created_at FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, hashed_password, kind, created_at FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) GetByIDAndKind(ctx context.Context, id int64, kind domain.UserKind) (*domain.User, error) {
	query := `SELECT id, name, email, hashed_password, kind, created_at FROM users WHERE id = $1 AND kind = $2`
	return r.scanUser(r.db.QueryRow(ctx, query, id, kind))
}

func (r *userRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Kind, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetWithRelations loads the user plus their jobs (company) or responses
// (candidate). The side that does not apply stays empty.
func (r *userRepo) GetWithRelations(ctx context.Context, id int64) (*domain.UserWithRelations, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := &domain.UserWithRelations{User: *user}

	if user.Kind == domain.KindCompany {
		query := `SELECT id, owner_id, title, description, salary_from, salary_to, is_active, created_at
	              FROM jobs WHERE owner_id = $1 ORDER BY created_at DESC`
		rows, err := r.db.Query(ctx, query, id)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		for rows.Next() {
			var job domain.Job
			if err := rows.Scan(&job.ID, &job.OwnerID, &job.Title, &job.Description, &job.SalaryFrom, &job.SalaryTo, &job.IsActive, &job.CreatedAt); err != nil {
				return nil, err
			}
			result.Jobs = append(result.Jobs, job)
		}
		return result, rows.Err()
	}

	query := `SELECT id, job_id, owner_id, message, created_at
              FROM responses WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var resp domain.Response
		if err := rows.Scan(&resp.ID, &resp.JobID, &resp.OwnerID, &resp.Message, &resp.CreatedAt); err != nil {
			return nil, err
		}
		result.Responses = append(result.Responses, resp)
	}
	return result, rows.Err()
}

func (r *userRepo) Fetch(ctx context.Context, kind domain.UserKind, limit, offset int) ([]domain.User, int64, error) {
	query := `SELECT id, name, email, hashed_password, kind, created_at
              FROM users WHERE kind = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, kind, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Kind, &user.CreatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE kind = $1`, kind).Scan(&total); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $2, email = $3, hashed_password = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.HashedPassword)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("user with this email already exists")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the user and cascades to their jobs and responses in a
// single transaction.
func (r *userRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM responses WHERE owner_id = $1
	       OR job_id IN (SELECT id FROM jobs WHERE owner_id = $1)`, id)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM jobs WHERE owner_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
