package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (owner_id, title, description, salary_from, salary_to, is_active, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.OwnerID, job.Title, job.Description, job.SalaryFrom, job.SalaryTo, job.IsActive, job.CreatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, owner_id, title, description, salary_from, salary_to, is_active, created_at
              FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.OwnerID, &job.Title, &job.Description, &job.SalaryFrom, &job.SalaryTo, &job.IsActive, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetDetailByID(ctx context.Context, id int64) (*domain.JobWithOwner, error) {
	query := `
		SELECT j.id, j.owner_id, j.title, j.description, j.salary_from, j.salary_to, j.is_active, j.created_at,
		       u.id, u.name, u.email, u.kind
		FROM jobs j
		JOIN users u ON j.owner_id = u.id
		WHERE j.id = $1`

	var job domain.JobWithOwner
	var owner domain.ShortUser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.OwnerID, &job.Title, &job.Description, &job.SalaryFrom, &job.SalaryTo, &job.IsActive, &job.CreatedAt,
		&owner.ID, &owner.Name, &owner.Email, &owner.Kind,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Owner = &owner
	return &job, nil
}

// filterClauses translates the explicit filter struct into SQL predicates.
// Every supported predicate is enumerated here; nothing is built from
// caller-supplied field names.
func filterClauses(filter domain.JobFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.SalaryFrom != nil {
		add("j.salary_to >= $%d", *filter.SalaryFrom)
	}
	if filter.SalaryTo != nil {
		add("j.salary_from <= $%d", *filter.SalaryTo)
	}
	if filter.CreatedAfter != nil {
		add("j.created_at >= $%d", *filter.CreatedAfter)
	}
	if filter.OwnerID != nil {
		add("j.owner_id = $%d", *filter.OwnerID)
	}
	if filter.Title != nil {
		add("j.title ILIKE '%%' || $%d || '%%'", *filter.Title)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobWithOwner, int64, error) {
	where, args := filterClauses(filter)

	query := `
		SELECT j.id, j.owner_id, j.title, j.description, j.salary_from, j.salary_to, j.is_active, j.created_at,
		       u.id, u.name, u.email, u.kind
		FROM jobs j
		JOIN users u ON j.owner_id = u.id` + where +
		fmt.Sprintf(" ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithOwner
	for rows.Next() {
		var job domain.JobWithOwner
		var owner domain.ShortUser
		if err := rows.Scan(
			&job.ID, &job.OwnerID, &job.Title, &job.Description, &job.SalaryFrom, &job.SalaryTo, &job.IsActive, &job.CreatedAt,
			&owner.ID, &owner.Name, &owner.Email, &owner.Kind,
		); err != nil {
			return nil, 0, err
		}
		job.Owner = &owner
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs j` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $3,
		description = $4,
		salary_from = $5,
		salary_to = $6,
		is_active = $7
	WHERE id = $1 AND owner_id = $2`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.OwnerID, job.Title, job.Description, job.SalaryFrom, job.SalaryTo, job.IsActive,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an owned job and its responses in a single transaction.
// A job the owner does not hold deletes zero rows and reports ErrNotFound.
func (r *jobRepo) Delete(ctx context.Context, id, ownerID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM responses WHERE job_id = $1
	       AND EXISTS (SELECT 1 FROM jobs WHERE id = $1 AND owner_id = $2)`, id, ownerID)
	if err != nil {
		return err
	}
	result, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
