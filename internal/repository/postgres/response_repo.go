package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type responseRepo struct {
	db *pgxpool.Pool
}

func NewResponseRepository(db *pgxpool.Pool) domain.ResponseRepository {
	return &responseRepo{db: db}
}

func (r *responseRepo) Create(ctx context.Context, resp *domain.Response) error {
	query := `INSERT INTO responses (job_id, owner_id, message, created_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query,
		resp.JobID, resp.OwnerID, resp.Message, resp.CreatedAt,
	).Scan(&resp.ID)
}

func (r *responseRepo) GetByID(ctx context.Context, id int64) (*domain.Response, error) {
	query := `SELECT id, job_id, owner_id, message, created_at FROM responses WHERE id = $1`
	var resp domain.Response
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resp.ID, &resp.JobID, &resp.OwnerID, &resp.Message, &resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

// GetDetailWithCandidate is the company's view: the responding candidate
// is attached, the job is not.
func (r *responseRepo) GetDetailWithCandidate(ctx context.Context, id int64) (*domain.ResponseDetail, error) {
	query := `
		SELECT r.id, r.job_id, r.owner_id, r.message, r.created_at,
		       u.id, u.name, u.email, u.kind
		FROM responses r
		JOIN users u ON r.owner_id = u.id
		WHERE r.id = $1`

	var detail domain.ResponseDetail
	var candidate domain.ShortUser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&detail.ID, &detail.JobID, &detail.OwnerID, &detail.Message, &detail.CreatedAt,
		&candidate.ID, &candidate.Name, &candidate.Email, &candidate.Kind,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	detail.Candidate = &candidate
	return &detail, nil
}

// GetDetailWithJob is the candidate's view: the target job is attached,
// the candidate side carries nothing beyond the response itself.
func (r *responseRepo) GetDetailWithJob(ctx context.Context, id int64) (*domain.ResponseDetail, error) {
	query := `
		SELECT r.id, r.job_id, r.owner_id, r.message, r.created_at,
		       j.id, j.title, j.description, j.salary_from, j.salary_to, j.is_active
		FROM responses r
		JOIN jobs j ON r.job_id = j.id
		WHERE r.id = $1`

	var detail domain.ResponseDetail
	var job domain.JobSummary
	err := r.db.QueryRow(ctx, query, id).Scan(
		&detail.ID, &detail.JobID, &detail.OwnerID, &detail.Message, &detail.CreatedAt,
		&job.ID, &job.Title, &job.Description, &job.SalaryFrom, &job.SalaryTo, &job.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	detail.Job = &job
	return &detail, nil
}

func (r *responseRepo) FetchByJobID(ctx context.Context, jobID int64, limit, offset int) ([]domain.ResponseDetail, error) {
	query := `
		SELECT r.id, r.job_id, r.owner_id, r.message, r.created_at,
		       u.id, u.name, u.email, u.kind
		FROM responses r
		JOIN users u ON r.owner_id = u.id
		WHERE r.job_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, jobID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.ResponseDetail
	for rows.Next() {
		var detail domain.ResponseDetail
		var candidate domain.ShortUser
		if err := rows.Scan(
			&detail.ID, &detail.JobID, &detail.OwnerID, &detail.Message, &detail.CreatedAt,
			&candidate.ID, &candidate.Name, &candidate.Email, &candidate.Kind,
		); err != nil {
			return nil, err
		}
		detail.Candidate = &candidate
		details = append(details, detail)
	}
	return details, rows.Err()
}

func (r *responseRepo) FetchByOwnerID(ctx context.Context, ownerID int64, limit, offset int) ([]domain.ResponseDetail, error) {
	query := `
		SELECT r.id, r.job_id, r.owner_id, r.message, r.created_at,
		       j.id, j.title, j.description, j.salary_from, j.salary_to, j.is_active
		FROM responses r
		JOIN jobs j ON r.job_id = j.id
		WHERE r.owner_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.ResponseDetail
	for rows.Next() {
		var detail domain.ResponseDetail
		var job domain.JobSummary
		if err := rows.Scan(
			&detail.ID, &detail.JobID, &detail.OwnerID, &detail.Message, &detail.CreatedAt,
			&job.ID, &job.Title, &job.Description, &job.SalaryFrom, &job.SalaryTo, &job.IsActive,
		); err != nil {
			return nil, err
		}
		detail.Job = &job
		details = append(details, detail)
	}
	return details, rows.Err()
}

func (r *responseRepo) Update(ctx context.Context, resp *domain.Response) error {
	query := `UPDATE responses SET message = $3 WHERE id = $1 AND owner_id = $2`
	result, err := r.db.Exec(ctx, query, resp.ID, resp.OwnerID, resp.Message)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *responseRepo) Delete(ctx context.Context, id, ownerID int64) error {
	query := `DELETE FROM responses WHERE id = $1 AND owner_id = $2`
	result, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
