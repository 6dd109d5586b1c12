package domain

import (
	"context"
	"time"
)

type Job struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SalaryFrom  int64     `json:"salary_from"`
	SalaryTo    int64     `json:"salary_to"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobSummary is the projection attached to a candidate's view of a response.
type JobSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SalaryFrom  int64  `json:"salary_from"`
	SalaryTo    int64  `json:"salary_to"`
	IsActive    bool   `json:"is_active"`
}

func (j *Job) Summary() *JobSummary {
	return &JobSummary{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		SalaryFrom:  j.SalaryFrom,
		SalaryTo:    j.SalaryTo,
		IsActive:    j.IsActive,
	}
}

// JobWithOwner extends Job with a short owner summary for list and detail
// payloads.
type JobWithOwner struct {
	Job
	Owner *ShortUser `json:"owner,omitempty"`
}

// JobRef is the minimal identity returned by delete.
type JobRef struct {
	ID int64 `json:"id"`
}

type JobDraft struct {
	OwnerID     int64
	Title       string
	Description string
	SalaryFrom  int64
	SalaryTo    int64
	IsActive    bool
}

// JobPatch carries the mutable fields of a job; nil means "leave unchanged".
type JobPatch struct {
	Title       *string
	Description *string
	SalaryFrom  *int64
	SalaryTo    *int64
	IsActive    *bool
}

// JobFilter enumerates every supported list predicate. Each field is
// optional; the repository translates set fields into storage predicates
// deterministically.
type JobFilter struct {
	SalaryFrom   *int64     // jobs paying at least this: salary_to >= X
	SalaryTo     *int64     // jobs starting at or below this: salary_from <= X
	CreatedAfter *time.Time // creation-date floor
	OwnerID      *int64
	Title        *string // substring match
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetDetailByID(ctx context.Context, id int64) (*JobWithOwner, error)
	Fetch(ctx context.Context, filter JobFilter, limit, offset int) ([]JobWithOwner, int64, error)
	// Update and Delete are owner-scoped at the statement level so the
	// ownership check and the effect are one atomic write.
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id, ownerID int64) error
}

type JobUsecase interface {
	Create(ctx context.Context, actor Actor, draft JobDraft) (*Job, error)
	Get(ctx context.Context, actor Actor, id int64) (*JobWithOwner, error)
	List(ctx context.Context, actor Actor, filter JobFilter, limit, offset int) ([]JobWithOwner, int64, error)
	Update(ctx context.Context, actor Actor, id int64, patch JobPatch) (*Job, error)
	Delete(ctx context.Context, actor Actor, id int64) (*JobRef, error)
}
