package domain

import (
	"context"
	"time"
)

// Response is a candidate's application to a job.
type Response struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"job_id"`
	OwnerID   int64     `json:"owner_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ResponseRef is the minimal identity returned by delete.
type ResponseRef struct {
	ID int64 `json:"id"`
}

// ResponseDetail attaches exactly one side of the relation: the company
// reviewing a response sees the candidate, the candidate sees the job.
// Never both.
type ResponseDetail struct {
	Response
	Candidate *ShortUser  `json:"candidate,omitempty"`
	Job       *JobSummary `json:"job,omitempty"`
}

type ResponsePatch struct {
	Message *string
}

type ResponseRepository interface {
	Create(ctx context.Context, resp *Response) error
	GetByID(ctx context.Context, id int64) (*Response, error)
	GetDetailWithCandidate(ctx context.Context, id int64) (*ResponseDetail, error)
	GetDetailWithJob(ctx context.Context, id int64) (*ResponseDetail, error)
	FetchByJobID(ctx context.Context, jobID int64, limit, offset int) ([]ResponseDetail, error)
	FetchByOwnerID(ctx context.Context, ownerID int64, limit, offset int) ([]ResponseDetail, error)
	// Update and Delete are owner-scoped at the statement level.
	Update(ctx context.Context, resp *Response) error
	Delete(ctx context.Context, id, ownerID int64) error
}

type ResponseUsecase interface {
	Create(ctx context.Context, actor Actor, jobID int64, message string) (*Response, error)
	Get(ctx context.Context, actor Actor, id int64) (*ResponseDetail, error)
	// List serves exactly one of the two list shapes: responses to a job
	// (jobID set, job owner only) or the actor's own responses (forSelf).
	List(ctx context.Context, actor Actor, jobID *int64, forSelf bool, limit, offset int) ([]ResponseDetail, error)
	Update(ctx context.Context, actor Actor, id int64, patch ResponsePatch) (*Response, error)
	Delete(ctx context.Context, actor Actor, id int64) (*ResponseRef, error)
}
