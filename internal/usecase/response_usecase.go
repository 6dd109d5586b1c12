package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/policy"
	"go-jobboard-backend/pkg/apperror"
)

type responseUsecase struct {
	responseRepo domain.ResponseRepository
	jobRepo      domain.JobRepository
	rules        policy.ResponseRules
}

func NewResponseUsecase(responseRepo domain.ResponseRepository, jobRepo domain.JobRepository, rules policy.ResponseRules) domain.ResponseUsecase {
	return &responseUsecase{
		responseRepo: responseRepo,
		jobRepo:      jobRepo,
		rules:        rules,
	}
}

func (u *responseUsecase) Create(ctx context.Context, actor domain.Actor, jobID int64, message string) (*domain.Response, error) {
	if err := policy.CanCreateResponse(actor); err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, err
	}
	if err := u.rules.CanApply(job); err != nil {
		return nil, err
	}

	resp := &domain.Response{
		JobID:     jobID,
		OwnerID:   actor.UserID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := u.responseRepo.Create(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get attaches one side of the relation depending on who is asking: the job
// owner gets the candidate summary, the responding candidate gets the job
// summary. Everyone else sees nothing at all.
func (u *responseUsecase) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.ResponseDetail, error) {
	if err := policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	resp, err := u.responseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("response not found")
		}
		return nil, err
	}

	if actor.IsCompany() {
		job, err := u.jobRepo.GetByID(ctx, resp.JobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("response not found")
			}
			return nil, err
		}
		if err := policy.RequireJobOwner(actor, job); err != nil {
			return nil, apperror.NotFound("response not found")
		}
		return u.responseRepo.GetDetailWithCandidate(ctx, id)
	}

	if err := policy.RequireResponseOwner(actor, resp); err != nil {
		return nil, err
	}
	return u.responseRepo.GetDetailWithJob(ctx, id)
}

func (u *responseUsecase) List(ctx context.Context, actor domain.Actor, jobID *int64, forSelf bool, limit, offset int) ([]domain.ResponseDetail, error) {
	if jobID != nil && forSelf {
		return nil, apperror.BadRequest("specify either a job or your own responses, not both")
	}
	if jobID == nil && !forSelf {
		return nil, apperror.BadRequest("specify a job or request your own responses")
	}

	limit, offset = normalizePage(limit, offset)

	if jobID != nil {
		if err := policy.CanListJobResponses(actor); err != nil {
			return nil, err
		}
		job, err := u.jobRepo.GetByID(ctx, *jobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("job not found")
			}
			return nil, err
		}
		if err := policy.RequireJobOwner(actor, job); err != nil {
			return nil, err
		}
		return u.responseRepo.FetchByJobID(ctx, *jobID, limit, offset)
	}

	if err := policy.CanListOwnResponses(actor); err != nil {
		return nil, err
	}
	return u.responseRepo.FetchByOwnerID(ctx, actor.UserID, limit, offset)
}

func (u *responseUsecase) Update(ctx context.Context, actor domain.Actor, id int64, patch domain.ResponsePatch) (*domain.Response, error) {
	if err := policy.CanMutateResponses(actor); err != nil {
		return nil, err
	}

	resp, err := u.responseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("response not found")
		}
		return nil, err
	}
	if err := policy.RequireResponseOwner(actor, resp); err != nil {
		return nil, err
	}

	if patch.Message != nil {
		resp.Message = *patch.Message
	}

	if err := u.responseRepo.Update(ctx, resp); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("response not found")
		}
		return nil, err
	}
	return resp, nil
}

func (u *responseUsecase) Delete(ctx context.Context, actor domain.Actor, id int64) (*domain.ResponseRef, error) {
	if err := policy.CanMutateResponses(actor); err != nil {
		return nil, err
	}
	if err := u.responseRepo.Delete(ctx, id, actor.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("response not found")
		}
		return nil, err
	}
	return &domain.ResponseRef{ID: id}, nil
}
