package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/policy"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func validateSalary(from, to int64) error {
	if from <= 0 {
		return apperror.BadRequest("salary_from must be positive")
	}
	if to < from {
		return apperror.BadRequest("salary_to cannot be less than salary_from")
	}
	return nil
}

func (u *jobUsecase) Create(ctx context.Context, actor domain.Actor, draft domain.JobDraft) (*domain.Job, error) {
	if err := policy.CanCreateJob(actor); err != nil {
		return nil, err
	}
	if err := policy.ValidateJobOwnerClaim(actor, draft.OwnerID); err != nil {
		return nil, err
	}
	if err := validateSalary(draft.SalaryFrom, draft.SalaryTo); err != nil {
		return nil, err
	}

	job := &domain.Job{
		OwnerID:     actor.UserID,
		Title:       draft.Title,
		Description: draft.Description,
		SalaryFrom:  draft.SalaryFrom,
		SalaryTo:    draft.SalaryTo,
		IsActive:    draft.IsActive,
		CreatedAt:   time.Now(),
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.JobWithOwner, error) {
	job, err := u.jobRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, err
	}
	if err := policy.CanReadJob(actor, &job.Job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) List(ctx context.Context, actor domain.Actor, filter domain.JobFilter, limit, offset int) ([]domain.JobWithOwner, int64, error) {
	filter = policy.ScopeJobFilter(actor, filter)

	// A creation-date floor in the future can never match anything real;
	// ignore it like a missing filter.
	if filter.CreatedAfter != nil && filter.CreatedAfter.After(time.Now()) {
		filter.CreatedAfter = nil
	}

	limit, offset = normalizePage(limit, offset)
	return u.jobRepo.Fetch(ctx, filter, limit, offset)
}

func (u *jobUsecase) Update(ctx context.Context, actor domain.Actor, id int64, patch domain.JobPatch) (*domain.Job, error) {
	if err := policy.CanMutateJobs(actor); err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, err
	}
	if err := policy.RequireJobOwner(actor, job); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.SalaryFrom != nil {
		job.SalaryFrom = *patch.SalaryFrom
	}
	if patch.SalaryTo != nil {
		job.SalaryTo = *patch.SalaryTo
	}
	if patch.IsActive != nil {
		job.IsActive = *patch.IsActive
	}
	if err := validateSalary(job.SalaryFrom, job.SalaryTo); err != nil {
		return nil, err
	}

	// The update statement is owner-scoped again, so the write cannot land
	// on a job the actor lost ownership of since the read.
	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) Delete(ctx context.Context, actor domain.Actor, id int64) (*domain.JobRef, error) {
	if err := policy.CanMutateJobs(actor); err != nil {
		return nil, err
	}
	if err := u.jobRepo.Delete(ctx, id, actor.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, err
	}
	return &domain.JobRef{ID: id}, nil
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizePage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
