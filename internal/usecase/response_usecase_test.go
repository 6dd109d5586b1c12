package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/policy"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeJob() *domain.Job {
	return &domain.Job{ID: 10, OwnerID: companyActor.UserID, Title: "Go Developer", SalaryFrom: 100, SalaryTo: 1000, IsActive: true}
}

func TestResponseCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("company cannot respond to a job", func(t *testing.T) {
		uc := usecase.NewResponseUsecase(new(MockResponseRepo), new(MockJobRepo), policy.ResponseRules{})
		_, err := uc.Create(ctx, companyActor, 10, "hi")
		assert.Equal(t, http.StatusForbidden, apperror.StatusCode(err))
	})

	t.Run("anonymous cannot respond", func(t *testing.T) {
		uc := usecase.NewResponseUsecase(new(MockResponseRepo), new(MockJobRepo), policy.ResponseRules{})
		_, err := uc.Create(ctx, domain.Anonymous, 10, "hi")
		assert.Equal(t, http.StatusUnauthorized, apperror.StatusCode(err))
	})

	t.Run("absent job is not found", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewResponseUsecase(new(MockResponseRepo), jobRepo, policy.ResponseRules{})
		_, err := uc.Create(ctx, candidateActor, 99, "hi")
		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
	})

	t.Run("inactive job is rejected by default", func(t *testing.T) {
		job := activeJob()
		job.IsActive = false
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		uc := usecase.NewResponseUsecase(new(MockResponseRepo), jobRepo, policy.ResponseRules{})
		_, err := uc.Create(ctx, candidateActor, 10, "hi")
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
	})

	t.Run("inactive job is accepted when the rule allows it", func(t *testing.T) {
		job := activeJob()
		job.IsActive = false
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		respRepo := new(MockResponseRepo)
		respRepo.On("Create", ctx, mock.AnythingOfType("*domain.Response")).Return(nil)
		uc := usecase.NewResponseUsecase(respRepo, jobRepo, policy.ResponseRules{AllowInactiveJobs: true})

		_, err := uc.Create(ctx, candidateActor, 10, "hi")
		assert.NoError(t, err)
	})

	t.Run("owner is forced to the candidate", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(10)).Return(activeJob(), nil)
		respRepo := new(MockResponseRepo)
		respRepo.On("Create", ctx, mock.AnythingOfType("*domain.Response")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Response).ID = 5
		})
		uc := usecase.NewResponseUsecase(respRepo, jobRepo, policy.ResponseRules{})

		resp, err := uc.Create(ctx, candidateActor, 10, "hi")
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, candidateActor.UserID, resp.OwnerID)
		assert.Equal(t, int64(10), resp.JobID)
		assert.Equal(t, "hi", resp.Message)
	})
}

func TestResponseGetAsymmetry(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Response{ID: 5, JobID: 10, OwnerID: candidateActor.UserID, Message: "hi"}

	t.Run("candidate owner sees the job side only", func(t *testing.T) {
		respRepo := new(MockResponseRepo)
		respRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)
		respRepo.On("GetDetailWithJob", ctx, int64(5)).Return(&domain.ResponseDetail{
			Response: *stored,
			Job:      &domain.JobSummary{ID: 10, Title: "Go Developer"},
		}, nil)
		uc := usecase.NewResponseUsecase(respRepo, new(MockJobRepo), policy.ResponseRules{})

		detail, err := uc.Get(ctx, candidateActor, 5)
		require.NoError(t, err)
		assert.NotNil(t, detail.Job)
		assert.Nil(t, detail.Candidate)
	})

	t.Run("job owner sees the candidate side only", func(t *testing.T) {
		respRepo := new(MockResponseRepo)
		respRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)
		respRepo.On("GetDetailWithCandidate", ctx, int64(5)).Return(&domain.ResponseDetail{
			Response:  *stored,
			Candidate: &domain.ShortUser{ID: candidateActor.UserID, Name: "Alice", Kind: domain.KindCandidate},
		}, nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(10)).Return(activeJob(), nil)
		uc := usecase.NewResponseUsecase(respRepo, jobRepo, policy.ResponseRules{})

		detail, err := uc.Get(ctx, companyActor, 5)
		require.NoError(t, err)
		assert.NotNil(t, detail.Candidate)
		assert.Nil(t, detail.Job)
	})

	t.Run("another candidate is told the response does not exist", func(t *testing.T) {
		respRepo := new(MockResponseRepo)
		respRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)
		uc := usecase.NewResponseUsecase(respRepo, new(MockJobRepo), policy.ResponseRules{})

		other := domain.Actor{UserID: 77, Kind: domain.KindCandidate}
		_, err := uc.Get(ctx, other, 5)
		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
	})

	t.Run("a company that does not own the job is told the same", func(t *testing.T) {
		respRepo := new(MockResponseRepo)
		respRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(10)).Return(activeJob(), nil)
		uc := usecase.NewResponseUsecase(respRepo, jobRepo, policy.ResponseRules{})

		_, err := uc.Get(ctx, otherCompany, 5)
		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
	})
}

func TestResponseList(t *testing.T) {
	ctx := context.Background()
	jobID := int64(10)

	t.Run("both selectors is a bad request", func(t *testing.T) {
		uc := usecase.NewResponseUsecase(new(MockResponseRepo), new(MockJobRepo), policy.ResponseRules{})
		_, err := uc.List(ctx, candidateActor, &jobID, true, 20, 0)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
	})

	t.Run("neither selector is a bad request", func(t *testing.T) {
		uc := usecase.NewResponseUsecase(new(MockResponseRepo), new(MockJobRepo), policy.ResponseRules{})
		_, err := uc.List(ctx, candidateActor, nil, false, 20, 0)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
	})

	t.Run("candidate cannot list a job's responses", func(t *testing.T) {
		uc := usecase.NewResponseUsecase(new(MockResponseRepo), new(MockJobRepo), policy.ResponseRules{})
		_, err := uc.List(ctx, candidateActor, &jobID, false, 20, 0)
		assert.Equal(t, http.StatusForbidden, apperror.StatusCode(err))
	})

	t.Run("owning company lists its job's responses with candidates attached", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, jobID).Return(activeJob(), nil)
		respRepo := new(MockResponseRepo)
		respRepo.On("FetchByJobID", ctx, jobID, 20, 0).Return([]domain.ResponseDetail{
			{
				Response:  domain.Response{ID: 5, JobID: jobID, OwnerID: candidateActor.UserID, Message: "hi"},
				Candidate: &domain.ShortUser{ID: candidateActor.UserID, Name: "Alice"},
			},
		}, nil)
		uc := usecase.NewResponseUsecase(respRepo, jobRepo, policy.ResponseRules{})

		details, err := uc.List(ctx, companyActor, &jobID, false, 20, 0)
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.NotNil(t, details[0].Candidate)
		assert.Nil(t, details[0].Job)
	})

	t.Run("a company that does not own the job gets not found", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, jobID).Return(activeJob(), nil)
		uc := usecase.NewResponseUsecase(new(MockResponseRepo), jobRepo, policy.ResponseRules{})

		_, err := uc.List(ctx, otherCompany, &jobID, false, 20, 0)
		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
	})

	t.Run("company has no own-responses list", func(t *testing.T) {
		uc := usecase.NewResponseUsecase(new(MockResponseRepo), new(MockJobRepo), policy.ResponseRules{})
		_, err := uc.List(ctx, companyActor, nil, true, 20, 0)
		assert.Equal(t, http.StatusForbidden, apperror.StatusCode(err))
	})

	t.Run("candidate lists own responses with jobs attached", func(t *testing.T) {
		respRepo := new(MockResponseRepo)
		respRepo.On("FetchByOwnerID", ctx, candidateActor.UserID, 20, 0).Return([]domain.ResponseDetail{
			{
				Response: domain.Response{ID: 5, JobID: jobID, OwnerID: candidateActor.UserID},
				Job:      &domain.JobSummary{ID: jobID, Title: "Go Developer"},
			},
		}, nil)
		uc := usecase.NewResponseUsecase(respRepo, new(MockJobRepo), policy.ResponseRules{})

		details, err := uc.List(ctx, candidateActor, nil, true, 20, 0)
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.NotNil(t, details[0].Job)
		assert.Nil(t, details[0].Candidate)
	})
}

func TestResponseMutation(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Response{ID: 5, JobID: 10, OwnerID: candidateActor.UserID, Message: "hi"}
	newMessage := "hello there"

	t.Run("company cannot update a response", func(t *testing.T) {
		uc := usecase.NewResponseUsecase(new(MockResponseRepo), new(MockJobRepo), policy.ResponseRules{})
		_, err := uc.Update(ctx, companyActor, 5, domain.ResponsePatch{Message: &newMessage})
		assert.Equal(t, http.StatusForbidden, apperror.StatusCode(err))
	})

	t.Run("another candidate updating reads as not found", func(t *testing.T) {
		respRepo := new(MockResponseRepo)
		respRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)
		uc := usecase.NewResponseUsecase(respRepo, new(MockJobRepo), policy.ResponseRules{})

		other := domain.Actor{UserID: 77, Kind: domain.KindCandidate}
		_, err := uc.Update(ctx, other, 5, domain.ResponsePatch{Message: &newMessage})
		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
		respRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("owner updates the message", func(t *testing.T) {
		respRepo := new(MockResponseRepo)
		respRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)
		respRepo.On("Update", ctx, mock.AnythingOfType("*domain.Response")).Return(nil)
		uc := usecase.NewResponseUsecase(respRepo, new(MockJobRepo), policy.ResponseRules{})

		resp, err := uc.Update(ctx, candidateActor, 5, domain.ResponsePatch{Message: &newMessage})
		require.NoError(t, err)
		assert.Equal(t, newMessage, resp.Message)
	})

	t.Run("delete is owner-scoped and idempotently not found", func(t *testing.T) {
		respRepo := new(MockResponseRepo)
		respRepo.On("Delete", ctx, int64(99), candidateActor.UserID).Return(domain.ErrNotFound)
		uc := usecase.NewResponseUsecase(respRepo, new(MockJobRepo), policy.ResponseRules{})

		_, err := uc.Delete(ctx, candidateActor, 99)
		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
		_, err = uc.Delete(ctx, candidateActor, 99)
		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
	})

	t.Run("owner deletes and gets the minimal identity back", func(t *testing.T) {
		respRepo := new(MockResponseRepo)
		respRepo.On("Delete", ctx, int64(5), candidateActor.UserID).Return(nil)
		uc := usecase.NewResponseUsecase(respRepo, new(MockJobRepo), policy.ResponseRules{})

		ref, err := uc.Delete(ctx, candidateActor, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), ref.ID)
	})
}
