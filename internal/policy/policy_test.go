package policy_test

import (
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/policy"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	company   = domain.Actor{UserID: 1, Kind: domain.KindCompany}
	candidate = domain.Actor{UserID: 3, Kind: domain.KindCandidate}
)

func TestJobGates(t *testing.T) {
	t.Run("creation is company-only", func(t *testing.T) {
		assert.NoError(t, policy.CanCreateJob(company))
		assert.Equal(t, http.StatusForbidden, apperror.StatusCode(policy.CanCreateJob(candidate)))
		assert.Equal(t, http.StatusUnauthorized, apperror.StatusCode(policy.CanCreateJob(domain.Anonymous)))
	})

	t.Run("owner claim must be yourself or absent", func(t *testing.T) {
		assert.NoError(t, policy.ValidateJobOwnerClaim(company, 0))
		assert.NoError(t, policy.ValidateJobOwnerClaim(company, company.UserID))
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(policy.ValidateJobOwnerClaim(company, 99)))
	})

	t.Run("ownership mismatch reads as absence, not forbidden", func(t *testing.T) {
		job := &domain.Job{ID: 10, OwnerID: 99}
		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(policy.RequireJobOwner(company, job)))
		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(policy.CanReadJob(company, job)))
	})

	t.Run("candidates and anonymous read any job", func(t *testing.T) {
		job := &domain.Job{ID: 10, OwnerID: 99}
		assert.NoError(t, policy.CanReadJob(candidate, job))
		assert.NoError(t, policy.CanReadJob(domain.Anonymous, job))
	})
}

func TestScopeJobFilter(t *testing.T) {
	t.Run("company filters are pinned to the actor", func(t *testing.T) {
		foreign := int64(99)
		scoped := policy.ScopeJobFilter(company, domain.JobFilter{OwnerID: &foreign})
		require.NotNil(t, scoped.OwnerID)
		assert.Equal(t, company.UserID, *scoped.OwnerID)
	})

	t.Run("everyone else passes through", func(t *testing.T) {
		assert.Nil(t, policy.ScopeJobFilter(candidate, domain.JobFilter{}).OwnerID)
		assert.Nil(t, policy.ScopeJobFilter(domain.Anonymous, domain.JobFilter{}).OwnerID)
	})
}

func TestResponseGates(t *testing.T) {
	t.Run("responding is candidate-only", func(t *testing.T) {
		assert.NoError(t, policy.CanCreateResponse(candidate))
		assert.Equal(t, http.StatusForbidden, apperror.StatusCode(policy.CanCreateResponse(company)))
		assert.Equal(t, http.StatusUnauthorized, apperror.StatusCode(policy.CanCreateResponse(domain.Anonymous)))
	})

	t.Run("per-job listing is company-only", func(t *testing.T) {
		assert.NoError(t, policy.CanListJobResponses(company))
		assert.Equal(t, http.StatusForbidden, apperror.StatusCode(policy.CanListJobResponses(candidate)))
	})

	t.Run("own-responses listing is candidate-only", func(t *testing.T) {
		assert.NoError(t, policy.CanListOwnResponses(candidate))
		assert.Equal(t, http.StatusForbidden, apperror.StatusCode(policy.CanListOwnResponses(company)))
	})

	t.Run("foreign response reads as absence", func(t *testing.T) {
		resp := &domain.Response{ID: 5, OwnerID: 99}
		assert.Equal(t, http.StatusNotFound, apperror.StatusCode(policy.RequireResponseOwner(candidate, resp)))
	})
}

func TestResponseRules(t *testing.T) {
	inactive := &domain.Job{ID: 10, IsActive: false}
	active := &domain.Job{ID: 10, IsActive: true}

	t.Run("inactive jobs reject responses by default", func(t *testing.T) {
		rules := policy.ResponseRules{}
		assert.NoError(t, rules.CanApply(active))
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(rules.CanApply(inactive)))
	})

	t.Run("the knob opens inactive jobs", func(t *testing.T) {
		rules := policy.ResponseRules{AllowInactiveJobs: true}
		assert.NoError(t, rules.CanApply(inactive))
	})
}

func TestVisibleUserKind(t *testing.T) {
	assert.Equal(t, domain.KindCandidate, policy.VisibleUserKind(company))
	assert.Equal(t, domain.KindCompany, policy.VisibleUserKind(candidate))
	assert.Equal(t, domain.KindCompany, policy.VisibleUserKind(domain.Anonymous))
}

func TestRequireSelf(t *testing.T) {
	assert.NoError(t, policy.RequireSelf(candidate, candidate.UserID))
	assert.Equal(t, http.StatusForbidden, apperror.StatusCode(policy.RequireSelf(candidate, 99)))
	assert.Equal(t, http.StatusUnauthorized, apperror.StatusCode(policy.RequireSelf(domain.Anonymous, 99)))
}
