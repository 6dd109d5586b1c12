// Package policy holds every visibility and ownership decision as a pure
// function over (actor, target). Services consult these before touching
// storage; handlers never decide anything themselves.
package policy

import (
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// RequireAuthenticated gates operations that have no anonymous form.
func RequireAuthenticated(actor domain.Actor) error {
	if actor.IsAnonymous() {
		return apperror.Unauthorized("authentication required")
	}
	return nil
}

// CanCreateJob permits job creation for companies only.
func CanCreateJob(actor domain.Actor) error {
	if actor.IsAnonymous() {
		return apperror.Unauthorized("authentication required")
	}
	if !actor.IsCompany() {
		return apperror.Forbidden("only companies can create jobs")
	}
	return nil
}

// CanMutateJobs gates update and delete by actor kind. Ownership of the
// specific job is checked separately with RequireJobOwner.
func CanMutateJobs(actor domain.Actor) error {
	if actor.IsAnonymous() {
		return apperror.Unauthorized("authentication required")
	}
	if !actor.IsCompany() {
		return apperror.Forbidden("only companies can modify jobs")
	}
	return nil
}

// ValidateJobOwnerClaim rejects a caller-supplied owner that is not the
// actor itself. Zero means "not supplied".
func ValidateJobOwnerClaim(actor domain.Actor, claimedOwnerID int64) error {
	if claimedOwnerID != 0 && claimedOwnerID != actor.UserID {
		return apperror.BadRequest("a job can only be created on behalf of your own company")
	}
	return nil
}

// CanReadJob decides single-record job visibility. Candidates and anonymous
// actors see every job. A company sees only its own postings; any other
// job is reported as absent, not as forbidden.
func CanReadJob(actor domain.Actor, job *domain.Job) error {
	if actor.IsCompany() && job.OwnerID != actor.UserID {
		return apperror.NotFound("job not found")
	}
	return nil
}

// ScopeJobFilter merges the policy-forced owner restriction into a
// caller-supplied filter: companies can only list their own postings.
func ScopeJobFilter(actor domain.Actor, filter domain.JobFilter) domain.JobFilter {
	if actor.IsCompany() {
		ownerID := actor.UserID
		filter.OwnerID = &ownerID
	}
	return filter
}

// RequireJobOwner reports an ownership mismatch identically to absence.
func RequireJobOwner(actor domain.Actor, job *domain.Job) error {
	if job.OwnerID != actor.UserID {
		return apperror.NotFound("job not found")
	}
	return nil
}

// CanCreateResponse permits responding to jobs for candidates only.
func CanCreateResponse(actor domain.Actor) error {
	if actor.IsAnonymous() {
		return apperror.Unauthorized("authentication required")
	}
	if !actor.IsCandidate() {
		return apperror.Forbidden("only candidates can respond to jobs")
	}
	return nil
}

// CanMutateResponses gates response update and delete by actor kind.
func CanMutateResponses(actor domain.Actor) error {
	if actor.IsAnonymous() {
		return apperror.Unauthorized("authentication required")
	}
	if !actor.IsCandidate() {
		return apperror.Forbidden("only the responding candidate can modify a response")
	}
	return nil
}

// RequireResponseOwner reports an ownership mismatch identically to absence.
func RequireResponseOwner(actor domain.Actor, resp *domain.Response) error {
	if resp.OwnerID != actor.UserID {
		return apperror.NotFound("response not found")
	}
	return nil
}

// CanListJobResponses gates the per-job response list by actor kind.
// Ownership of the job itself is checked with RequireJobOwner.
func CanListJobResponses(actor domain.Actor) error {
	if actor.IsAnonymous() {
		return apperror.Unauthorized("authentication required")
	}
	if !actor.IsCompany() {
		return apperror.Forbidden("only the job owner can view its responses")
	}
	return nil
}

// CanListOwnResponses denies the "my responses" list to companies: they
// have no candidate identity.
func CanListOwnResponses(actor domain.Actor) error {
	if actor.IsAnonymous() {
		return apperror.Unauthorized("authentication required")
	}
	if !actor.IsCandidate() {
		return apperror.Forbidden("companies have no responses of their own")
	}
	return nil
}

// VisibleUserKind implements the asymmetric user directory: companies see
// candidates, candidates see companies. Anonymous traffic is assumed to be
// job-seeking and gets the candidate view.
func VisibleUserKind(actor domain.Actor) domain.UserKind {
	if actor.IsCompany() {
		return domain.KindCandidate
	}
	return domain.KindCompany
}

// RequireSelf gates self-operations on the user record.
func RequireSelf(actor domain.Actor, userID int64) error {
	if actor.IsAnonymous() {
		return apperror.Unauthorized("authentication required")
	}
	if actor.UserID != userID {
		return apperror.Forbidden("insufficient rights")
	}
	return nil
}

// ResponseRules carries the configurable response-policy knobs.
type ResponseRules struct {
	// AllowInactiveJobs permits responses against jobs that are no longer
	// active. Off by default.
	AllowInactiveJobs bool
}

// CanApply decides whether a response may target the given job.
func (r ResponseRules) CanApply(job *domain.Job) error {
	if !job.IsActive && !r.AllowInactiveJobs {
		return apperror.BadRequest("job is no longer accepting responses")
	}
	return nil
}
