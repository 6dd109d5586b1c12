package domain

// UserKind discriminates the two actor kinds. It is fixed at registration
// and never changes afterwards.
type UserKind string

const (
	KindCandidate UserKind = "candidate"
	KindCompany   UserKind = "company"
)

func (k UserKind) Valid() bool {
	return k == KindCandidate || k == KindCompany
}

// Actor is the resolved identity driving every authorization decision.
// The zero value is the anonymous actor.
type Actor struct {
	UserID int64
	Kind   UserKind
}

// Anonymous is the actor used when no (or no valid) credential was presented
// in an optional-auth context.
var Anonymous = Actor{}

func (a Actor) IsAnonymous() bool {
	return a.UserID == 0
}

func (a Actor) IsCompany() bool {
	return !a.IsAnonymous() && a.Kind == KindCompany
}

func (a Actor) IsCandidate() bool {
	return !a.IsAnonymous() && a.Kind == KindCandidate
}

type CtxKey string

const KeyActor CtxKey = "Actor"
