// Package auth maps an optional bearer credential to an authenticated actor.
package auth

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/token"
)

// Mode makes the optional-vs-mandatory auth distinction explicit at every
// call site instead of being inferred from context.
type Mode int

const (
	// ModeOptional swallows any credential failure and resolves to the
	// anonymous actor.
	ModeOptional Mode = iota
	// ModeRequired propagates credential failures as Unauthorized.
	ModeRequired
)

type Resolver struct {
	tokens *token.Manager
	users  domain.UserRepository
}

func NewResolver(tokens *token.Manager, users domain.UserRepository) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve decodes the credential and loads the subject user. An empty or
// invalid credential is Unauthorized in required mode and anonymous in
// optional mode. Storage connectivity failures propagate unmodified in
// both modes.
func (r *Resolver) Resolve(ctx context.Context, bearer string, mode Mode) (domain.Actor, error) {
	if bearer == "" {
		if mode == ModeRequired {
			return domain.Anonymous, apperror.Unauthorized("authentication required")
		}
		return domain.Anonymous, nil
	}

	userID, err := r.tokens.Parse(bearer)
	if err != nil {
		return r.fail(mode)
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return r.fail(mode)
		}
		return domain.Anonymous, err
	}

	return domain.Actor{UserID: user.ID, Kind: user.Kind}, nil
}

func (r *Resolver) fail(mode Mode) (domain.Actor, error) {
	if mode == ModeRequired {
		return domain.Anonymous, apperror.Unauthorized("invalid or expired token")
	}
	return domain.Anonymous, nil
}
