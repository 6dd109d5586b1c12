package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/hash"
	"go-jobboard-backend/pkg/token"
)

type authUsecase struct {
	userRepo domain.UserRepository
	hasher   hash.Hasher
	tokens   *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, hasher hash.Hasher, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Login never distinguishes an unknown email from a wrong password.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("invalid email or password")
		}
		return nil, err
	}
	if !u.hasher.Verify(password, user.HashedPassword) {
		return nil, apperror.Unauthorized("invalid email or password")
	}
	return u.issuePair(user.ID)
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	userID, err := u.tokens.Parse(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("invalid or expired token")
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("invalid or expired token")
		}
		return nil, err
	}

	access, err := u.tokens.GenerateAccess(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}, nil
}

func (u *authUsecase) issuePair(userID int64) (*domain.TokenPair, error) {
	access, err := u.tokens.GenerateAccess(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	refresh, err := u.tokens.GenerateRefresh(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
	}, nil
}
