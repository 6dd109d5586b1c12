package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/policy"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/hash"
)

type userUsecase struct {
	userRepo domain.UserRepository
	hasher   hash.Hasher
}

func NewUserUsecase(userRepo domain.UserRepository, hasher hash.Hasher) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, hasher: hasher}
}

func (u *userUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if !input.Kind.Valid() {
		return nil, apperror.BadRequest("kind must be candidate or company")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperror.BadRequest("user already exists")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	digest, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Name:           input.Name,
		Email:          input.Email,
		HashedPassword: digest,
		Kind:           input.Kind,
		CreatedAt:      time.Now(),
	}
	// A concurrent registration with the same email slips past the lookup
	// above; the repository surfaces the uniqueness violation as Conflict.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.User, error) {
	kind := policy.VisibleUserKind(actor)
	user, err := u.userRepo.GetByIDAndKind(ctx, id, kind)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) List(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.User, int64, error) {
	kind := policy.VisibleUserKind(actor)
	limit, offset = normalizePage(limit, offset)
	return u.userRepo.Fetch(ctx, kind, limit, offset)
}

func (u *userUsecase) Me(ctx context.Context, actor domain.Actor) (*domain.UserWithRelations, error) {
	if err := policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetWithRelations(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) Update(ctx context.Context, actor domain.Actor, patch domain.UserPatch) (*domain.User, error) {
	if err := policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	if patch.Email != nil {
		existing, err := u.userRepo.GetByEmail(ctx, *patch.Email)
		if err == nil && existing.ID != actor.UserID {
			return nil, apperror.BadRequest("email already in use")
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	user, err := u.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		digest, err := u.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		user.HashedPassword = digest
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) Delete(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	if err := policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	// Deleting a user cascades to their jobs and responses in one atomic
	// repository call.
	if err := u.userRepo.Delete(ctx, actor.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}
