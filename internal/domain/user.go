package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is the uniform absence signal reported by repositories,
// distinct from connectivity failures.
var ErrNotFound = errors.New("resource not found")

type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Kind           UserKind  `json:"kind"`
	CreatedAt      time.Time `json:"created_at"`
}

// ShortUser is the public projection embedded in job and response payloads.
type ShortUser struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Kind  UserKind `json:"kind"`
}

func (u *User) Short() *ShortUser {
	return &ShortUser{ID: u.ID, Name: u.Name, Email: u.Email, Kind: u.Kind}
}

// UserWithRelations carries either the user's jobs (company) or their
// responses (candidate), never both.
type UserWithRelations struct {
	User
	Jobs      []Job      `json:"jobs,omitempty"`
	Responses []Response `json:"responses,omitempty"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Kind     UserKind
}

// UserPatch carries the mutable fields of a user profile; nil means
// "leave unchanged".
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByIDAndKind(ctx context.Context, id int64, kind UserKind) (*User, error)
	GetWithRelations(ctx context.Context, id int64) (*UserWithRelations, error)
	Fetch(ctx context.Context, kind UserKind, limit, offset int) ([]User, int64, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}

type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Get(ctx context.Context, actor Actor, id int64) (*User, error)
	List(ctx context.Context, actor Actor, limit, offset int) ([]User, int64, error)
	Me(ctx context.Context, actor Actor) (*UserWithRelations, error)
	Update(ctx context.Context, actor Actor, patch UserPatch) (*User, error)
	Delete(ctx context.Context, actor Actor) (*User, error)
}

// TokenPair is issued on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
