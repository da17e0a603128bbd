package datasources

import (
	"context"

	"github.com/codebytes2/gamerec/internal/domain"
)

// UserGetter resolves a user by ID. Returns an error wrapping
// domain.ErrUserNotFound when no such user exists.
type UserGetter interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
}

// UserByEmailGetter resolves a user by email. Returns an error wrapping
// domain.ErrUserNotFound when no such user exists.
type UserByEmailGetter interface {
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

// UserCreator persists a new user.
type UserCreator interface {
	CreateUser(ctx context.Context, user domain.User) error
}

// UserRepository combines all user operations.
type UserRepository interface {
	UserGetter
	UserByEmailGetter
	UserCreator
}
