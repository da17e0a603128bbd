package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codebytes2/gamerec/internal/auth"
	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// RegisterUserRequest is the request for the RegisterUser command.
type RegisterUserRequest struct {
	Username string
	Email    string
	Password string
}

// RegisterUser creates a new account with the PLAYER role and a bcrypt
// password hash.
type RegisterUser struct {
	UserByEmail datasources.UserByEmailGetter
	UserCreator datasources.UserCreator
}

// NewRegisterUser creates a properly initialized RegisterUser command.
func NewRegisterUser(
	userByEmail datasources.UserByEmailGetter,
	userCreator datasources.UserCreator,
) *RegisterUser {
	return &RegisterUser{
		UserByEmail: userByEmail,
		UserCreator: userCreator,
	}
}

// Execute registers the user and returns the created account.
func (c *RegisterUser) Execute(ctx context.Context, req RegisterUserRequest) (domain.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return domain.User{}, fmt.Errorf("%w: username, email and password are required", domain.ErrValidation)
	}

	_, err := c.UserByEmail.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return domain.User{}, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("checking email uniqueness: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user := domain.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Roles:        []domain.UserRole{domain.RolePlayer},
		CreatedAt:    time.Now(),
	}

	if err := c.UserCreator.CreateUser(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}
