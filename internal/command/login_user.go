package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/codebytes2/gamerec/internal/auth"
	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// TokenIssuer signs an access token for an authenticated user.
type TokenIssuer interface {
	Issue(user domain.User) (string, error)
}

// LoginUserRequest is the request for the LoginUser command.
type LoginUserRequest struct {
	Email    string
	Password string
}

// LoginUserResponse carries the signed access token.
type LoginUserResponse struct {
	AccessToken string `json:"access_token"`
}

// LoginUser authenticates email/password credentials and issues a JWT.
type LoginUser struct {
	Users  datasources.UserByEmailGetter
	Tokens TokenIssuer
}

// NewLoginUser creates a properly initialized LoginUser command.
func NewLoginUser(users datasources.UserByEmailGetter, tokens TokenIssuer) *LoginUser {
	return &LoginUser{
		Users:  users,
		Tokens: tokens,
	}
}

// Execute authenticates the user. Unknown emails and wrong passwords both
// surface as domain.ErrInvalidCredentials so callers cannot probe for
// registered addresses.
func (c *LoginUser) Execute(ctx context.Context, req LoginUserRequest) (LoginUserResponse, error) {
	user, err := c.Users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return LoginUserResponse{}, domain.ErrInvalidCredentials
		}
		return LoginUserResponse{}, fmt.Errorf("fetching user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return LoginUserResponse{}, domain.ErrInvalidCredentials
	}

	token, err := c.Tokens.Issue(user)
	if err != nil {
		return LoginUserResponse{}, fmt.Errorf("issuing token: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "user logged in", "user_id", user.ID)

	return LoginUserResponse{AccessToken: token}, nil
}
