package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codebytes2/gamerec/internal/auth"
	"github.com/codebytes2/gamerec/internal/datasources/mocks"
	"github.com/codebytes2/gamerec/internal/domain"
)

func TestRegisterUser_Execute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		users := &mocks.UserStore{}
		users.On("GetUserByEmail", mock.Anything, "new@example.com").
			Return(domain.User{}, domain.ErrUserNotFound)
		users.On("CreateUser", mock.Anything, mock.Anything).Return(nil)

		cmd := NewRegisterUser(users, users)
		user, err := cmd.Execute(context.Background(), RegisterUserRequest{
			Username: "player1",
			Email:    "new@example.com",
			Password: "correct horse battery",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, []domain.UserRole{domain.RolePlayer}, user.Roles)
		assert.True(t, auth.CheckPassword(user.PasswordHash, "correct horse battery"))
	})

	t.Run("duplicate_email", func(t *testing.T) {
		users := &mocks.UserStore{}
		users.On("GetUserByEmail", mock.Anything, "taken@example.com").
			Return(domain.User{ID: "existing"}, nil)

		cmd := NewRegisterUser(users, users)
		_, err := cmd.Execute(context.Background(), RegisterUserRequest{
			Username: "player1",
			Email:    "taken@example.com",
			Password: "pw-pw-pw-pw",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("missing_fields", func(t *testing.T) {
		users := &mocks.UserStore{}
		cmd := NewRegisterUser(users, users)

		_, err := cmd.Execute(context.Background(), RegisterUserRequest{Username: "player1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

type staticTokenIssuer struct {
	token string
	err   error
}

func (s staticTokenIssuer) Issue(domain.User) (string, error) { return s.token, s.err }

func TestLoginUser_Execute(t *testing.T) {
	hash, err := auth.HashPassword("open sesame long enough")
	require.NoError(t, err)
	stored := domain.User{ID: "u1", Email: "p@example.com", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		users := &mocks.UserStore{}
		users.On("GetUserByEmail", mock.Anything, "p@example.com").Return(stored, nil)

		cmd := NewLoginUser(users, staticTokenIssuer{token: "signed.jwt.token"})
		resp, err := cmd.Execute(context.Background(), LoginUserRequest{
			Email:    "p@example.com",
			Password: "open sesame long enough",
		})

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	})

	t.Run("wrong_password", func(t *testing.T) {
		users := &mocks.UserStore{}
		users.On("GetUserByEmail", mock.Anything, "p@example.com").Return(stored, nil)

		cmd := NewLoginUser(users, staticTokenIssuer{token: "unused"})
		_, err := cmd.Execute(context.Background(), LoginUserRequest{
			Email:    "p@example.com",
			Password: "wrong",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown_email_maps_to_invalid_credentials", func(t *testing.T) {
		users := &mocks.UserStore{}
		users.On("GetUserByEmail", mock.Anything, "ghost@example.com").
			Return(domain.User{}, domain.ErrUserNotFound)

		cmd := NewLoginUser(users, staticTokenIssuer{token: "unused"})
		_, err := cmd.Execute(context.Background(), LoginUserRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
