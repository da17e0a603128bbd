package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebytes2/gamerec/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewJWT_RejectsShortSecret(t *testing.T) {
	_, err := NewJWT("too-short", time.Hour)
	require.Error(t, err)
}

func TestJWT_IssueAndParse(t *testing.T) {
	j, err := NewJWT(testSecret, time.Hour)
	require.NoError(t, err)

	user := domain.User{
		ID:    "user-1",
		Email: "player@example.com",
		Roles: []domain.UserRole{domain.RolePlayer, domain.RoleAdmin},
	}

	token, err := j.Issue(user)
	require.NoError(t, err)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "player@example.com", claims.Email)
	assert.Equal(t, []domain.UserRole{domain.RolePlayer, domain.RoleAdmin}, claims.Roles)
}

func TestJWT_ParseRejectsExpired(t *testing.T) {
	j, err := NewJWT(testSecret, time.Hour)
	require.NoError(t, err)

	issuedAt := time.Now().Add(-2 * time.Hour)
	j.now = func() time.Time { return issuedAt }
	token, err := j.Issue(domain.User{ID: "user-1"})
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.Parse(token)
	require.Error(t, err)
}

func TestJWT_ParseRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWT(testSecret, time.Hour)
	require.NoError(t, err)
	verifier, err := NewJWT("ffffffffffffffffffffffffffffffff", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(domain.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
