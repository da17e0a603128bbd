package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/codebytes2/gamerec/internal/domain"
)

// minSecretBytes is the minimum HMAC secret length; anything shorter is too
// weak for HS256.
const minSecretBytes = 32

// Claims is the decoded content of an access token.
type Claims struct {
	UserID string
	Email  string
	Roles  []domain.UserRole
}

type tokenClaims struct {
	Email string `json:"email"`
	Roles string `json:"roles"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 access tokens. The subject is the user ID;
// roles travel as a comma-joined claim.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWT(secret string, ttl time.Duration) (*JWT, error) {
	if len(secret) < minSecretBytes {
		return nil, fmt.Errorf("JWT secret must be at least %d bytes", minSecretBytes)
	}

	return &JWT{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a new access token for the user.
func (j *JWT) Issue(user domain.User) (string, error) {
	now := j.now()

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: user.Email,
		Roles: strings.Join(roles, ","),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	})

	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Parse verifies the token signature and expiry and returns its claims.
func (j *JWT) Parse(token string) (Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("parsing token: %w", err)
	}

	var roles []domain.UserRole
	if claims.Roles != "" {
		for _, r := range strings.Split(claims.Roles, ",") {
			roles = append(roles, domain.UserRole(r))
		}
	}

	return Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Roles:  roles,
	}, nil
}
