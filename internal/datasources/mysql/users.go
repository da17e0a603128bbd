package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"

	"github.com/codebytes2/gamerec/internal/domain"
)

func (r *Repository) GetUser(ctx context.Context, userID string) (domain.User, error) {
	sb := sqlbuilder.Select("id", "username", "email", "password_hash", "roles", "created_at")
	sb.From("users")
	sb.Where(sb.Equal("id", userID))

	return r.scanUser(ctx, sb)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	sb := sqlbuilder.Select("id", "username", "email", "password_hash", "roles", "created_at")
	sb.From("users")
	sb.Where(sb.Equal("email", email))

	return r.scanUser(ctx, sb)
}

func (r *Repository) scanUser(ctx context.Context, sb *sqlbuilder.SelectBuilder) (domain.User, error) {
	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var user domain.User
	var roles string
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &roles, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("scanning user: %w", err)
	}

	for _, role := range strings.Split(roles, ",") {
		if role != "" {
			user.Roles = append(user.Roles, domain.UserRole(role))
		}
	}

	return user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user domain.User) error {
	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role))
	}

	ib := sqlbuilder.InsertInto("users")
	ib.Cols("id", "username", "email", "password_hash", "roles", "created_at")
	ib.Values(user.ID, user.Username, user.Email, user.PasswordHash, strings.Join(roles, ","), user.CreatedAt)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}
