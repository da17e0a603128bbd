package mysql

import (
	"context"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/codebytes2/gamerec/internal/domain"
)

const ratingColumns = "id, user_id, product_id, score, created_at"

func (r *Repository) ListUserRatings(ctx context.Context, userID string) ([]domain.Rating, error) {
	sb := sqlbuilder.Select(ratingColumns)
	sb.From("ratings")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("created_at", "id")

	return r.queryRatings(ctx, sb)
}

func (r *Repository) ListProductRatings(ctx context.Context, productID string) ([]domain.Rating, error) {
	sb := sqlbuilder.Select(ratingColumns)
	sb.From("ratings")
	sb.Where(sb.Equal("product_id", productID))
	sb.OrderBy("created_at", "id")

	return r.queryRatings(ctx, sb)
}

func (r *Repository) RatingExists(ctx context.Context, userID, productID string) (bool, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("ratings")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("product_id", productID),
	)

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("checking rating existence: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) CountProductRatings(ctx context.Context, productID string) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("ratings")
	sb.Where(sb.Equal("product_id", productID))

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting product ratings: %w", err)
	}
	return count, nil
}

func (r *Repository) CreateRating(ctx context.Context, rating domain.Rating) error {
	ib := sqlbuilder.InsertInto("ratings")
	ib.Cols("id", "user_id", "product_id", "score", "created_at")
	ib.Values(rating.ID, rating.UserID, rating.ProductID, rating.Score, rating.CreatedAt)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting rating: %w", err)
	}
	return nil
}

func (r *Repository) queryRatings(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Rating, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running ratings query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ratings []domain.Rating
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(&rating.ID, &rating.UserID, &rating.ProductID, &rating.Score, &rating.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ratings: %w", err)
	}
	return ratings, nil
}
