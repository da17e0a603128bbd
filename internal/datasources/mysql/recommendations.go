package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/codebytes2/gamerec/internal/domain"
)

func (r *Repository) SaveRecommendation(ctx context.Context, rec domain.Recommendation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ib := sqlbuilder.InsertInto("recommendations")
	ib.Cols("id", "user_id", "computed_at", "algorithm_version")
	ib.Values(rec.ID, rec.UserID, rec.ComputedAt, rec.AlgorithmVersion)

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting recommendation: %w", err)
	}

	if len(rec.ProductIDs) > 0 {
		ib := sqlbuilder.InsertInto("recommendation_products")
		ib.Cols("recommendation_id", "product_id", "position")
		for i, productID := range rec.ProductIDs {
			ib.Values(rec.ID, productID, i)
		}

		query, args := ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting recommendation products: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) GetLatestRecommendation(ctx context.Context, userID string) (domain.Recommendation, error) {
	sb := sqlbuilder.Select("id", "user_id", "computed_at", "algorithm_version")
	sb.From("recommendations")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("computed_at DESC")
	sb.Limit(1)

	query, args := sb.Build()

	var rec domain.Recommendation
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID, &rec.UserID, &rec.ComputedAt, &rec.AlgorithmVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Recommendation{}, domain.ErrRecommendationNotFound
	}
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("querying latest recommendation: %w", err)
	}

	sb = sqlbuilder.Select("product_id")
	sb.From("recommendation_products")
	sb.Where(sb.Equal("recommendation_id", rec.ID))
	sb.OrderBy("position")

	query, args = sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("querying recommendation products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var productID string
		if err := rows.Scan(&productID); err != nil {
			return domain.Recommendation{}, fmt.Errorf("scanning recommendation product: %w", err)
		}
		rec.ProductIDs = append(rec.ProductIDs, productID)
	}
	if err := rows.Err(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("iterating recommendation products: %w", err)
	}

	return rec, nil
}
