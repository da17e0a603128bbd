package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebytes2/gamerec/internal/domain"
)

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	db, err := Connect(context.Background(), os.Getenv("MYSQL_URI"))
	if err != nil {
		t.Fatal(err)
	}

	return db
}

func TestRepository_ProductRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	product := domain.Product{
		ID:              uuid.New().String(),
		Name:            "Integration Test Game",
		Description:     "A game inserted by the integration tests",
		Category:        "strategy",
		Tags:            []string{"test", "strategy"},
		PopularityScore: 42,
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.CreateProduct(ctx, product))
	t.Cleanup(func() {
		_ = repo.DeleteProduct(ctx, product.ID)
	})

	got, err := repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, got.Name)
	assert.ElementsMatch(t, product.Tags, got.Tags)
	assert.Equal(t, product.PopularityScore, got.PopularityScore)

	renamed := "Integration Test Game v2"
	product.Name = renamed
	product.Tags = []string{"strategy"}
	require.NoError(t, repo.UpdateProduct(ctx, product))

	got, err = repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, renamed, got.Name)
	assert.Equal(t, []string{"strategy"}, got.Tags)
}

func TestRepository_GetProduct_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	_, err := repo.GetProduct(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRepository_RatingsAndRecommendations(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	user := domain.User{
		ID:           uuid.New().String(),
		Username:     "integration-user",
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "not-a-real-hash",
		Roles:        []domain.UserRole{domain.RolePlayer},
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.CreateUser(ctx, user))

	product := domain.Product{
		ID:        uuid.New().String(),
		Name:      "Rated Game",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.CreateProduct(ctx, product))

	rating := domain.Rating{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ProductID: product.ID,
		Score:     4,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.CreateRating(ctx, rating))

	exists, err := repo.RatingExists(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.RatingExists(ctx, user.ID, uuid.New().String())
	require.NoError(t, err)
	assert.False(t, exists)

	ratings, err := repo.ListUserRatings(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 4, ratings[0].Score)

	rec := domain.Recommendation{
		ID:               uuid.New().String(),
		UserID:           user.ID,
		ProductIDs:       []string{product.ID},
		ComputedAt:       time.Now().UTC().Truncate(time.Second),
		AlgorithmVersion: domain.AlgorithmVersion,
	}
	require.NoError(t, repo.SaveRecommendation(ctx, rec))

	latest, err := repo.GetLatestRecommendation(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, latest.ID)
	assert.Equal(t, []string{product.ID}, latest.ProductIDs)
}
