package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// CreateRatingRequest is the request for the CreateRating command.
type CreateRatingRequest struct {
	UserID    string
	ProductID string
	Score     int
}

// CreateRating records a user's score for a product, enforcing the single
// rating per (user, product) pair.
type CreateRating struct {
	Users         datasources.UserGetter
	Products      datasources.ProductGetter
	RatingChecker datasources.RatingExistenceChecker
	RatingCreator datasources.RatingCreator
}

// NewCreateRating creates a properly initialized CreateRating command.
func NewCreateRating(
	users datasources.UserGetter,
	products datasources.ProductGetter,
	ratingChecker datasources.RatingExistenceChecker,
	ratingCreator datasources.RatingCreator,
) *CreateRating {
	return &CreateRating{
		Users:         users,
		Products:      products,
		RatingChecker: ratingChecker,
		RatingCreator: ratingCreator,
	}
}

// Execute validates and persists the rating.
func (c *CreateRating) Execute(ctx context.Context, req CreateRatingRequest) (domain.Rating, error) {
	if req.Score < domain.MinRatingScore || req.Score > domain.MaxRatingScore {
		return domain.Rating{}, fmt.Errorf("%w: score must be between %d and %d",
			domain.ErrValidation, domain.MinRatingScore, domain.MaxRatingScore)
	}

	if _, err := c.Users.GetUser(ctx, req.UserID); err != nil {
		return domain.Rating{}, fmt.Errorf("resolving user: %w", err)
	}

	if _, err := c.Products.GetProduct(ctx, req.ProductID); err != nil {
		return domain.Rating{}, fmt.Errorf("resolving product: %w", err)
	}

	exists, err := c.RatingChecker.RatingExists(ctx, req.UserID, req.ProductID)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("checking rating existence: %w", err)
	}
	if exists {
		return domain.Rating{}, domain.ErrDuplicateRating
	}

	rating := domain.Rating{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Score:     req.Score,
		CreatedAt: time.Now(),
	}

	if err := c.RatingCreator.CreateRating(ctx, rating); err != nil {
		return domain.Rating{}, fmt.Errorf("creating rating: %w", err)
	}

	return rating, nil
}
