package datasources

import (
	"context"

	"github.com/codebytes2/gamerec/internal/domain"
)

type UserRatingsLister interface {
	ListUserRatings(ctx context.Context, userID string) ([]domain.Rating, error)
}

type ProductRatingsLister interface {
	ListProductRatings(ctx context.Context, productID string) ([]domain.Rating, error)
}

// RatingExistenceChecker is the authoritative check for whether a (user,
// product) rating exists.
type RatingExistenceChecker interface {
	RatingExists(ctx context.Context, userID, productID string) (bool, error)
}

type ProductRatingCounter interface {
	CountProductRatings(ctx context.Context, productID string) (int64, error)
}

type RatingCreator interface {
	CreateRating(ctx context.Context, rating domain.Rating) error
}

// RatingRepository combines all rating operations.
type RatingRepository interface {
	UserRatingsLister
	ProductRatingsLister
	RatingExistenceChecker
	ProductRatingCounter
	RatingCreator
}
