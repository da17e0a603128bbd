package command

import (
	"context"
	"fmt"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// DeleteProductRequest is the request for the DeleteProduct command.
type DeleteProductRequest struct {
	ProductID string
}

// DeleteProduct removes a product that has no ratings. Products with rating
// history are refused; the history would silently skew past recommendation
// records otherwise.
type DeleteProduct struct {
	ProductGetter  datasources.ProductGetter
	RatingCounter  datasources.ProductRatingCounter
	ProductDeleter datasources.ProductDeleter
}

// NewDeleteProduct creates a properly initialized DeleteProduct command.
func NewDeleteProduct(
	productGetter datasources.ProductGetter,
	ratingCounter datasources.ProductRatingCounter,
	productDeleter datasources.ProductDeleter,
) *DeleteProduct {
	return &DeleteProduct{
		ProductGetter:  productGetter,
		RatingCounter:  ratingCounter,
		ProductDeleter: productDeleter,
	}
}

// Execute deletes the product if it exists and is unrated.
func (c *DeleteProduct) Execute(ctx context.Context, req DeleteProductRequest) (Empty, error) {
	if _, err := c.ProductGetter.GetProduct(ctx, req.ProductID); err != nil {
		return Empty{}, fmt.Errorf("resolving product: %w", err)
	}

	count, err := c.RatingCounter.CountProductRatings(ctx, req.ProductID)
	if err != nil {
		return Empty{}, fmt.Errorf("counting product ratings: %w", err)
	}
	if count > 0 {
		return Empty{}, fmt.Errorf("%w: %d rating(s) exist", domain.ErrProductHasRatings, count)
	}

	if err := c.ProductDeleter.DeleteProduct(ctx, req.ProductID); err != nil {
		return Empty{}, fmt.Errorf("deleting product: %w", err)
	}

	return Empty{}, nil
}
