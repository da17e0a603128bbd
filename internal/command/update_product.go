package command

import (
	"context"
	"fmt"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// UpdateProductRequest is the request for the UpdateProduct command.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	ProductID       string
	Name            *string
	Description     *string
	Category        *string
	Tags            []string
	PopularityScore *int64
}

// UpdateProduct applies a partial update to a catalog product.
type UpdateProduct struct {
	ProductGetter  datasources.ProductGetter
	ProductUpdater datasources.ProductUpdater
}

// NewUpdateProduct creates a properly initialized UpdateProduct command.
func NewUpdateProduct(
	productGetter datasources.ProductGetter,
	productUpdater datasources.ProductUpdater,
) *UpdateProduct {
	return &UpdateProduct{
		ProductGetter:  productGetter,
		ProductUpdater: productUpdater,
	}
}

// Execute loads, patches, and stores the product.
func (c *UpdateProduct) Execute(ctx context.Context, req UpdateProductRequest) (domain.Product, error) {
	product, err := c.ProductGetter.GetProduct(ctx, req.ProductID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("resolving product: %w", err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return domain.Product{}, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Tags != nil {
		product.Tags = dedupeTags(req.Tags)
	}
	if req.PopularityScore != nil {
		if *req.PopularityScore < 0 {
			return domain.Product{}, fmt.Errorf("%w: popularity score cannot be negative", domain.ErrValidation)
		}
		product.PopularityScore = *req.PopularityScore
	}

	if err := c.ProductUpdater.UpdateProduct(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("updating product: %w", err)
	}

	return product, nil
}
