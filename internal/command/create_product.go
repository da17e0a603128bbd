package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// CreateProductRequest is the request for the CreateProduct command.
type CreateProductRequest struct {
	Name            string
	Description     string
	Category        string
	Tags            []string
	PopularityScore int64
}

// CreateProduct adds a product to the catalog.
type CreateProduct struct {
	ProductCreator datasources.ProductCreator
}

// NewCreateProduct creates a properly initialized CreateProduct command.
func NewCreateProduct(productCreator datasources.ProductCreator) *CreateProduct {
	return &CreateProduct{ProductCreator: productCreator}
}

// Execute validates and persists the product. Duplicate tags collapse to one.
func (c *CreateProduct) Execute(ctx context.Context, req CreateProductRequest) (domain.Product, error) {
	if req.Name == "" {
		return domain.Product{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if req.PopularityScore < 0 {
		return domain.Product{}, fmt.Errorf("%w: popularity score cannot be negative", domain.ErrValidation)
	}

	product := domain.Product{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Tags:            dedupeTags(req.Tags),
		PopularityScore: req.PopularityScore,
		CreatedAt:       time.Now(),
	}

	if err := c.ProductCreator.CreateProduct(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("creating product: %w", err)
	}

	return product, nil
}

// dedupeTags drops duplicate tags while keeping first-seen order.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
