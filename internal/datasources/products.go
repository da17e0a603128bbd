package datasources

import (
	"context"

	"github.com/codebytes2/gamerec/internal/domain"
)

// AllProductsLister enumerates the full catalog, unordered and unpaginated.
// The recommender scores every product on every run, so this is a deliberate
// full scan.
type AllProductsLister interface {
	ListAllProducts(ctx context.Context) ([]domain.Product, error)
}

type ProductPageLister interface {
	ListProducts(
		ctx context.Context,
		filters domain.ProductFilters,
		options domain.ListOptions,
	) ([]domain.Product, error)
}

type ProductCounter interface {
	CountProducts(ctx context.Context, filters domain.ProductFilters) (int64, error)
}

// ProductGetter resolves a product by ID. Returns an error wrapping
// domain.ErrProductNotFound when no such product exists.
type ProductGetter interface {
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
}

type ProductCreator interface {
	CreateProduct(ctx context.Context, product domain.Product) error
}

type ProductUpdater interface {
	UpdateProduct(ctx context.Context, product domain.Product) error
}

type ProductDeleter interface {
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepository combines all product operations.
type ProductRepository interface {
	AllProductsLister
	ProductPageLister
	ProductCounter
	ProductGetter
	ProductCreator
	ProductUpdater
	ProductDeleter
}
