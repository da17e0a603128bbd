package controller

import (
	"net/http"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

type ProductList struct {
	Lister interface {
		datasources.ProductPageLister
		datasources.ProductCounter
	}
}

type ProductListResponse struct {
	Data     []domain.Product    `json:"data"`
	Metadata domain.ListMetadata `json:"metadata"`
}

func (c ProductList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	filters := domain.ProductFilters{}

	products, err := c.Lister.ListProducts(ctx, filters, options)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	total, err := c.Lister.CountProducts(ctx, filters)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ProductListResponse{
		Data:     products,
		Metadata: domain.ListMetadata{TotalRows: total},
	})
}
