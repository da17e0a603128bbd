package controller

import (
	"net/http"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// ProductSearch lists products whose name contains the query, case
// insensitively. An empty query matches everything.
type ProductSearch struct {
	Lister interface {
		datasources.ProductPageLister
		datasources.ProductCounter
	}
}

func (c ProductSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	filters := domain.ProductFilters{
		NameContains: r.URL.Query().Get("name"),
	}

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
