package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

type ProductGet struct {
	Products interface {
		datasources.ProductGetter
		datasources.ProductRatingsLister
	}
}

// ProductDetail is a product plus its rating aggregates.
type ProductDetail struct {
	domain.Product
	AverageRating *float64 `json:"average_rating"`
	RatingCount   int      `json:"rating_count"`
}

func (c ProductGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["product_id"]

	product, err := c.Products.GetProduct(ctx, productID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	ratings, err := c.Products.ListProductRatings(ctx, productID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ProductDetail{
		Product:       product,
		AverageRating: domain.AverageRating(ratings),
		RatingCount:   len(ratings),
	})
}
