package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

type RatingAverageGet struct {
	Products interface {
		datasources.ProductGetter
		datasources.ProductRatingsLister
	}
}

type RatingAverageResponse struct {
	ProductID     string   `json:"product_id"`
	AverageRating *float64 `json:"average_rating"`
	RatingCount   int      `json:"rating_count"`
}

func (c RatingAverageGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["product_id"]

	if _, err := c.Products.GetProduct(ctx, productID); err != nil {
		writeError(ctx, w, err)
		return
	}

	ratings, err := c.Products.ListProductRatings(ctx, productID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, RatingAverageResponse{
		ProductID:     productID,
		AverageRating: domain.AverageRating(ratings),
		RatingCount:   len(ratings),
	})
}
