package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codebytes2/gamerec/internal/datasources"
)

// RecommendationLatestGet returns the most recently persisted run for a user
// without recomputing anything.
type RecommendationLatestGet struct {
	Recommendations datasources.LatestRecommendationGetter
}

func (c RecommendationLatestGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["user_id"]

	rec, err := c.Recommendations.GetLatestRecommendation(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, rec)
}
