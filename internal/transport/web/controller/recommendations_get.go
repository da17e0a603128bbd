package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/domain"
)

// RecommendationsGet recomputes the requesting user's ranking on every call
// and returns the freshly persisted run.
type RecommendationsGet struct {
	ComputeCmd command.Command[command.ComputeRecommendationsRequest, domain.RecommendationResult]
}

func (c RecommendationsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("target_user_id", userID))

	result, err := c.ComputeCmd.Execute(ctx, command.ComputeRecommendationsRequest{UserID: userID})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
