package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/domain"
)

type RatingCreate struct {
	CreateCmd command.Command[command.CreateRatingRequest, domain.Rating]
}

type ratingRequestBody struct {
	ProductID string `json:"product_id"`
	Score     int    `json:"score"`
}

func (c RatingCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	var body ratingRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed JSON body", domain.ErrValidation))
		return
	}

	rating, err := c.CreateCmd.Execute(ctx, command.CreateRatingRequest{
		UserID:    userID,
		ProductID: body.ProductID,
		Score:     body.Score,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, rating)
}
