package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/domain"
)

type ProductUpdate struct {
	UpdateCmd command.Command[command.UpdateProductRequest, domain.Product]
}

// Absent fields stay untouched; only keys present in the body are applied.
type productUpdateBody struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	Tags            []string `json:"tags"`
	PopularityScore *int64   `json:"popularity_score"`
}

func (c ProductUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["product_id"]

	var body productUpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed JSON body", domain.ErrValidation))
		return
	}

	product, err := c.UpdateCmd.Execute(ctx, command.UpdateProductRequest{
		ProductID:       productID,
		Name:            body.Name,
		Description:     body.Description,
		Category:        body.Category,
		Tags:            body.Tags,
		PopularityScore: body.PopularityScore,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, product)
}
