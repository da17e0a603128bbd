package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/domain"
)

type ProductCreate struct {
	CreateCmd command.Command[command.CreateProductRequest, domain.Product]
}

type productRequestBody struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	PopularityScore int64    `json:"popularity_score"`
}

func (c ProductCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body productRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed JSON body", domain.ErrValidation))
		return
	}

	product, err := c.CreateCmd.Execute(ctx, command.CreateProductRequest{
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

	writeJSON(ctx, w, http.StatusCreated, product)
}
