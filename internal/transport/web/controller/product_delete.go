package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codebytes2/gamerec/internal/command"
)

type ProductDelete struct {
	DeleteCmd command.Command[command.DeleteProductRequest, command.Empty]
}

func (c ProductDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["product_id"]

	if _, err := c.DeleteCmd.Execute(ctx, command.DeleteProductRequest{ProductID: productID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
