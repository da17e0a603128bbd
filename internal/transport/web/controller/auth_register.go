package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/domain"
)

type AuthRegister struct {
	RegisterCmd command.Command[command.RegisterUserRequest, domain.User]
}

type registerRequestBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c AuthRegister) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body registerRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed JSON body", domain.ErrValidation))
		return
	}

	user, err := c.RegisterCmd.Execute(ctx, command.RegisterUserRequest{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, user)
}
