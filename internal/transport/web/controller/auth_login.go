package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/domain"
)

type AuthLogin struct {
	LoginCmd command.Command[command.LoginUserRequest, command.LoginUserResponse]
}

type loginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c AuthLogin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body loginRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed JSON body", domain.ErrValidation))
		return
	}

	res, err := c.LoginCmd.Execute(ctx, command.LoginUserRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, res)
}
