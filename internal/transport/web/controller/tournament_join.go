package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/domain"
)

type TournamentJoin struct {
	JoinCmd command.Command[command.JoinTournamentRequest, command.JoinTournamentResponse]
}

type joinRequestBody struct {
	Nickname string `json:"nickname"`
}

func (c TournamentJoin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tournamentID := mux.Vars(r)["tournament_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("tournament_id", tournamentID))

	var body joinRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed JSON body", domain.ErrValidation))
		return
	}

	res, err := c.JoinCmd.Execute(ctx, command.JoinTournamentRequest{
		TournamentID: tournamentID,
		UserID:       domain.UserIDFromContext(ctx),
		Nickname:     body.Nickname,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, res)
}
