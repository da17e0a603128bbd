package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codebytes2/gamerec/internal/command"
)

type TournamentDelete struct {
	DeleteCmd command.Command[command.DeleteTournamentRequest, command.Empty]
}

func (c TournamentDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tournamentID := mux.Vars(r)["tournament_id"]

	if _, err := c.DeleteCmd.Execute(ctx, command.DeleteTournamentRequest{TournamentID: tournamentID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
