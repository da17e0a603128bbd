package controller

import (
	"math"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

type TournamentGet struct {
	Tournaments datasources.TournamentGetter
}

// TournamentDetail adds the derived slot count. AvailableSlots is nil for
// uncapped tournaments.
type TournamentDetail struct {
	domain.Tournament
	AvailableSlots *int `json:"available_slots"`
}

func tournamentDetail(t domain.Tournament) TournamentDetail {
	detail := TournamentDetail{Tournament: t}
	if slots := t.AvailableSlots(); slots != math.MaxInt {
		detail.AvailableSlots = &slots
	}
	return detail
}

func (c TournamentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tournamentID := mux.Vars(r)["tournament_id"]

	tournament, err := c.Tournaments.GetTournament(ctx, tournamentID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, tournamentDetail(tournament))
}
