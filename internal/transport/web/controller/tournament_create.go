package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/domain"
)

type TournamentCreate struct {
	CreateCmd command.Command[command.CreateTournamentRequest, domain.Tournament]
}

type tournamentRequestBody struct {
	Name                string    `json:"name"`
	Game                string    `json:"game"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	RegistrationOpenAt  time.Time `json:"registration_open_at"`
	RegistrationCloseAt time.Time `json:"registration_close_at"`
	Rules               string    `json:"rules"`
	MaxParticipants     *int      `json:"max_participants"`
}

func (c TournamentCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body tournamentRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed JSON body", domain.ErrValidation))
		return
	}

	tournament, err := c.CreateCmd.Execute(ctx, command.CreateTournamentRequest{
		Name:                body.Name,
		Game:                body.Game,
		StartDate:           body.StartDate,
		EndDate:             body.EndDate,
		RegistrationOpenAt:  body.RegistrationOpenAt,
		RegistrationCloseAt: body.RegistrationCloseAt,
		Rules:               body.Rules,
		MaxParticipants:     body.MaxParticipants,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, tournament)
}
