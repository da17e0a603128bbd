package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// CreateTournamentRequest is the request for the CreateTournament command.
type CreateTournamentRequest struct {
	Name                string
	Game                string
	StartDate           time.Time
	EndDate             time.Time
	RegistrationOpenAt  time.Time
	RegistrationCloseAt time.Time
	Rules               string
	MaxParticipants     *int
}

// CreateTournament creates a tournament in OPEN status after validating the
// date ordering: registration opens before it closes, closes before the
// tournament starts, and the tournament starts before it ends.
type CreateTournament struct {
	TournamentCreator datasources.TournamentCreator
}

// NewCreateTournament creates a properly initialized CreateTournament command.
func NewCreateTournament(tournamentCreator datasources.TournamentCreator) *CreateTournament {
	return &CreateTournament{TournamentCreator: tournamentCreator}
}

// Execute validates and persists the tournament.
func (c *CreateTournament) Execute(ctx context.Context, req CreateTournamentRequest) (domain.Tournament, error) {
	if req.Name == "" || req.Game == "" {
		return domain.Tournament{}, fmt.Errorf("%w: name and game are required", domain.ErrValidation)
	}
	if !req.RegistrationOpenAt.Before(req.RegistrationCloseAt) {
		return domain.Tournament{}, fmt.Errorf("%w: registration must open before it closes", domain.ErrValidation)
	}
	if !req.RegistrationCloseAt.Before(req.StartDate) {
		return domain.Tournament{}, fmt.Errorf("%w: registration must close before the start date", domain.ErrValidation)
	}
	if !req.StartDate.Before(req.EndDate) {
		return domain.Tournament{}, fmt.Errorf("%w: start date must be before the end date", domain.ErrValidation)
	}
	if req.MaxParticipants != nil && *req.MaxParticipants < 1 {
		return domain.Tournament{}, fmt.Errorf("%w: max participants must be positive", domain.ErrValidation)
	}

	tournament := domain.Tournament{
		ID:                  uuid.New().String(),
		Name:                req.Name,
		Game:                req.Game,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		RegistrationOpenAt:  req.RegistrationOpenAt,
		RegistrationCloseAt: req.RegistrationCloseAt,
		Rules:               req.Rules,
		MaxParticipants:     req.MaxParticipants,
		Status:              domain.TournamentStatusOpen,
		CreatedAt:           time.Now(),
	}

	if err := c.TournamentCreator.CreateTournament(ctx, tournament); err != nil {
		return domain.Tournament{}, fmt.Errorf("creating tournament: %w", err)
	}

	return tournament, nil
}
