package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// JoinTournamentRequest is the request for the JoinTournament command.
type JoinTournamentRequest struct {
	TournamentID string
	UserID       string
	Nickname     string
}

// JoinTournamentResponse confirms a completed registration.
type JoinTournamentResponse struct {
	Message      string `json:"message"`
	TournamentID string `json:"tournament_id"`
	UserID       string `json:"user_id"`
	Status       string `json:"status"`
}

// JoinTournament registers a user for a tournament: the registration window
// must be open, a slot must be free, and the user must not already hold an
// active registration. Filling the last slot closes the tournament.
type JoinTournament struct {
	Tournaments         datasources.TournamentGetter
	Users               datasources.UserGetter
	RegistrationChecker datasources.RegistrationExistenceChecker
	RegistrationCreator datasources.RegistrationCreator
	RegistrationCounter datasources.ActiveRegistrationCounter
	StatusUpdater       datasources.TournamentStatusUpdater
}

// NewJoinTournament creates a properly initialized JoinTournament command.
func NewJoinTournament(
	tournaments datasources.TournamentGetter,
	users datasources.UserGetter,
	registrationChecker datasources.RegistrationExistenceChecker,
	registrationCreator datasources.RegistrationCreator,
	registrationCounter datasources.ActiveRegistrationCounter,
	statusUpdater datasources.TournamentStatusUpdater,
) *JoinTournament {
	return &JoinTournament{
		Tournaments:         tournaments,
		Users:               users,
		RegistrationChecker: registrationChecker,
		RegistrationCreator: registrationCreator,
		RegistrationCounter: registrationCounter,
		StatusUpdater:       statusUpdater,
	}
}

// Execute validates and persists the registration.
func (c *JoinTournament) Execute(ctx context.Context, req JoinTournamentRequest) (JoinTournamentResponse, error) {
	tournament, err := c.Tournaments.GetTournament(ctx, req.TournamentID)
	if err != nil {
		return JoinTournamentResponse{}, fmt.Errorf("resolving tournament: %w", err)
	}

	if _, err := c.Users.GetUser(ctx, req.UserID); err != nil {
		return JoinTournamentResponse{}, fmt.Errorf("resolving user: %w", err)
	}

	if !tournament.RegistrationWindowContains(time.Now()) {
		return JoinTournamentResponse{}, domain.ErrRegistrationClosed
	}

	if tournament.AvailableSlots() <= 0 {
		return JoinTournamentResponse{}, domain.ErrTournamentFull
	}

	exists, err := c.RegistrationChecker.RegistrationExists(ctx, req.TournamentID, req.UserID)
	if err != nil {
		return JoinTournamentResponse{}, fmt.Errorf("checking registration existence: %w", err)
	}
	if exists {
		return JoinTournamentResponse{}, domain.ErrAlreadyRegistered
	}

	reg := domain.TournamentRegistration{
		ID:           uuid.New().String(),
		TournamentID: req.TournamentID,
		UserID:       req.UserID,
		Nickname:     req.Nickname,
		Status:       domain.RegistrationStatusRegistered,
		CreatedAt:    time.Now(),
	}

	if err := c.RegistrationCreator.CreateRegistration(ctx, reg); err != nil {
		return JoinTournamentResponse{}, fmt.Errorf("creating registration: %w", err)
	}

	if err := c.closeIfFull(ctx, tournament); err != nil {
		return JoinTournamentResponse{}, err
	}

	return JoinTournamentResponse{
		Message:      "registration completed",
		TournamentID: req.TournamentID,
		UserID:       req.UserID,
		Status:       string(domain.RegistrationStatusRegistered),
	}, nil
}

// closeIfFull flips the tournament to CLOSED once active registrations reach
// the participant cap.
func (c *JoinTournament) closeIfFull(ctx context.Context, tournament domain.Tournament) error {
	if tournament.MaxParticipants == nil {
		return nil
	}

	count, err := c.RegistrationCounter.CountActiveRegistrations(ctx, tournament.ID)
	if err != nil {
		return fmt.Errorf("counting registrations: %w", err)
	}

	if count >= int64(*tournament.MaxParticipants) {
		if err := c.StatusUpdater.UpdateTournamentStatus(ctx, tournament.ID, domain.TournamentStatusClosed); err != nil {
			return fmt.Errorf("closing full tournament: %w", err)
		}
	}

	return nil
}
