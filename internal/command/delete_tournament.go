package command

import (
	"context"
	"fmt"
	"time"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// DeleteTournamentRequest is the request for the DeleteTournament command.
type DeleteTournamentRequest struct {
	TournamentID string
}

// DeleteTournament removes a tournament that has not yet started.
type DeleteTournament struct {
	TournamentGetter  datasources.TournamentGetter
	TournamentDeleter datasources.TournamentDeleter
}

// NewDeleteTournament creates a properly initialized DeleteTournament command.
func NewDeleteTournament(
	tournamentGetter datasources.TournamentGetter,
	tournamentDeleter datasources.TournamentDeleter,
) *DeleteTournament {
	return &DeleteTournament{
		TournamentGetter:  tournamentGetter,
		TournamentDeleter: tournamentDeleter,
	}
}

// Execute deletes the tournament unless it has already started.
func (c *DeleteTournament) Execute(ctx context.Context, req DeleteTournamentRequest) (Empty, error) {
	tournament, err := c.TournamentGetter.GetTournament(ctx, req.TournamentID)
	if err != nil {
		return Empty{}, fmt.Errorf("resolving tournament: %w", err)
	}

	if tournament.StartDate.Before(time.Now()) {
		return Empty{}, domain.ErrTournamentStarted
	}

	if err := c.TournamentDeleter.DeleteTournament(ctx, req.TournamentID); err != nil {
		return Empty{}, fmt.Errorf("deleting tournament: %w", err)
	}

	return Empty{}, nil
}
