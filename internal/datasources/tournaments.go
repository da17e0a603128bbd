package datasources

import (
	"context"

	"github.com/codebytes2/gamerec/internal/domain"
)

// TournamentGetter resolves a tournament by ID, with its active registration
// count loaded. Returns an error wrapping domain.ErrTournamentNotFound when
// no such tournament exists.
type TournamentGetter interface {
	GetTournament(ctx context.Context, tournamentID string) (domain.Tournament, error)
}

type TournamentLister interface {
	ListTournaments(
		ctx context.Context,
		filters domain.TournamentFilters,
		options domain.ListOptions,
	) ([]domain.Tournament, error)
}

type TournamentCounter interface {
	CountTournaments(ctx context.Context, filters domain.TournamentFilters) (int64, error)
}

type TournamentCreator interface {
	CreateTournament(ctx context.Context, tournament domain.Tournament) error
}

type TournamentDeleter interface {
	DeleteTournament(ctx context.Context, tournamentID string) error
}

type TournamentStatusUpdater interface {
	UpdateTournamentStatus(ctx context.Context, tournamentID string, status domain.TournamentStatus) error
}

type RegistrationCreator interface {
	CreateRegistration(ctx context.Context, reg domain.TournamentRegistration) error
}

// RegistrationExistenceChecker reports whether the user holds an active
// registration for the tournament.
type RegistrationExistenceChecker interface {
	RegistrationExists(ctx context.Context, tournamentID, userID string) (bool, error)
}

type ActiveRegistrationCounter interface {
	CountActiveRegistrations(ctx context.Context, tournamentID string) (int64, error)
}

// TournamentRepository combines all tournament operations.
type TournamentRepository interface {
	TournamentGetter
	TournamentLister
	TournamentCounter
	TournamentCreator
	TournamentDeleter
	TournamentStatusUpdater
	RegistrationCreator
	RegistrationExistenceChecker
	ActiveRegistrationCounter
}
