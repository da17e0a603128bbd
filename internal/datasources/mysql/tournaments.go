package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"

	"github.com/codebytes2/gamerec/internal/domain"
)

// Tournament rows carry the active registration count so slot checks never
// need a second round trip.
const tournamentColumns = `t.id, t.name, t.game, t.start_date, t.end_date,
	t.registration_open_at, t.registration_close_at, t.rules, t.max_participants,
	t.status, t.created_at,
	(SELECT COUNT(*) FROM tournament_registrations r
	 WHERE r.tournament_id = t.id AND r.status = 'REGISTERED') AS registered_count`

func (r *Repository) GetTournament(ctx context.Context, tournamentID string) (domain.Tournament, error) {
	sb := sqlbuilder.Select(tournamentColumns)
	sb.From("tournaments t")
	sb.Where(sb.Equal("t.id", tournamentID))

	tournaments, err := r.queryTournaments(ctx, sb)
	if err != nil {
		return domain.Tournament{}, err
	}
	if len(tournaments) == 0 {
		return domain.Tournament{}, domain.ErrTournamentNotFound
	}
	return tournaments[0], nil
}

func (r *Repository) ListTournaments(
	ctx context.Context,
	filters domain.TournamentFilters,
	options domain.ListOptions,
) ([]domain.Tournament, error) {
	sb := sqlbuilder.Select(tournamentColumns)
	sb.From("tournaments t")
	if conds := buildTournamentConditions(sb, filters); len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.OrderBy("t.start_date", "t.id")

	limit, offset := paginationToLimitOffset(options)
	sb.Limit(limit)
	sb.Offset(offset)

	return r.queryTournaments(ctx, sb)
}

func (r *Repository) CountTournaments(ctx context.Context, filters domain.TournamentFilters) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("tournaments t")
	if conds := buildTournamentConditions(sb, filters); len(conds) > 0 {
		sb.Where(conds...)
	}

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting tournaments: %w", err)
	}
	return count, nil
}

func (r *Repository) CreateTournament(ctx context.Context, tournament domain.Tournament) error {
	ib := sqlbuilder.InsertInto("tournaments")
	ib.Cols("id", "name", "game", "start_date", "end_date",
		"registration_open_at", "registration_close_at", "rules",
		"max_participants", "status", "created_at")
	ib.Values(tournament.ID, tournament.Name, tournament.Game,
		tournament.StartDate, tournament.EndDate,
		tournament.RegistrationOpenAt, tournament.RegistrationCloseAt,
		tournament.Rules, tournament.MaxParticipants,
		string(tournament.Status), tournament.CreatedAt)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting tournament: %w", err)
	}
	return nil
}

func (r *Repository) DeleteTournament(ctx context.Context, tournamentID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleteRegs := sqlbuilder.DeleteFrom("tournament_registrations")
	deleteRegs.Where(deleteRegs.Equal("tournament_id", tournamentID))
	query, args := deleteRegs.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting tournament registrations: %w", err)
	}

	deleteTournament := sqlbuilder.DeleteFrom("tournaments")
	deleteTournament.Where(deleteTournament.Equal("id", tournamentID))
	query, args = deleteTournament.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting tournament: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) UpdateTournamentStatus(
	ctx context.Context,
	tournamentID string,
	status domain.TournamentStatus,
) error {
	ub := sqlbuilder.Update("tournaments")
	ub.Set(ub.Assign("status", string(status)))
	ub.Where(ub.Equal("id", tournamentID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating tournament status: %w", err)
	}
	return nil
}

func (r *Repository) CreateRegistration(ctx context.Context, reg domain.TournamentRegistration) error {
	ib := sqlbuilder.InsertInto("tournament_registrations")
	ib.Cols("id", "tournament_id", "user_id", "nickname", "status", "created_at")
	ib.Values(reg.ID, reg.TournamentID, reg.UserID, reg.Nickname, string(reg.Status), reg.CreatedAt)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting tournament registration: %w", err)
	}
	return nil
}

func (r *Repository) RegistrationExists(ctx context.Context, tournamentID, userID string) (bool, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("tournament_registrations")
	sb.Where(
		sb.Equal("tournament_id", tournamentID),
		sb.Equal("user_id", userID),
		sb.Equal("status", string(domain.RegistrationStatusRegistered)),
	)

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("checking registration existence: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) CountActiveRegistrations(ctx context.Context, tournamentID string) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("tournament_registrations")
	sb.Where(
		sb.Equal("tournament_id", tournamentID),
		sb.Equal("status", string(domain.RegistrationStatusRegistered)),
	)

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active registrations: %w", err)
	}
	return count, nil
}

func (r *Repository) queryTournaments(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Tournament, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running tournaments query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tournaments []domain.Tournament
	for rows.Next() {
		var t domain.Tournament
		var rules sql.NullString
		var maxParticipants sql.NullInt64
		var status string
		if err := rows.Scan(&t.ID, &t.Name, &t.Game, &t.StartDate, &t.EndDate,
			&t.RegistrationOpenAt, &t.RegistrationCloseAt, &rules, &maxParticipants,
			&status, &t.CreatedAt, &t.RegisteredCount); err != nil {
			return nil, fmt.Errorf("scanning tournament: %w", err)
		}
		t.Rules = rules.String
		if maxParticipants.Valid {
			capacity := int(maxParticipants.Int64)
			t.MaxParticipants = &capacity
		}
		t.Status = domain.TournamentStatus(status)
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tournaments: %w", err)
	}
	return tournaments, nil
}

func buildTournamentConditions(sb *sqlbuilder.SelectBuilder, filters domain.TournamentFilters) []string {
	var conds []string
	if filters.Status != "" {
		conds = append(conds, sb.Equal("t.status", string(filters.Status)))
	}
	if filters.GameContains != "" {
		conds = append(conds, sb.Like("LOWER(t.game)", "%"+strings.ToLower(filters.GameContains)+"%"))
	}
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		conds = append(conds, sb.Or(
			sb.Like("LOWER(t.name)", pattern),
			sb.Like("LOWER(t.game)", pattern),
		))
	}
	return conds
}
