package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codebytes2/gamerec/internal/datasources/mocks"
	"github.com/codebytes2/gamerec/internal/domain"
)

func openTournament(maxParticipants *int, registered int) domain.Tournament {
	now := time.Now()
	return domain.Tournament{
		ID:                  "t1",
		Name:                "Summer Cup",
		Game:                "Strike Vector",
		RegistrationOpenAt:  now.Add(-time.Hour),
		RegistrationCloseAt: now.Add(time.Hour),
		StartDate:           now.Add(2 * time.Hour),
		EndDate:             now.Add(3 * time.Hour),
		MaxParticipants:     maxParticipants,
		Status:              domain.TournamentStatusOpen,
		RegisteredCount:     registered,
	}
}

func intPtr(v int) *int { return &v }

func TestJoinTournament_Execute(t *testing.T) {
	cases := []struct {
		name              string
		tournament        domain.Tournament
		alreadyRegistered bool
		activeCount       int64
		wantErr           error
		wantClosed        bool
	}{
		{
			name:        "success_unlimited",
			tournament:  openTournament(nil, 5),
			activeCount: 6,
		},
		{
			name:        "success_fills_last_slot_and_closes",
			tournament:  openTournament(intPtr(8), 7),
			activeCount: 8,
			wantClosed:  true,
		},
		{
			name:        "success_with_slots_remaining",
			tournament:  openTournament(intPtr(8), 3),
			activeCount: 4,
		},
		{
			name: "window_not_open_yet",
			tournament: func() domain.Tournament {
				tr := openTournament(nil, 0)
				tr.RegistrationOpenAt = time.Now().Add(time.Hour)
				tr.RegistrationCloseAt = time.Now().Add(2 * time.Hour)
				return tr
			}(),
			wantErr: domain.ErrRegistrationClosed,
		},
		{
			name: "window_already_closed",
			tournament: func() domain.Tournament {
				tr := openTournament(nil, 0)
				tr.RegistrationOpenAt = time.Now().Add(-2 * time.Hour)
				tr.RegistrationCloseAt = time.Now().Add(-time.Hour)
				return tr
			}(),
			wantErr: domain.ErrRegistrationClosed,
		},
		{
			name:       "tournament_full",
			tournament: openTournament(intPtr(4), 4),
			wantErr:    domain.ErrTournamentFull,
		},
		{
			name:              "already_registered",
			tournament:        openTournament(intPtr(8), 2),
			alreadyRegistered: true,
			wantErr:           domain.ErrAlreadyRegistered,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tournaments := &mocks.TournamentStore{}
			users := &mocks.UserStore{}

			tournaments.On("GetTournament", mock.Anything, "t1").Return(tc.tournament, nil)
			users.On("GetUser", mock.Anything, "u1").Return(domain.User{ID: "u1"}, nil)
			tournaments.On("RegistrationExists", mock.Anything, "t1", "u1").
				Return(tc.alreadyRegistered, nil)
			tournaments.On("CreateRegistration", mock.Anything, mock.Anything).Return(nil)
			tournaments.On("CountActiveRegistrations", mock.Anything, "t1").
				Return(tc.activeCount, nil)
			tournaments.On("UpdateTournamentStatus", mock.Anything, "t1", domain.TournamentStatusClosed).
				Return(nil)

			cmd := NewJoinTournament(tournaments, users, tournaments, tournaments, tournaments, tournaments)
			resp, err := cmd.Execute(context.Background(), JoinTournamentRequest{
				TournamentID: "t1",
				UserID:       "u1",
				Nickname:     "fragger",
			})

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				tournaments.AssertNotCalled(t, "CreateRegistration", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(domain.RegistrationStatusRegistered), resp.Status)
			tournaments.AssertCalled(t, "CreateRegistration", mock.Anything,
				mock.MatchedBy(func(reg domain.TournamentRegistration) bool {
					return reg.TournamentID == "t1" && reg.UserID == "u1" &&
						reg.Nickname == "fragger" && reg.IsActive()
				}))

			if tc.wantClosed {
				tournaments.AssertCalled(t, "UpdateTournamentStatus",
					mock.Anything, "t1", domain.TournamentStatusClosed)
			} else {
				tournaments.AssertNotCalled(t, "UpdateTournamentStatus",
					mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestJoinTournament_UnknownTournament(t *testing.T) {
	tournaments := &mocks.TournamentStore{}
	users := &mocks.UserStore{}

	tournaments.On("GetTournament", mock.Anything, "ghost").
		Return(domain.Tournament{}, domain.ErrTournamentNotFound)

	cmd := NewJoinTournament(tournaments, users, tournaments, tournaments, tournaments, tournaments)
	_, err := cmd.Execute(context.Background(), JoinTournamentRequest{TournamentID: "ghost", UserID: "u1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTournamentNotFound)
}
