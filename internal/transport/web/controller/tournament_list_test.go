package controller

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebytes2/gamerec/internal/domain"
)

func TestTournamentFiltersFromQuery(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		want    domain.TournamentFilters
		wantErr bool
	}{
		{
			name:  "empty",
			query: "",
			want:  domain.TournamentFilters{},
		},
		{
			name:  "status_lowercase",
			query: "status=open",
			want:  domain.TournamentFilters{Status: domain.TournamentStatusOpen},
		},
		{
			name:  "game_and_search",
			query: "game=chess&search=summer",
			want:  domain.TournamentFilters{GameContains: "chess", Search: "summer"},
		},
		{
			name:    "unknown_status",
			query:   "status=paused",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			got, err := tournamentFiltersFromQuery(q)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
