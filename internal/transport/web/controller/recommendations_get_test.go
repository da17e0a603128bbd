package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/domain"
)

func TestRecommendationsGet_ServeHTTP(t *testing.T) {
	testTime := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	score := 4.5
	result := domain.RecommendationResult{
		ID:     "rec-1",
		UserID: "user-1",
		RecommendedProducts: []domain.RecommendedProduct{
			{
				ID:             "p1",
				Name:           "Star Sailor",
				Tags:           []string{"space", "rpg"},
				AverageRating:  &score,
				RelevanceScore: 0.73,
			},
			{
				ID:             "p2",
				Name:           "Dungeon Run",
				RelevanceScore: 0.0,
			},
		},
		ComputedAt:       testTime,
		AlgorithmVersion: domain.AlgorithmVersion,
	}

	cases := []struct {
		name       string
		userID     string
		result     domain.RecommendationResult
		computeErr error
		wantStatus int
	}{
		{
			name:       "success",
			userID:     "user-1",
			result:     result,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown_user",
			userID:     "missing-user",
			computeErr: domain.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "store_failure",
			userID:     "user-1",
			computeErr: errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			computeCmd := &mockCommand[command.ComputeRecommendationsRequest, domain.RecommendationResult]{}
			computeCmd.On("Execute", mock.Anything, command.ComputeRecommendationsRequest{UserID: tc.userID}).
				Return(tc.result, tc.computeErr)

			ctrl := RecommendationsGet{ComputeCmd: computeCmd}

			req := httptest.NewRequest(http.MethodGet, "/v1/recommendations/"+tc.userID, nil)
			req = testContextWithUserID(tc.userID)(req)
			req = mux.SetURLVars(req, map[string]string{"user_id": tc.userID})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var got domain.RecommendationResult
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, tc.result, got)
			}
		})
	}
}
