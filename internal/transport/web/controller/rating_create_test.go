package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/domain"
)

func TestRatingCreate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		userID     string
		body       string
		createErr  error
		wantStatus int
		skipCmd    bool
	}{
		{
			name:       "success",
			userID:     "user-1",
			body:       `{"product_id":"p1","score":4}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed_body",
			userID:     "user-1",
			body:       `{"product_id":`,
			wantStatus: http.StatusBadRequest,
			skipCmd:    true,
		},
		{
			name:       "score_out_of_range",
			userID:     "user-1",
			body:       `{"product_id":"p1","score":6}`,
			createErr:  domain.ErrValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate_rating",
			userID:     "user-1",
			body:       `{"product_id":"p1","score":4}`,
			createErr:  domain.ErrDuplicateRating,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown_product",
			userID:     "user-1",
			body:       `{"product_id":"missing","score":4}`,
			createErr:  domain.ErrProductNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			createCmd := &mockCommand[command.CreateRatingRequest, domain.Rating]{}
			if !tc.skipCmd {
				createCmd.On("Execute", mock.Anything, mock.MatchedBy(func(req command.CreateRatingRequest) bool {
					return req.UserID == tc.userID
				})).Return(domain.Rating{ID: "r1", UserID: tc.userID}, tc.createErr)
			}

			ctrl := RatingCreate{CreateCmd: createCmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/ratings", strings.NewReader(tc.body))
			req = testContextWithUserID(tc.userID)(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
