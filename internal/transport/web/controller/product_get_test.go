package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codebytes2/gamerec/internal/datasources/mocks"
	"github.com/codebytes2/gamerec/internal/domain"
)

func TestProductGet_ServeHTTP(t *testing.T) {
	testTime := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	t.Run("returns product with rating aggregates", func(t *testing.T) {
		products := &mocks.ProductStore{}
		ratings := &mocks.RatingStore{}

		products.On("GetProduct", mock.Anything, "p1").
			Return(domain.Product{
				ID:        "p1",
				Name:      "Star Sailor",
				Tags:      []string{"space"},
				CreatedAt: testTime,
			}, nil)
		ratings.On("ListProductRatings", mock.Anything, "p1").
			Return([]domain.Rating{
				{ID: "r1", ProductID: "p1", Score: 4},
				{ID: "r2", ProductID: "p1", Score: 5},
			}, nil)

		ctrl := ProductGet{Products: catalogStore{ProductStore: products, RatingStore: ratings}}

		req := httptest.NewRequest(http.MethodGet, "/v1/products/p1", nil)
		req = testContext()(req)
		req = mux.SetURLVars(req, map[string]string{"product_id": "p1"})
		rec := httptest.NewRecorder()

		ctrl.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got ProductDetail
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "p1", got.ID)
		assert.Equal(t, 2, got.RatingCount)
		require.NotNil(t, got.AverageRating)
		assert.InDelta(t, 4.5, *got.AverageRating, 0.0001)
	})

	t.Run("nil average when unrated", func(t *testing.T) {
		products := &mocks.ProductStore{}
		ratings := &mocks.RatingStore{}

		products.On("GetProduct", mock.Anything, "p2").
			Return(domain.Product{ID: "p2", Name: "Dungeon Run"}, nil)
		ratings.On("ListProductRatings", mock.Anything, "p2").
			Return([]domain.Rating{}, nil)

		ctrl := ProductGet{Products: catalogStore{ProductStore: products, RatingStore: ratings}}

		req := httptest.NewRequest(http.MethodGet, "/v1/products/p2", nil)
		req = testContext()(req)
		req = mux.SetURLVars(req, map[string]string{"product_id": "p2"})
		rec := httptest.NewRecorder()

		ctrl.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got ProductDetail
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Nil(t, got.AverageRating)
		assert.Equal(t, 0, got.RatingCount)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		products := &mocks.ProductStore{}
		ratings := &mocks.RatingStore{}

		products.On("GetProduct", mock.Anything, "missing").
			Return(domain.Product{}, domain.ErrProductNotFound)

		ctrl := ProductGet{Products: catalogStore{ProductStore: products, RatingStore: ratings}}

		req := httptest.NewRequest(http.MethodGet, "/v1/products/missing", nil)
		req = testContext()(req)
		req = mux.SetURLVars(req, map[string]string{"product_id": "missing"})
		rec := httptest.NewRecorder()

		ctrl.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		ratings.AssertNotCalled(t, "ListProductRatings", mock.Anything, mock.Anything)
	})
}
