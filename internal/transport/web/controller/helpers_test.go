package controller

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/codebytes2/gamerec/internal/datasources/mocks"
	"github.com/codebytes2/gamerec/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

// mockCommand mocks any command for handler tests.
type mockCommand[Req, Res any] struct {
	mock.Mock
}

func (m *mockCommand[Req, Res]) Execute(ctx context.Context, req Req) (Res, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(Res), args.Error(1)
}

// catalogStore joins the product and rating mocks for handlers that read
// both.
type catalogStore struct {
	*mocks.ProductStore
	*mocks.RatingStore
}
