// Package mocks provides testify mocks for the datasources interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/codebytes2/gamerec/internal/domain"
)

type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetUser(ctx context.Context, userID string) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserStore) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserStore) CreateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type ProductStore struct {
	mock.Mock
}

func (m *ProductStore) ListAllProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *ProductStore) ListProducts(
	ctx context.Context, filters domain.ProductFilters, options domain.ListOptions,
) ([]domain.Product, error) {
	args := m.Called(ctx, filters, options)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *ProductStore) CountProducts(ctx context.Context, filters domain.ProductFilters) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductStore) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *ProductStore) CreateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *ProductStore) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *ProductStore) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type RatingStore struct {
	mock.Mock
}

func (m *RatingStore) ListUserRatings(ctx context.Context, userID string) ([]domain.Rating, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *RatingStore) ListProductRatings(ctx context.Context, productID string) ([]domain.Rating, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *RatingStore) RatingExists(ctx context.Context, userID, productID string) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *RatingStore) CountProductRatings(ctx context.Context, productID string) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RatingStore) CreateRating(ctx context.Context, rating domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

type RecommendationStore struct {
	mock.Mock
}

func (m *RecommendationStore) SaveRecommendation(ctx context.Context, rec domain.Recommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *RecommendationStore) GetLatestRecommendation(ctx context.Context, userID string) (domain.Recommendation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Recommendation), args.Error(1)
}

type TournamentStore struct {
	mock.Mock
}

func (m *TournamentStore) GetTournament(ctx context.Context, tournamentID string) (domain.Tournament, error) {
	args := m.Called(ctx, tournamentID)
	return args.Get(0).(domain.Tournament), args.Error(1)
}

func (m *TournamentStore) ListTournaments(
	ctx context.Context, filters domain.TournamentFilters, options domain.ListOptions,
) ([]domain.Tournament, error) {
	args := m.Called(ctx, filters, options)
	return args.Get(0).([]domain.Tournament), args.Error(1)
}

func (m *TournamentStore) CountTournaments(ctx context.Context, filters domain.TournamentFilters) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TournamentStore) CreateTournament(ctx context.Context, tournament domain.Tournament) error {
	args := m.Called(ctx, tournament)
	return args.Error(0)
}

func (m *TournamentStore) DeleteTournament(ctx context.Context, tournamentID string) error {
	args := m.Called(ctx, tournamentID)
	return args.Error(0)
}

func (m *TournamentStore) UpdateTournamentStatus(
	ctx context.Context, tournamentID string, status domain.TournamentStatus,
) error {
	args := m.Called(ctx, tournamentID, status)
	return args.Error(0)
}

func (m *TournamentStore) CreateRegistration(ctx context.Context, reg domain.TournamentRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *TournamentStore) RegistrationExists(ctx context.Context, tournamentID, userID string) (bool, error) {
	args := m.Called(ctx, tournamentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *TournamentStore) CountActiveRegistrations(ctx context.Context, tournamentID string) (int64, error) {
	args := m.Called(ctx, tournamentID)
	return args.Get(0).(int64), args.Error(1)
}
