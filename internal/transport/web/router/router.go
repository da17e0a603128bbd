package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
	"github.com/codebytes2/gamerec/internal/transport/web/controller"
)

// Store is the read surface the routes need directly; everything mutating
// goes through a command.
type Store interface {
	datasources.ProductRepository
	datasources.RatingRepository
	datasources.TournamentRepository
	datasources.RecommendationRepository
}

// Config carries everything MakeRouter wires into handlers.
type Config struct {
	Store Store

	RegisterCmd         command.Command[command.RegisterUserRequest, domain.User]
	LoginCmd            command.Command[command.LoginUserRequest, command.LoginUserResponse]
	CreateProductCmd    command.Command[command.CreateProductRequest, domain.Product]
	UpdateProductCmd    command.Command[command.UpdateProductRequest, domain.Product]
	DeleteProductCmd    command.Command[command.DeleteProductRequest, command.Empty]
	CreateRatingCmd     command.Command[command.CreateRatingRequest, domain.Rating]
	RecommendationsCmd  command.Command[command.ComputeRecommendationsRequest, domain.RecommendationResult]
	CreateTournamentCmd command.Command[command.CreateTournamentRequest, domain.Tournament]
	DeleteTournamentCmd command.Command[command.DeleteTournamentRequest, command.Empty]
	JoinTournamentCmd   command.Command[command.JoinTournamentRequest, command.JoinTournamentResponse]

	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string
	LatestCacheMaxAge  time.Duration

	AuthMiddleware func(http.Handler) http.Handler
}

func MakeRouter(cfg Config) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(cfg.AuthMiddleware)

	r.Handle("/health", controller.Health{}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/auth/register", controller.AuthRegister{
		RegisterCmd: cfg.RegisterCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/auth/login", controller.AuthLogin{
		LoginCmd: cfg.LoginCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/products", requireAuthMiddleware(controller.ProductCreate{
		CreateCmd: cfg.CreateProductCmd,
	})).Methods(http.MethodPost)

	r.Handle("/v1/products", controller.ProductList{
		Lister: cfg.Store,
	}).Methods(http.MethodGet, http.MethodOptions)

	// Registered before the {product_id} route so "search" is not taken
	// for an ID.
	r.Handle("/v1/products/search", controller.ProductSearch{
		Lister: cfg.Store,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/products/{product_id}", controller.ProductGet{
		Products: cfg.Store,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/products/{product_id}", requireAuthMiddleware(controller.ProductUpdate{
		UpdateCmd: cfg.UpdateProductCmd,
	})).Methods(http.MethodPut)

	r.Handle("/v1/products/{product_id}", requireAuthMiddleware(controller.ProductDelete{
		DeleteCmd: cfg.DeleteProductCmd,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/ratings", requireAuthMiddleware(controller.RatingCreate{
		CreateCmd: cfg.CreateRatingCmd,
	})).Methods(http.MethodPost)

	r.Handle("/v1/ratings/average/{product_id}", controller.RatingAverageGet{
		Products: cfg.Store,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/tournaments", requireAuthMiddleware(controller.TournamentCreate{
		CreateCmd: cfg.CreateTournamentCmd,
	})).Methods(http.MethodPost)

	r.Handle("/v1/tournaments", controller.TournamentList{
		Lister: cfg.Store,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/tournaments/{tournament_id}", controller.TournamentGet{
		Tournaments: cfg.Store,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/tournaments/{tournament_id}", requireAuthMiddleware(controller.TournamentDelete{
		DeleteCmd: cfg.DeleteTournamentCmd,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/tournaments/{tournament_id}/join", requireAuthMiddleware(controller.TournamentJoin{
		JoinCmd: cfg.JoinTournamentCmd,
	})).Methods(http.MethodPost)

	r.Handle("/v1/recommendations/{user_id}", requireAuthMiddleware(controller.RecommendationsGet{
		ComputeCmd: cfg.RecommendationsCmd,
	})).Methods(http.MethodGet)

	r.Handle("/v1/recommendations/{user_id}/latest", requireAuthMiddleware(controller.RecommendationLatestGet{
		Recommendations: cfg.Store,
	})).Methods(http.MethodGet)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    cfg.RSSFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  cfg.RSSFeedAuthorName,
		FeedAuthorEmail: cfg.RSSFeedAuthorEmail,
		Products:        cfg.Store,
		CacheMaxAge:     cfg.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
