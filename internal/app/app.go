package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/codebytes2/gamerec/internal/auth"
	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/datasources/mysql"
	"github.com/codebytes2/gamerec/internal/transport/web/router"
	"github.com/codebytes2/gamerec/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	store, err := setupStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up store: %w", err)
	}

	tokens, err := auth.NewJWT(
		MustGetEnvAsString(ctx, "JWT_SECRET"),
		MustGetEnvAsDuration(ctx, "JWT_TTL"),
	)
	if err != nil {
		return nil, fmt.Errorf("setting up token issuer: %w", err)
	}

	httpRouter, err := router.MakeRouter(router.Config{
		Store: store,

		RegisterCmd:         command.NewRegisterUser(store, store),
		LoginCmd:            command.NewLoginUser(store, tokens),
		CreateProductCmd:    command.NewCreateProduct(store),
		UpdateProductCmd:    command.NewUpdateProduct(store, store),
		DeleteProductCmd:    command.NewDeleteProduct(store, store, store),
		CreateRatingCmd:     command.NewCreateRating(store, store, store, store),
		RecommendationsCmd:  command.NewComputeRecommendations(store, store, store, store, store, store),
		CreateTournamentCmd: command.NewCreateTournament(store),
		DeleteTournamentCmd: command.NewDeleteTournament(store, store),
		JoinTournamentCmd:   command.NewJoinTournament(store, store, store, store, store, store),

		RSSFeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		RSSFeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		RSSFeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		LatestCacheMaxAge:  MustGetEnvAsDuration(ctx, "RSS_FEED_LATEST_CACHE_MAX_AGE"),

		AuthMiddleware: setupAuthMiddleware(tokens),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

func setupStore(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupAuthMiddleware(tokens *auth.JWT) func(http.Handler) http.Handler {
	return router.NewAuthMiddleware([]router.AuthValidator{
		router.NewJWTValidator(tokens),
	})
}
