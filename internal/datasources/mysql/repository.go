package mysql

import (
	"database/sql"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

var _ datasources.UserRepository = (*Repository)(nil)
var _ datasources.ProductRepository = (*Repository)(nil)
var _ datasources.RatingRepository = (*Repository)(nil)
var _ datasources.RecommendationRepository = (*Repository)(nil)
var _ datasources.TournamentRepository = (*Repository)(nil)

// Repository implements every store on a single MySQL database.
type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func paginationToLimitOffset(options domain.ListOptions) (limit, offset int) {
	return options.PageSize, (options.Page - 1) * options.PageSize
}
