package datasources

import (
	"context"

	"github.com/codebytes2/gamerec/internal/domain"
)

// RecommendationSaver appends one computed recommendation record. Inserts are
// append-only; concurrent runs for the same user never overwrite each other.
type RecommendationSaver interface {
	SaveRecommendation(ctx context.Context, rec domain.Recommendation) error
}

// LatestRecommendationGetter retrieves the most recently computed record for
// a user, as ordered by computation timestamp.
type LatestRecommendationGetter interface {
	GetLatestRecommendation(ctx context.Context, userID string) (domain.Recommendation, error)
}

// RecommendationRepository combines all recommendation record operations.
type RecommendationRepository interface {
	RecommendationSaver
	LatestRecommendationGetter
}
