package domain

import "time"

// AlgorithmVersion tags every persisted recommendation with the scoring
// algorithm revision that produced it.
const AlgorithmVersion = "v1.0"

// Recommendation is the persisted record of one computation run: the ranked
// product IDs for a user at a point in time. Records are append-only; history
// accumulates and prior records are never mutated or deleted.
type Recommendation struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ProductIDs       []string  `json:"product_ids"`
	ComputedAt       time.Time `json:"computed_at"`
	AlgorithmVersion string    `json:"algorithm_version"`
}

// RecommendedProduct is the response view of one ranked product: its catalog
// fields plus the derived numbers. AverageRating is nil when the product has
// no ratings at all; RelevanceScore is always present.
type RecommendedProduct struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	AverageRating   *float64 `json:"average_rating"`
	PopularityScore int64    `json:"popularity_score"`
	RelevanceScore  float64  `json:"relevance_score"`
}

// RecommendationResult is the full response for one computation run.
type RecommendationResult struct {
	ID                  string               `json:"id"`
	UserID              string               `json:"user_id"`
	RecommendedProducts []RecommendedProduct `json:"recommended_products"`
	ComputedAt          time.Time            `json:"computed_at"`
	AlgorithmVersion    string               `json:"algorithm_version"`
}
