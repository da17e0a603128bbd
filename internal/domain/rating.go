package domain

import "time"

// Score bounds for a product rating.
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a single user's score for a product. At most one rating exists
// per (user, product) pair; the ratings store enforces that.
type Rating struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
