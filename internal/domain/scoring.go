package domain

import (
	"math"
)

// Relevance blend weights and caps. The tag score cap stops a product
// matching many high-affinity tags from dominating the blend; the composite
// itself is deliberately not capped.
const (
	tagScoreWeight        = 0.5
	ratingScoreWeight     = 0.3
	popularityScoreWeight = 0.2

	tagScoreCap = 10.0
)

// TagAffinities accumulates a per-tag preference weight from a user's rating
// history. Each rating contributes score/5 to every tag on the rated product,
// so a 5 adds 1.0 per tag and a 1 adds 0.2. Repeated ratings over the same
// tags accumulate additively, unbounded at this stage.
//
// Ratings whose product is missing from productsByID are skipped.
func TagAffinities(ratings []Rating, productsByID map[string]Product) map[string]float64 {
	affinities := make(map[string]float64)
	for _, r := range ratings {
		product, ok := productsByID[r.ProductID]
		if !ok {
			continue
		}
		for _, tag := range product.Tags {
			affinities[tag] += float64(r.Score) / float64(MaxRatingScore)
		}
	}
	return affinities
}

// TagScore sums the user's affinities over the product's tags, capped at 10.
// A product with no tags, or a user with no affinities, scores 0.
func TagScore(product Product, affinities map[string]float64) float64 {
	if len(product.Tags) == 0 || len(affinities) == 0 {
		return 0.0
	}

	score := 0.0
	for _, tag := range product.Tags {
		score += affinities[tag]
	}
	return math.Min(score, tagScoreCap)
}

// RatingScore rescales the arithmetic mean of the product's rating scores
// from the [1,5] domain to [0,1]. No ratings means 0.
func RatingScore(ratings []Rating) float64 {
	avg := AverageRating(ratings)
	if avg == nil {
		return 0.0
	}
	return (*avg - float64(MinRatingScore)) / float64(MaxRatingScore-MinRatingScore)
}

// AverageRating returns the arithmetic mean of the ratings' scores, or nil
// when there are none. The nil is meaningful: response views must distinguish
// "unrated" from "rated 0", so never default it.
func AverageRating(ratings []Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	avg := float64(sum) / float64(len(ratings))
	return &avg
}

// PopularityScore log-damps the externally maintained popularity counter into
// [0,1] via min(1, ln(1+n)/10), so very large counters cannot dominate.
func PopularityScore(popularity int64) float64 {
	if popularity <= 0 {
		return 0.0
	}
	return math.Min(math.Log(1+float64(popularity))/10.0, 1.0)
}

// CompositeScore blends the three component scores:
// 0.5*tag + 0.3*rating + 0.2*popularity.
func CompositeScore(tagScore, ratingScore, popularityScore float64) float64 {
	return tagScoreWeight*tagScore + ratingScoreWeight*ratingScore + popularityScoreWeight*popularityScore
}
