package command

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

// ComputeRecommendationsRequest is the request for the ComputeRecommendations command.
type ComputeRecommendationsRequest struct {
	UserID string
}

// ComputeRecommendations ranks the whole catalog for one user by blending
// tag affinity, aggregate rating quality, and log-damped popularity, then
// persists the run as an append-only recommendation record.
//
// Every call recomputes from scratch; nothing is cached between runs. The
// per-product ratings fetch makes this O(products * ratings-per-product)
// store round trips, which is accepted at this catalog's scale.
type ComputeRecommendations struct {
	Users           datasources.UserGetter
	Products        datasources.AllProductsLister
	UserRatings     datasources.UserRatingsLister
	ProductRatings  datasources.ProductRatingsLister
	RatingChecker   datasources.RatingExistenceChecker
	Recommendations datasources.RecommendationSaver
}

// NewComputeRecommendations creates a properly initialized ComputeRecommendations command.
func NewComputeRecommendations(
	users datasources.UserGetter,
	products datasources.AllProductsLister,
	userRatings datasources.UserRatingsLister,
	productRatings datasources.ProductRatingsLister,
	ratingChecker datasources.RatingExistenceChecker,
	recommendations datasources.RecommendationSaver,
) *ComputeRecommendations {
	return &ComputeRecommendations{
		Users:           users,
		Products:        products,
		UserRatings:     userRatings,
		ProductRatings:  productRatings,
		RatingChecker:   ratingChecker,
		Recommendations: recommendations,
	}
}

// scoredProduct pairs a product with its computed relevance for one run.
// A zero score either fell out of the math or marks an already-rated
// product; the two are indistinguishable on purpose.
type scoredProduct struct {
	product   domain.Product
	avgRating *float64
	score     float64
}

// Execute computes and persists recommendations for the user.
func (c *ComputeRecommendations) Execute(
	ctx context.Context, req ComputeRecommendationsRequest,
) (domain.RecommendationResult, error) {
	if _, err := c.Users.GetUser(ctx, req.UserID); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("resolving user: %w", err)
	}

	products, err := c.Products.ListAllProducts(ctx)
	if err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("listing products: %w", err)
	}

	userRatings, err := c.UserRatings.ListUserRatings(ctx, req.UserID)
	if err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("listing user ratings: %w", err)
	}

	productsByID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	affinities := domain.TagAffinities(userRatings, productsByID)

	scored, err := c.scoreProducts(ctx, req.UserID, products, affinities)
	if err != nil {
		return domain.RecommendationResult{}, err
	}

	// Stable: equal scores keep catalog enumeration order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	views := make([]domain.RecommendedProduct, 0, len(scored))
	productIDs := make([]string, 0, len(scored))
	for _, sp := range scored {
		views = append(views, domain.RecommendedProduct{
			ID:              sp.product.ID,
			Name:            sp.product.Name,
			Description:     sp.product.Description,
			Category:        sp.product.Category,
			Tags:            sp.product.Tags,
			AverageRating:   sp.avgRating,
			PopularityScore: sp.product.PopularityScore,
			RelevanceScore:  sp.score,
		})
		productIDs = append(productIDs, sp.product.ID)
	}

	rec := domain.Recommendation{
		ID:               uuid.New().String(),
		UserID:           req.UserID,
		ProductIDs:       productIDs,
		ComputedAt:       time.Now(),
		AlgorithmVersion: domain.AlgorithmVersion,
	}

	// Persisted even when the catalog is empty; the empty run is still a run.
	if err := c.Recommendations.SaveRecommendation(ctx, rec); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("saving recommendation: %w", err)
	}

	return domain.RecommendationResult{
		ID:                  rec.ID,
		UserID:              rec.UserID,
		RecommendedProducts: views,
		ComputedAt:          rec.ComputedAt,
		AlgorithmVersion:    rec.AlgorithmVersion,
	}, nil
}

// scoreProducts computes the composite relevance of every product in catalog
// order. Missing tags, ratings, or popularity degrade their component to 0
// rather than failing the run.
func (c *ComputeRecommendations) scoreProducts(
	ctx context.Context,
	userID string,
	products []domain.Product,
	affinities map[string]float64,
) ([]scoredProduct, error) {
	scored := make([]scoredProduct, 0, len(products))
	for _, p := range products {
		ratings, err := c.ProductRatings.ListProductRatings(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("listing ratings for product %s: %w", p.ID, err)
		}

		score := domain.CompositeScore(
			domain.TagScore(p, affinities),
			domain.RatingScore(ratings),
			domain.PopularityScore(p.PopularityScore),
		)

		// The existence query is the authority here, not the loaded history:
		// a rating written after the history read must still floor the score.
		rated, err := c.RatingChecker.RatingExists(ctx, userID, p.ID)
		if err != nil {
			return nil, fmt.Errorf("checking rating existence for product %s: %w", p.ID, err)
		}
		if rated {
			// Already-rated products stay in the output, floored to zero.
			score = 0.0
		}

		scored = append(scored, scoredProduct{
			product:   p,
			avgRating: domain.AverageRating(ratings),
			score:     score,
		})
	}

	return scored, nil
}
