package domain

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrRecommendationNotFound = errors.New("no recommendation computed for user")

	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDuplicateRating   = errors.New("user has already rated this product")
	ErrProductHasRatings = errors.New("product has ratings and cannot be deleted")

	ErrRegistrationClosed = errors.New("tournament registration window is not open")
	ErrTournamentFull     = errors.New("tournament has no available slots")
	ErrAlreadyRegistered  = errors.New("user is already registered for this tournament")
	ErrTournamentStarted  = errors.New("tournament has already started")

	// ErrValidation marks request-shaped failures; wrap it with the specific
	// field problem so controllers can map the whole family to 400.
	ErrValidation = errors.New("validation failed")
)
