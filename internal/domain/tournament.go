package domain

import (
	"math"
	"time"
)

type TournamentStatus string

const (
	TournamentStatusUpcoming TournamentStatus = "UPCOMING"
	TournamentStatusOpen     TournamentStatus = "OPEN"
	TournamentStatusClosed   TournamentStatus = "CLOSED"
)

var ValidTournamentStatuses = []TournamentStatus{
	TournamentStatusUpcoming,
	TournamentStatusOpen,
	TournamentStatusClosed,
}

type Tournament struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Game                string           `json:"game"`
	StartDate           time.Time        `json:"start_date"`
	EndDate             time.Time        `json:"end_date"`
	RegistrationOpenAt  time.Time        `json:"registration_open_at"`
	RegistrationCloseAt time.Time        `json:"registration_close_at"`
	Rules               string           `json:"rules,omitempty"`
	MaxParticipants     *int             `json:"max_participants"`
	Status              TournamentStatus `json:"status"`
	RegisteredCount     int              `json:"registered_count"`
	CreatedAt           time.Time        `json:"created_at"`
}

// AvailableSlots reports how many registrations the tournament can still
// accept. A tournament without a participant cap never runs out.
func (t Tournament) AvailableSlots() int {
	if t.MaxParticipants == nil {
		return math.MaxInt
	}
	return max(0, *t.MaxParticipants-t.RegisteredCount)
}

// RegistrationWindowContains reports whether now falls inside the
// tournament's registration window, bounds included.
func (t Tournament) RegistrationWindowContains(now time.Time) bool {
	return !now.Before(t.RegistrationOpenAt) && !now.After(t.RegistrationCloseAt)
}

type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "REGISTERED"
	RegistrationStatusCancelled  RegistrationStatus = "CANCELLED"
)

type TournamentRegistration struct {
	ID           string             `json:"id"`
	TournamentID string             `json:"tournament_id"`
	UserID       string             `json:"user_id"`
	Nickname     string             `json:"nickname"`
	Status       RegistrationStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
}

func (r TournamentRegistration) IsActive() bool {
	return r.Status == RegistrationStatusRegistered
}

type TournamentFilters struct {
	Status       TournamentStatus
	GameContains string
	Search       string
}
