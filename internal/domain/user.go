package domain

import "time"

type UserRole string

const (
	RolePlayer UserRole = "PLAYER"
	RoleAdmin  UserRole = "ADMIN"
)

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Roles        []UserRole `json:"roles"`
	CreatedAt    time.Time  `json:"created_at"`
}
