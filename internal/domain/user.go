package domain

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// User is an admin account able to manage reservations. There is no
// public registration; accounts are created by the seed tool.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
