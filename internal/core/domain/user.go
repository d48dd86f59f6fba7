package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin      = "admin"
	RoleFreelancer = "freelancer"
	RoleClient     = "client"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserDeactivated = errors.New("user is deactivated")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether r is one of the known user roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleFreelancer || r == RoleClient
}

// User models an authenticated actor. Identity comes from the external
// identity provider; the row is upserted on first login.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	Role            string    `json:"role"`
	HourlyRateCents *int64    `json:"hourlyRateCents,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
