package domain

import (
	"errors"
	"time"
)

// ProjectStatus is the lifecycle label of a project. Any value may follow
// any other; there is no transition rule.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectPaused    ProjectStatus = "paused"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

var ErrProjectNotFound = errors.New("project not found")

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectActive, ProjectPaused, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project belongs to a user and optionally to one of their clients.
type Project struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	ClientID        *string       `json:"clientId,omitempty"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	HourlyRateCents *int64        `json:"hourlyRateCents,omitempty"`
	Status          ProjectStatus `json:"status"`
	Deadline        *time.Time    `json:"deadline,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
