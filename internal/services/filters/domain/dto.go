// Package domain holds DTOs for saved-filter http and service contracts
package domain

import (
	"time"

	coresearch "issuehound/internal/core/search"
)

// SavedFilter is a named search the user can recall later
// Permalink is a shareable search path derived from the query and filters
type SavedFilter struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Query     string             `json:"q"`
	Filters   coresearch.Filters `json:"filters"`
	Permalink string             `json:"permalink"`
	CreatedAt time.Time          `json:"created_at"`
}

// SaveInput carries a filter set to persist under a fresh id
type SaveInput struct {
	Name    string             `json:"name" validate:"max=100"`
	Query   string             `json:"q" validate:"max=256"`
	Filters coresearch.Filters `json:"filters"`
}
