// Package domain holds DTOs for search http and service contracts
package domain

import (
	"issuehound/internal/adapters/github"
	coresearch "issuehound/internal/core/search"
)

// SearchInput carries the free text and structured filters for a search
// Sort and order ride on the filters and form part of the session key
type SearchInput struct {
	Query   string             `json:"q" validate:"max=256"`
	Filters coresearch.Filters `json:"filters"`
}

// Item is an issue augmented with whether it was seen in a prior session
type Item struct {
	github.Issue
	Seen bool `json:"seen"`
}

// Result is the deduplicated state of a search session
type Result struct {
	Query       string `json:"query"`
	Sort        string `json:"sort"`
	Order       string `json:"order"`
	Total       int    `json:"total"`
	Items       []Item `json:"items"`
	HasMore     bool   `json:"has_more"`
	PagesLoaded int    `json:"pages_loaded"`
}
