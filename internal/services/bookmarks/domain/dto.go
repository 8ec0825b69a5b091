// Package domain holds DTOs for bookmarks http and service contracts
package domain

import "issuehound/internal/adapters/github"

// Issue is the bookmarked issue document as returned by the search API
type Issue = github.Issue

// ToggleInput carries the issue to bookmark or unbookmark
type ToggleInput struct {
	Issue Issue `json:"issue"`
}

// ToggleResult reports the state of the issue after a toggle
type ToggleResult struct {
	Bookmarked bool `json:"bookmarked"`
}
