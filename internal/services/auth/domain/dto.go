// Package domain holds DTOs for auth http and service contracts
package domain

import "issuehound/internal/adapters/github"

// SetTokenInput carries a personal access token to verify and store
type SetTokenInput struct {
	Token string `json:"token"`
}

// Status describes the current authentication state
// TokenPresent can be true while Authenticated is false when the stored
// token failed its last verification
type Status struct {
	Authenticated bool         `json:"authenticated"`
	TokenPresent  bool         `json:"token_present"`
	User          *github.User `json:"user,omitempty"`
	Scopes        []string     `json:"scopes,omitempty"`
}
