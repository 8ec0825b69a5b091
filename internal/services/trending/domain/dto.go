// Package domain holds DTOs for trending http and service contracts
package domain

import "issuehound/internal/adapters/github"

// Repo is the repository document surfaced to clients
type Repo = github.Repo
