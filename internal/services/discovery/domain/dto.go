// Package domain holds DTOs for discovery http and service contracts
package domain

import "issuehound/internal/core/facets"

// DiscoverInput carries the current search context the facets derive from
// RepositoryURLs are the repository_url fields of the visible results
type DiscoverInput struct {
	Query          string   `json:"q"`
	RepositoryURLs []string `json:"repository_urls"`
}

// TieredLabel re-exports the tagged merge result for transport
type TieredLabel = facets.TieredLabel

// CountsInput maps facet keys to full search query strings
// Capped well below the GraphQL aliased sub-query budget
type CountsInput struct {
	Queries map[string]string `json:"queries" validate:"max=30"`
}
