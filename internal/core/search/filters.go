// Package search holds the pure query-building core: the filter value object,
// the GitHub search string builder, and the shareable-link codec
package search

// Since bounds for the created:> qualifier
const (
	SinceAny = "any"
	Since24h = "24h"
	Since7d  = "7d"
	Since30d = "30d"
	Since1y  = "1y"
)

// Comments enum values
const (
	CommentsNone = "0"
	CommentsSome = "1+"
	CommentsMany = "10+"
)

// Filters is an immutable search filter value object
// Callers replace it wholesale on change, never mutate it in place
type Filters struct {
	Labels      []string `json:"labels" validate:"max=20"`
	Language    string   `json:"language" validate:"max=64"`
	State       string   `json:"state" validate:"omitempty,oneof=open closed"`
	IssueType   string   `json:"issue_type"`
	Priority    string   `json:"priority"`
	LabelStatus string   `json:"label_status"`
	Sort        string   `json:"sort" validate:"omitempty,oneof=created updated comments"`
	Order       string   `json:"order" validate:"omitempty,oneof=asc desc"`
	Unassigned  bool     `json:"unassigned"`
	Author      string   `json:"author,omitempty"`
	Assignee    string   `json:"assignee,omitempty"`
	Mentions    string   `json:"mentions,omitempty"`
	Involves    string   `json:"involves,omitempty"`
	Since       string   `json:"since,omitempty"`
	Comments    string   `json:"comments,omitempty"`
	IsDraft     *bool    `json:"is_draft,omitempty"`
}

// Default returns the filter state a fresh session starts from
func Default() Filters {
	return Filters{
		State: "open",
		Sort:  "created",
		Order: "desc",
	}
}
