package search

import (
	"fmt"
	"strings"
	"time"
)

// isoMillis matches the wire format GitHub accepts for created:> bounds
const isoMillis = "2006-01-02T15:04:05.000Z"

// BuildQuery renders the GitHub search string for free text plus filters
// Rules apply in a fixed order so identical inputs always produce the same
// string; that string is the orchestrator's session key
//
// Labels are wrapped in double quotes with no further escaping. A set
// priority emits two ANDed label terms (the priority convention and the bare
// word); both narrow the result set, which is the shipped behavior
func BuildQuery(free string, f Filters, now time.Time) string {
	parts := make([]string, 0, 8)

	if t := strings.TrimSpace(free); t != "" {
		parts = append(parts, t)
	}

	parts = append(parts, "is:issue")
	parts = append(parts, "state:"+f.State)

	for _, label := range f.Labels {
		parts = append(parts, quoteLabel(label))
	}

	if f.Priority != "" {
		lower := strings.ToLower(f.Priority)
		parts = append(parts, quoteLabel("priority: "+lower))
		parts = append(parts, quoteLabel(lower))
	}

	if f.Language != "" {
		parts = append(parts, "language:"+f.Language)
	}

	if f.Unassigned {
		parts = append(parts, "no:assignee")
	}

	if f.Author != "" {
		parts = append(parts, "author:"+f.Author)
	}
	if f.Assignee != "" {
		parts = append(parts, "assignee:"+f.Assignee)
	}
	if f.Mentions != "" {
		parts = append(parts, "mentions:"+f.Mentions)
	}
	if f.Involves != "" {
		parts = append(parts, "involves:"+f.Involves)
	}

	if f.Since != "" && f.Since != SinceAny {
		if bound, ok := sinceBound(now, f.Since); ok {
			parts = append(parts, "created:>"+bound.UTC().Format(isoMillis))
		}
	}

	switch f.Comments {
	case CommentsNone:
		parts = append(parts, "comments:0")
	case CommentsSome:
		parts = append(parts, "comments:>0")
	case CommentsMany:
		parts = append(parts, "comments:>10")
	}

	if f.IsDraft != nil {
		parts = append(parts, fmt.Sprintf("draft:%t", *f.IsDraft))
	}

	return strings.Join(parts, " ")
}

// quoteLabel wraps a label value in double quotes
// Embedded quotes pass through unescaped; GitHub tolerates the result
func quoteLabel(v string) string { return `label:"` + v + `"` }

// sinceBound subtracts the fixed offset for a since value
func sinceBound(now time.Time, since string) (time.Time, bool) {
	switch since {
	case Since24h:
		return now.Add(-24 * time.Hour), true
	case Since7d:
		return now.AddDate(0, 0, -7), true
	case Since30d:
		return now.AddDate(0, 0, -30), true
	case Since1y:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}
