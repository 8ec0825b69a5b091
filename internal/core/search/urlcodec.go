package search

import (
	"net/url"
	"strings"
)

// EncodeFilters mirrors the shareable filter state into URL query values
// Only non-default fields are emitted so links stay short
func EncodeFilters(free string, f Filters) url.Values {
	v := url.Values{}
	if free != "" {
		v.Set("q", free)
	}
	if len(f.Labels) > 0 {
		v.Set("labels", strings.Join(f.Labels, ","))
	}
	if f.Language != "" {
		v.Set("lang", f.Language)
	}
	if f.State != "" && f.State != "open" {
		v.Set("state", f.State)
	}
	if f.Sort != "" && f.Sort != "created" {
		v.Set("sort", f.Sort)
	}
	if f.Order != "" && f.Order != "desc" {
		v.Set("order", f.Order)
	}
	if f.Unassigned {
		v.Set("unassigned", "1")
	}
	return v
}

// ParseFilters rebuilds free text and filters from URL query values
// Unknown parameters are ignored; missing ones fall back to defaults
func ParseFilters(v url.Values) (free string, f Filters) {
	f = Default()
	free = v.Get("q")

	if raw := v.Get("labels"); raw != "" {
		for _, l := range strings.Split(raw, ",") {
			if l = strings.TrimSpace(l); l != "" {
				f.Labels = append(f.Labels, l)
			}
		}
	}
	if lang := v.Get("lang"); lang != "" {
		f.Language = lang
	}
	if state := v.Get("state"); state == "open" || state == "closed" {
		f.State = state
	}
	switch v.Get("sort") {
	case "created", "updated", "comments":
		f.Sort = v.Get("sort")
	}
	switch v.Get("order") {
	case "asc", "desc":
		f.Order = v.Get("order")
	}
	switch v.Get("unassigned") {
	case "1", "true":
		f.Unassigned = true
	}
	return free, f
}
