// Package types provides type definitions for structured data used throughout the link-doctor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// LinkReport is the link-health report produced by an external link checker.
type LinkReport struct {
	Summary        Summary                    `json:"summary"`
	LinkStatistics map[string]json.RawMessage `json:"link_statistics"`
}

// Summary holds the aggregate counters of a LinkReport.
// The counters only gate extraction; the categories are the source of truth.
type Summary struct {
	ClientErrors     int `json:"client_errors"`
	ServerErrors     int `json:"server_errors"`
	UnknownResponses int `json:"unknown_responses"`
}

// HasErrors reports whether any counter is non-zero.
func (s Summary) HasErrors() bool {
	return s.ClientErrors > 0 || s.ServerErrors > 0 || s.UnknownResponses > 0
}

// Category decodes the bucket stored under label. It reports false when the
// bucket is absent or is not shaped like a Category (counts, bare lists).
func (r *LinkReport) Category(label string) (Category, bool) {
	raw, ok := r.LinkStatistics[label]
	if !ok {
		return Category{}, false
	}
	var category Category
	if err := json.Unmarshal(raw, &category); err != nil {
		return Category{}, false
	}
	return category, true
}

// Category is one status class bucket ("4xx", "5xx", ...) of a LinkReport.
type Category struct {
	URLs []LinkEntry `json:"urls"`
}

// LinkEntry is a single link observation inside a Category
type LinkEntry struct {
	URL     string `json:"url"`
	FoundOn string `json:"found_on"`
}

// DeadLink is a broken URL together with the page it was found on.
type DeadLink struct {
	URL     string `json:"url"`
	FoundOn string `json:"found_on"`
}
