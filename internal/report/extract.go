package report

import "github.com/jonathan/link-doctor/internal/types"

// brokenCategories are the status classes treated as dead links, in output order.
var brokenCategories = []string{"4xx", "5xx"}

// ExtractDeadLinks flattens the broken categories of a report into dead links.
//
// Extraction is gated on the summary counters: when all of them are zero the
// result is empty even if the categories carry entries. Entries keep their
// source order and duplicates are preserved.
func ExtractDeadLinks(report *types.LinkReport) []types.DeadLink {
	deadLinks := []types.DeadLink{}
	if report == nil || !report.Summary.HasErrors() {
		return deadLinks
	}

	for _, label := range brokenCategories {
		category, ok := report.Category(label)
		if !ok {
			continue
		}
		for _, entry := range category.URLs {
			deadLinks = append(deadLinks, types.DeadLink{URL: entry.URL, FoundOn: entry.FoundOn})
		}
	}

	return deadLinks
}
