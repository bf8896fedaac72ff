package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/link-doctor/internal/types"
)

func entries(pairs ...string) []types.LinkEntry {
	out := make([]types.LinkEntry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, types.LinkEntry{URL: pairs[i], FoundOn: pairs[i+1]})
	}
	return out
}

func stats(t *testing.T, categories map[string]types.Category) map[string]json.RawMessage {
	t.Helper()
	out := make(map[string]json.RawMessage, len(categories))
	for label, category := range categories {
		raw, err := json.Marshal(category)
		require.NoError(t, err)
		out[label] = raw
	}
	return out
}

func TestExtractDeadLinks_ZeroCountersYieldNothing(t *testing.T) {
	report := &types.LinkReport{
		Summary: types.Summary{},
		LinkStatistics: stats(t, map[string]types.Category{
			"4xx": {URLs: entries("http://ex.com/a", "http://ex.com")},
			"5xx": {URLs: entries("http://ex.com/b", "http://ex.com")},
		}),
	}

	links := ExtractDeadLinks(report)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestExtractDeadLinks_OrderAndCategories(t *testing.T) {
	report := &types.LinkReport{
		Summary: types.Summary{ServerErrors: 1},
		LinkStatistics: stats(t, map[string]types.Category{
			"5xx": {URLs: entries("http://ex.com/s1", "http://ex.com/p1", "http://ex.com/s2", "http://ex.com/p2")},
			"3xx": {URLs: entries("http://ex.com/moved", "http://ex.com")},
			"4xx": {URLs: entries("http://ex.com/c1", "http://ex.com/p3", "http://ex.com/c2", "http://ex.com/p4")},
		}),
	}

	links := ExtractDeadLinks(report)
	assert.Equal(t, []types.DeadLink{
		{URL: "http://ex.com/c1", FoundOn: "http://ex.com/p3"},
		{URL: "http://ex.com/c2", FoundOn: "http://ex.com/p4"},
		{URL: "http://ex.com/s1", FoundOn: "http://ex.com/p1"},
		{URL: "http://ex.com/s2", FoundOn: "http://ex.com/p2"},
	}, links)
}

func TestExtractDeadLinks_CounterMismatchStillUsesCategories(t *testing.T) {
	// client_errors is zero but the 4xx bucket has entries; unknown_responses opens the gate.
	report := &types.LinkReport{
		Summary: types.Summary{UnknownResponses: 1},
		LinkStatistics: stats(t, map[string]types.Category{
			"4xx": {URLs: entries("http://ex.com/a", "http://ex.com")},
		}),
	}

	links := ExtractDeadLinks(report)
	assert.Equal(t, []types.DeadLink{{URL: "http://ex.com/a", FoundOn: "http://ex.com"}}, links)
}

func TestExtractDeadLinks_DuplicatesPreserved(t *testing.T) {
	report := &types.LinkReport{
		Summary: types.Summary{ClientErrors: 2},
		LinkStatistics: stats(t, map[string]types.Category{
			"4xx": {URLs: entries("http://ex.com/a", "http://ex.com", "http://ex.com/a", "http://ex.com")},
		}),
	}

	assert.Len(t, ExtractDeadLinks(report), 2)
}

func TestExtractDeadLinks_MissingCategories(t *testing.T) {
	report := &types.LinkReport{Summary: types.Summary{ClientErrors: 1}}

	assert.Empty(t, ExtractDeadLinks(report))
	assert.Empty(t, ExtractDeadLinks(nil))
}

func TestExtractDeadLinks_IgnoresFreeFormBuckets(t *testing.T) {
	report := &types.LinkReport{
		Summary: types.Summary{ClientErrors: 1},
		LinkStatistics: map[string]json.RawMessage{
			"total": json.RawMessage(`5`),
			"3xx":   json.RawMessage(`["http://ex.com/moved"]`),
			"4xx":   json.RawMessage(`{"urls": [{"url": "http://ex.com/a", "found_on": "http://ex.com"}]}`),
		},
	}

	assert.Equal(t, []types.DeadLink{{URL: "http://ex.com/a", FoundOn: "http://ex.com"}}, ExtractDeadLinks(report))
}
