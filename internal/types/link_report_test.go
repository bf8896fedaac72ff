package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_HasErrors(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    bool
	}{
		{name: "all zero", summary: Summary{}, want: false},
		{name: "client errors", summary: Summary{ClientErrors: 2}, want: true},
		{name: "server errors", summary: Summary{ServerErrors: 1}, want: true},
		{name: "unknown responses", summary: Summary{UnknownResponses: 3}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.HasErrors())
		})
	}
}

func TestLinkReport_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"summary": {"client_errors": 2, "server_errors": 0, "unknown_responses": 0},
		"link_statistics": {
			"4xx": {"urls": [{"url": "http://ex.com/borwser.html", "found_on": "http://ex.com"}]},
			"2xx": {"urls": []}
		}
	}`

	var report LinkReport
	err := json.Unmarshal([]byte(jsonInput), &report)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Summary.ClientErrors)
	category, ok := report.Category("4xx")
	require.True(t, ok)
	assert.Equal(t, []LinkEntry{{URL: "http://ex.com/borwser.html", FoundOn: "http://ex.com"}}, category.URLs)
}

func TestLinkReport_Category(t *testing.T) {
	report := LinkReport{LinkStatistics: map[string]json.RawMessage{
		"total": json.RawMessage(`5`),
		"3xx":   json.RawMessage(`["http://ex.com/moved"]`),
		"5xx":   json.RawMessage(`{"urls": []}`),
	}}

	_, ok := report.Category("total")
	assert.False(t, ok)
	_, ok = report.Category("3xx")
	assert.False(t, ok)
	_, ok = report.Category("4xx")
	assert.False(t, ok)
	category, ok := report.Category("5xx")
	assert.True(t, ok)
	assert.Empty(t, category.URLs)
}

func TestDeadLink_JSONMarshaling(t *testing.T) {
	link := DeadLink{URL: "http://ex.com/x", FoundOn: "http://ex.com"}

	jsonBytes, err := json.Marshal(link)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url": "http://ex.com/x", "found_on": "http://ex.com"}`, string(jsonBytes))
}
