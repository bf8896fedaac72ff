package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/link-doctor/internal/types"
)

func strPtr(s string) *string { return &s }

func TestPrintDeadLinks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDeadLinks([]types.DeadLink{
		{URL: "http://ex.com/borwser.html", FoundOn: "http://ex.com"},
		{URL: "http://ex.com/categorys", FoundOn: "http://ex.com/shop"},
	})
	output := buf.String()

	assert.Contains(t, output, "DEAD LINKS")
	assert.Contains(t, output, "Extracted 2 dead links")
	assert.Contains(t, output, "http://ex.com/borwser.html")
	assert.Contains(t, output, "found on http://ex.com/shop")
}

func TestPrintDeadLinks_Truncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	links := make([]types.DeadLink, 8)
	for i := range links {
		links[i] = types.DeadLink{URL: "http://ex.com/x", FoundOn: "http://ex.com"}
	}
	p.PrintDeadLinks(links)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintDeadLinks_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDeadLinks(nil)

	assert.Contains(t, buf.String(), "No dead links in report")
}

func TestPrintOutcome_Diagnosis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutcome(types.Outcome{Diagnosis: &types.Diagnosis{
		OriginalURL:             "http://ex.com/borwser.html",
		DetectedLanguage:        "English",
		SuggestedCorrection:     strPtr("http://ex.com/browser.html"),
		AlternativeFormsChecked: []string{"http://ex.com/browse.html"},
		Analysis:                "Transposed letters",
		ManualCheckRequired:     true,
	}})
	output := buf.String()

	assert.Contains(t, output, "DIAGNOSIS")
	assert.Contains(t, output, "Correction: http://ex.com/browser.html")
	assert.Contains(t, output, "Verified:   (none)")
	assert.Contains(t, output, "Manual check required")
	assert.Contains(t, output, "http://ex.com/browse.html")
	assert.Contains(t, output, "Transposed letters")
}

func TestPrintOutcome_ErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutcome(types.ErrorOutcome("No response from ChatGPT"))
	assert.Contains(t, buf.String(), "DIAGNOSIS FAILED")
	assert.Contains(t, buf.String(), "No response from ChatGPT")

	buf.Reset()
	p.PrintOutcome(types.MessageOutcome("No broken links found"))
	assert.Contains(t, buf.String(), "No broken links found")
	assert.NotContains(t, buf.String(), "FAILED")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 100))
}

func TestPrintBox_TruncatesMultiByteLinesOnRuneBoundaries(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	// Bullet plus accented path segments: every cut point in bytes would land inside a rune.
	p.printBox("TITLE", "• https://ex.com/"+strings.Repeat("é", 100))

	out := buf.String()
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "...")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
}
