package observability

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/link-doctor/internal/types"
)

// Sink receives the final result of a run. A Sink may fail independently of
// the run that produced the result.
type Sink interface {
	Store(result types.FinalResult) error
}

// ConsoleSink prints results as indented JSON. It stands in for durable storage.
type ConsoleSink struct {
	out io.Writer
}

// NewConsoleSink creates a ConsoleSink writing to out.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

// Store writes the placeholder notice followed by the pretty-printed result.
func (s *ConsoleSink) Store(result types.FinalResult) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if _, err := fmt.Fprintln(s.out, "Skipping database storage for now. Here are the results:"); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if _, err := fmt.Fprintln(s.out, string(jsonBytes)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
