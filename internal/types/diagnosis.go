package types

import (
	"encoding/json"
)

// Diagnosis is the model's judgment over a batch of dead links.
type Diagnosis struct {
	OriginalURL             string   `json:"original_url"`
	DetectedLanguage        string   `json:"detected_language"`
	SuggestedCorrection     *string  `json:"suggested_correction"`
	AlternativeFormsChecked []string `json:"alternative_forms_checked"`
	VerifiedWorkingURL      *string  `json:"verified_working_url"`
	Analysis                string   `json:"analysis"`
	ManualCheckRequired     bool     `json:"manual_check_required"`
}

// Correction returns the suggested correction, or "" when none was given.
func (d *Diagnosis) Correction() string {
	if d == nil || d.SuggestedCorrection == nil {
		return ""
	}
	return *d.SuggestedCorrection
}

// Outcome is the result of the diagnosis step. Exactly one of Diagnosis,
// Message or Error is set.
type Outcome struct {
	Diagnosis *Diagnosis
	Message   string
	Error     string
}

// MessageOutcome returns an informational Outcome.
func MessageOutcome(msg string) Outcome {
	return Outcome{Message: msg}
}

// ErrorOutcome returns an Outcome carrying an error marker.
func ErrorOutcome(msg string) Outcome {
	return Outcome{Error: msg}
}

// Failed reports whether the outcome carries an error marker.
func (o Outcome) Failed() bool {
	return o.Error != ""
}

// MarshalJSON renders the outcome as the diagnosis object itself,
// {"message": ...} or {"error": ...}.
func (o Outcome) MarshalJSON() ([]byte, error) {
	switch {
	case o.Error != "":
		return json.Marshal(map[string]string{"error": o.Error})
	case o.Diagnosis != nil:
		return json.Marshal(o.Diagnosis)
	default:
		return json.Marshal(map[string]string{"message": o.Message})
	}
}

// FinalResult is the object emitted at the end of a run.
type FinalResult struct {
	ErrorFound Outcome `json:"error_found"`
}
