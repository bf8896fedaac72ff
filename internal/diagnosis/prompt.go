package diagnosis

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/link-doctor/internal/llm"
	"github.com/jonathan/link-doctor/internal/prompts"
	"github.com/jonathan/link-doctor/internal/types"
)

const promptFile = "diagnosis.json"

// OutputSchema is the JSON object the model is asked to return.
// Its fields are singular even though the prompt carries the whole batch.
func OutputSchema() llm.OutputSchema {
	return llm.OutputSchema{
		Name: "Diagnosis",
		Fields: []llm.SchemaField{
			{Name: "original_url", Type: "string"},
			{Name: "detected_language", Type: "string"},
			{Name: "suggested_correction", Type: "string or null"},
			{Name: "alternative_forms_checked", Type: "list of strings"},
			{Name: "verified_working_url", Type: "string or null"},
			{Name: "analysis", Type: "short explanation"},
			{Name: "manual_check_required", Type: "true/false"},
		},
	}
}

// BuildPrompt returns the system directive and the user prompt for a batch of dead links.
func BuildPrompt(links []types.DeadLink) (system string, prompt string, err error) {
	system, err = prompts.Get(promptFile, "system-web-path-analyzer")
	if err != nil {
		return "", "", err
	}

	batch, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to serialize dead links: %w", err)
	}

	prompt, err = prompts.Render(promptFile, "diagnose-dead-links", map[string]string{
		"DeadLinks":    string(batch),
		"OutputFormat": llm.FormatOutputSchema(OutputSchema()),
	})
	if err != nil {
		return "", "", err
	}

	return system, prompt, nil
}
