package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	prompt, err := Get("diagnosis.json", "diagnose-dead-links")
	require.NoError(t, err)
	assert.Contains(t, prompt, "The following links are broken")
	assert.Contains(t, prompt, "{{.DeadLinks}}")
	assert.Contains(t, prompt, "{{.OutputFormat}}")
}

func TestGet_SystemPrompt(t *testing.T) {
	prompt, err := Get("diagnosis.json", "system-web-path-analyzer")
	require.NoError(t, err)
	assert.Contains(t, prompt, "web path analyzer")
	assert.Contains(t, prompt, "valid JSON only")
}

func TestGet_InvalidFile(t *testing.T) {
	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get("diagnosis.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFormat(t *testing.T) {
	template := "Links: {{.DeadLinks}} Format: {{.OutputFormat}}"
	data := map[string]string{
		"DeadLinks":    "[]",
		"OutputFormat": "{}",
	}

	assert.Equal(t, "Links: [] Format: {}", Format(template, data))
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"

	assert.Equal(t, template, Format(template, map[string]string{})) // Placeholder remains
}

func TestRender_AllPlaceholdersFilled(t *testing.T) {
	prompt, err := Render("diagnosis.json", "diagnose-dead-links", map[string]string{
		"DeadLinks":    `[{"url": "http://ex.com/{{.Odd}}"}]`,
		"OutputFormat": "{\n}",
	})
	require.NoError(t, err)
	assert.NotContains(t, prompt, "{{.DeadLinks}}")
	assert.Contains(t, prompt, "http://ex.com/{{.Odd}}")
}

func TestRender_MissingPlaceholder(t *testing.T) {
	_, err := Render("diagnosis.json", "diagnose-dead-links", map[string]string{"DeadLinks": "[]"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OutputFormat")
}

func TestCaching(t *testing.T) {
	prompt1, err := Get("diagnosis.json", "diagnose-dead-links")
	require.NoError(t, err)

	prompt2, err := Get("diagnosis.json", "diagnose-dead-links")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	assert.Contains(t, cache, "diagnosis.json")
}
