// Package diagnosis asks a hosted language model to explain a batch of dead links
// and propose a corrected URL.
package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/link-doctor/internal/llm"
	"github.com/jonathan/link-doctor/internal/logging"
	"github.com/jonathan/link-doctor/internal/schemas"
	"github.com/jonathan/link-doctor/internal/types"
)

// NoBrokenLinksMessage is returned, without contacting the model, for an empty batch.
const NoBrokenLinksMessage = "No broken links found"

// Service diagnoses dead links through an llm.Client.
type Service struct {
	client llm.Client
	logger *zap.Logger
}

// NewService creates a Service backed by client.
func NewService(client llm.Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logging.OrNop(logger),
	}
}

// Diagnose sends the whole batch in a single request and returns the model's
// judgment. Failures never escape as errors: they come back as an Outcome
// carrying an error marker. Nothing is retried.
func (s *Service) Diagnose(ctx context.Context, links []types.DeadLink) types.Outcome {
	if len(links) == 0 {
		return types.MessageOutcome(NoBrokenLinksMessage)
	}

	name := s.client.Provider().DisplayName()

	system, prompt, err := BuildPrompt(links)
	if err != nil {
		s.logger.Error("failed to build diagnosis prompt", zap.Error(err))
		return types.ErrorOutcome(fmt.Sprintf("%s API call failed: %v", name, err))
	}

	s.logger.Info("requesting diagnosis",
		zap.String("provider", string(s.client.Provider())),
		zap.Int("dead_links", len(links)))

	text, err := s.client.Complete(ctx, llm.Request{System: system, Prompt: prompt, JSON: true})
	switch {
	case errors.Is(err, llm.ErrNoResponse):
		return types.ErrorOutcome(fmt.Sprintf("No response from %s", name))
	case errors.Is(err, llm.ErrEmptyResponse):
		return types.ErrorOutcome(fmt.Sprintf("Empty response from %s", name))
	case err != nil:
		s.logger.Warn("diagnosis call failed", zap.Error(err))
		return types.ErrorOutcome(fmt.Sprintf("%s API call failed: %v", name, err))
	}

	s.logger.Debug("raw diagnosis response", zap.String("response", text))

	return ParseResponse(name, text)
}

// ParseResponse turns the model's text into an Outcome. The text must be a
// single JSON object satisfying the diagnosis schema; a markdown code fence
// around it is tolerated.
func ParseResponse(serviceName, text string) types.Outcome {
	cleaned := llm.CleanJSONBlock(text)
	if cleaned == "" {
		return types.ErrorOutcome(fmt.Sprintf("Empty response from %s", serviceName))
	}
	if !json.Valid([]byte(cleaned)) {
		return types.ErrorOutcome(fmt.Sprintf("%s did not return valid JSON", serviceName))
	}

	if err := schemas.Validate(schemas.Diagnosis, []byte(cleaned)); err != nil {
		detail := err.Error()
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			detail = validationErr.Summary()
		}
		return types.ErrorOutcome(fmt.Sprintf("%s response does not match the diagnosis schema: %s", serviceName, detail))
	}

	var diag types.Diagnosis
	if err := json.Unmarshal([]byte(cleaned), &diag); err != nil {
		return types.ErrorOutcome(fmt.Sprintf("%s did not return valid JSON", serviceName))
	}
	if diag.AlternativeFormsChecked == nil {
		diag.AlternativeFormsChecked = []string{}
	}

	return types.Outcome{Diagnosis: &diag}
}
