// Package pipeline sequences a link-doctor run: load the report, extract dead
// links, diagnose them, verify the suggested correction and emit the result.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/link-doctor/internal/logging"
	"github.com/jonathan/link-doctor/internal/observability"
	"github.com/jonathan/link-doctor/internal/report"
	"github.com/jonathan/link-doctor/internal/types"
)

// Step names reported in progress events.
const (
	StepLoadReport       = "load_report"
	StepExtractDeadLinks = "extract_dead_links"
	StepDiagnose         = "diagnose"
	StepVerifyCorrection = "verify_correction"
	StepStoreResults     = "store_results"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Diagnoser explains a batch of dead links.
type Diagnoser interface {
	Diagnose(ctx context.Context, links []types.DeadLink) types.Outcome
}

// LivenessChecker reports whether a URL currently answers 200 OK.
type LivenessChecker interface {
	IsAlive(ctx context.Context, url string) bool
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ReportPath string
	OnProgress ProgressCallback
}

// Pipeline wires the run's collaborators together.
type Pipeline struct {
	diagnoser Diagnoser
	checker   LivenessChecker
	sink      observability.Sink
	logger    *zap.Logger
}

// New creates a Pipeline.
func New(diagnoser Diagnoser, checker LivenessChecker, sink observability.Sink, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		diagnoser: diagnoser,
		checker:   checker,
		sink:      sink,
		logger:    logging.OrNop(logger),
	}
}

// Run executes the pipeline once. Only a report that cannot be loaded aborts
// the run; every later failure is carried inside the returned result.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (types.FinalResult, error) {
	runID := uuid.NewString()
	logger := p.logger.With(zap.String("run_id", runID))
	emit := func(step, message string, content any) {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID, Content: content})
		}
	}

	logger.Info("loading report", zap.String("path", opts.ReportPath))
	linkReport, err := report.Load(opts.ReportPath)
	if err != nil {
		logger.Error("failed to load report", zap.Error(err))
		return types.FinalResult{}, fmt.Errorf("failed to load report: %w", err)
	}
	emit(StepLoadReport, "Report loaded", linkReport.Summary)

	deadLinks := report.ExtractDeadLinks(linkReport)
	logger.Info("extracted dead links", zap.Int("count", len(deadLinks)))
	emit(StepExtractDeadLinks, fmt.Sprintf("Extracted %d dead links", len(deadLinks)), deadLinks)

	outcome := p.diagnoser.Diagnose(ctx, deadLinks)
	if outcome.Failed() {
		logger.Warn("diagnosis failed", zap.String("error", outcome.Error))
	}
	emit(StepDiagnose, "Diagnosis complete", outcome)

	outcome = p.verifyCorrection(ctx, logger, outcome)
	if outcome.Diagnosis != nil && outcome.Diagnosis.Correction() != "" {
		emit(StepVerifyCorrection, "Suggested correction checked", outcome)
	}

	result := types.FinalResult{ErrorFound: outcome}
	if err := p.sink.Store(result); err != nil {
		logger.Error("failed to store results", zap.Error(err))
	}
	emit(StepStoreResults, "Results emitted", nil)

	return result, nil
}

// verifyCorrection probes the suggested correction, if any, and records it as
// the verified working URL only when it answers 200 OK.
func (p *Pipeline) verifyCorrection(ctx context.Context, logger *zap.Logger, outcome types.Outcome) types.Outcome {
	if outcome.Failed() || outcome.Diagnosis == nil {
		return outcome
	}

	corrected := outcome.Diagnosis.Correction()
	if corrected == "" {
		return outcome
	}

	diag := *outcome.Diagnosis
	if p.checker.IsAlive(ctx, corrected) {
		logger.Info("suggested correction is live", zap.String("url", corrected))
		diag.VerifiedWorkingURL = &corrected
	} else {
		logger.Info("suggested correction is not live", zap.String("url", corrected))
		diag.VerifiedWorkingURL = nil
	}

	return types.Outcome{Diagnosis: &diag}
}
