package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/link-doctor/internal/config"
	"github.com/jonathan/link-doctor/internal/diagnosis"
	"github.com/jonathan/link-doctor/internal/fetch"
	"github.com/jonathan/link-doctor/internal/llm"
	"github.com/jonathan/link-doctor/internal/logging"
	"github.com/jonathan/link-doctor/internal/observability"
	"github.com/jonathan/link-doctor/internal/pipeline"
	"github.com/jonathan/link-doctor/internal/types"
)

var (
	reportPath string
	configPath string
	provider   string
	model      string
	apiKey     string
	verbose    bool
)

func init() {
	rootCmd.Flags().StringVarP(&reportPath, "report", "r", "", "Path to the link-health report (default \"test_data.json\")")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a JSON config file")
	rootCmd.Flags().StringVar(&provider, "provider", "", "Diagnosis provider: openai or gemini (default \"openai\")")
	rootCmd.Flags().StringVar(&model, "model", "", "Model name (default depends on provider)")
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "API key (overrides OPENAI_API_KEY / GEMINI_API_KEY)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs and step summaries")
}

// resolveConfig merges flags over the config file over the built-in defaults.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if reportPath != "" {
		cfg.Report = reportPath
	}
	if provider != "" {
		if provider != cfg.Provider {
			// A model configured for another provider does not carry over.
			cfg.Model = ""
		}
		cfg.Provider = provider
	}
	if model != "" {
		cfg.Model = model
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if verbose {
		cfg.Verbose = true
	}

	merged := cfg.MergeWithDefaults(config.Default())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func runLinkDoctor(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	key := cfg.ResolveAPIKey(nil)
	if key == "" {
		logger.Warn("no API key configured; diagnosis will fail if there are dead links",
			zap.String("env", llm.Provider(cfg.Provider).APIKeyEnv()))
	}

	client := llm.NewClient(cfg.LLMConfig(), key, logger)
	defer func() { _ = client.Close() }()

	p := pipeline.New(
		diagnosis.NewService(client, logger),
		fetch.NewChecker(cfg.FetchOptions(), logger),
		observability.NewConsoleSink(cmd.OutOrStdout()),
		logger,
	)

	opts := pipeline.RunOptions{ReportPath: cfg.Report}
	if cfg.Verbose {
		opts.OnProgress = verboseProgress(cmd.ErrOrStderr())
	}

	if _, err := p.Run(cmd.Context(), opts); err != nil {
		return fmt.Errorf("link check diagnosis aborted: %w", err)
	}
	return nil
}

// verboseProgress renders step results as summary boxes.
func verboseProgress(out io.Writer) pipeline.ProgressCallback {
	printer := observability.NewPrinter(out)
	return func(event pipeline.ProgressEvent) {
		switch content := event.Content.(type) {
		case []types.DeadLink:
			printer.PrintDeadLinks(content)
		case types.Outcome:
			printer.PrintOutcome(content)
		}
	}
}
