package cmd

import (
	"errors"
	"fmt"

	"workday-audit/core/config"
	"workday-audit/core/logger"
	"workday-audit/feature/report"
	"workday-audit/feature/run"
	"workday-audit/feature/schedule"
	"workday-audit/feature/sheets"

	"go.uber.org/zap"
)

// ErrChecksFailed is returned in strict mode when not every check passed.
var ErrChecksFailed = errors.New("checks failed")

var (
	configDir    string
	outputPath   string
	outputFormat string
	strict       bool
)

// setup loads and validates the configuration and builds the run logger.
func setup(firstOnly bool) (*config.Config, *zap.Logger, string, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	validate := cfg.Validate
	if firstOnly {
		validate = cfg.ValidateFirst
	}
	if err := validate(); err != nil {
		return nil, nil, "", err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to initialize logger: %w", err)
	}
	l, runID := logger.WithRunID(l)
	report.EmitLines(l, report.Version(Version))

	return cfg, l, runID, nil
}

// newRunner wires a runner reading the given workbook paths.
func newRunner(cfg *config.Config, l *zap.Logger, runID string, paths map[string]string) (*run.Runner, error) {
	loader := sheets.NewLoader(schedule.NewTokenizer(cfg.Separators()), cfg.Check.IgnoreKeySuffix, l)
	return run.NewRunner(cfg, run.NewWorkbookSource(loader, paths), l, runID)
}

// finish emits the report, writes the optional export and applies strict mode.
func finish(l *zap.Logger, summary *run.Summary) error {
	defer l.Sync()

	report.Emit(l, summary.Sections...)
	report.EmitLines(l, report.Verdict(summary.AllPassed))

	if outputPath != "" {
		format, err := report.ParseFormat(outputFormat, outputPath)
		if err != nil {
			return err
		}
		if err := report.WriteFile(outputPath, format, summary); err != nil {
			return err
		}
		l.Info("Results written", zap.String("path", outputPath), zap.String("format", string(format)))
	}

	if strict && !summary.AllPassed {
		return ErrChecksFailed
	}
	return nil
}
