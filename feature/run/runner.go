package run

import (
	"fmt"

	"workday-audit/core/config"
	"workday-audit/core/reconcile"
	"workday-audit/feature/report"
	"workday-audit/feature/schedule"
	workdays "workday-audit/feature/schedule/reconcile"
	"workday-audit/feature/sheets"
	"workday-audit/feature/validation"

	"go.uber.org/zap"
)

// Source names.
const (
	First  = "first"
	Second = "second"
)

// Options selects the optional parts of a full check.
type Options struct {
	// Days is a pipe-delimited list of dates to query. Empty skips the day query.
	Days string
}

// Summary is the folded outcome of a run.
type Summary struct {
	RunID      string                 `json:"run_id" yaml:"run_id"`
	Loads      []*sheets.LoadReport   `json:"loads" yaml:"loads"`
	Validation *validation.Report     `json:"validation,omitempty" yaml:"validation,omitempty"`
	DayQuery   *report.DayQueryReport `json:"day_query,omitempty" yaml:"day_query,omitempty"`
	Reconcile  *reconcile.Report      `json:"reconcile,omitempty" yaml:"reconcile,omitempty"`
	Site       *reconcile.Result      `json:"site,omitempty" yaml:"site,omitempty"`
	Sections   []report.Section       `json:"sections" yaml:"sections"`
	AllPassed  bool                   `json:"all_passed" yaml:"all_passed"`
}

// fold computes AllPassed from the per-check results present in the summary.
func (s *Summary) fold() {
	passed := true
	for _, l := range s.Loads {
		passed = passed && l.Passed()
	}
	if s.Validation != nil {
		passed = passed && s.Validation.Passed()
	}
	if s.DayQuery != nil {
		passed = passed && s.DayQuery.Passed()
	}
	if s.Reconcile != nil {
		passed = passed && s.Reconcile.AllMatched()
	}
	if s.Site != nil {
		passed = passed && s.Site.Matched()
	}
	s.AllPassed = passed
}

// Runner executes the checks of one invocation.
type Runner struct {
	cfg       *config.Config
	source    RecordSource
	validator *validation.Service
	spec      *reconcile.Spec
	logger    *zap.Logger
	runID     string
}

// NewRunner creates a runner. The configuration must already be valid.
func NewRunner(cfg *config.Config, source RecordSource, logger *zap.Logger, runID string) (*Runner, error) {
	holidays, err := cfg.Holidays()
	if err != nil {
		return nil, fmt.Errorf("build holidays: %w", err)
	}
	return &Runner{
		cfg:       cfg,
		source:    source,
		validator: validation.NewService(cfg.Check.StatusAtWork, holidays, logger),
		spec:      &reconcile.Spec{Adapter: workdays.NewAdapter(cfg.Check.StatusAtWork)},
		logger:    logger,
		runID:     runID,
	}, nil
}

// Check runs the full pipeline: both sources are loaded, the first one is
// validated and queried, and both are reconciled.
func (r *Runner) Check(opts Options) (*Summary, error) {
	summary := &Summary{RunID: r.runID}

	first, err := r.load(summary, First, r.cfg.First)
	if err != nil {
		return nil, err
	}
	second, err := r.load(summary, Second, r.cfg.Second)
	if err != nil {
		return nil, err
	}
	summary.Sections = append(summary.Sections, report.Dump(first))

	summary.Validation = r.validator.Validate(first)
	summary.Sections = append(summary.Sections,
		report.DayCount(summary.Validation.Count),
		report.Calendar(summary.Validation.Calendar),
		report.DateErrors(summary.Validation.DateErrors),
	)

	if opts.Days != "" {
		summary.DayQuery = report.QueryDays(first, r.cfg.Check.StatusAtWork, opts.Days)
		summary.Sections = append(summary.Sections, report.DayQuery(summary.DayQuery))
	}

	summary.Reconcile, err = reconcile.ReconcileAll(r.spec, workdays.NewSource(first), workdays.NewSource(second))
	if err != nil {
		return nil, err
	}
	summary.Sections = append(summary.Sections, report.Reconcile(summary.Reconcile))

	summary.fold()
	r.logger.Info("Check finished",
		zap.Int("sections", len(summary.Sections)),
		zap.Bool("all_passed", summary.AllPassed))
	return summary, nil
}

// Day answers which active sites of the first source work on the target dates.
func (r *Runner) Day(targets string) (*Summary, error) {
	summary := &Summary{RunID: r.runID}

	first, err := r.load(summary, First, r.cfg.First)
	if err != nil {
		return nil, err
	}
	summary.DayQuery = report.QueryDays(first, r.cfg.Check.StatusAtWork, targets)
	summary.Sections = append(summary.Sections, report.DayQuery(summary.DayQuery))

	summary.fold()
	return summary, nil
}

// Site reconciles a single site key between both sources.
func (r *Runner) Site(key string) (*Summary, error) {
	summary := &Summary{RunID: r.runID}

	first, err := r.load(summary, First, r.cfg.First)
	if err != nil {
		return nil, err
	}
	second, err := r.load(summary, Second, r.cfg.Second)
	if err != nil {
		return nil, err
	}

	summary.Site, err = reconcile.ReconcileOne(r.spec, workdays.NewSource(first), workdays.NewSource(second), key)
	if err != nil {
		return nil, err
	}
	a, _ := first.Get(key)
	b, _ := second.Get(key)
	summary.Sections = append(summary.Sections, report.Site(summary.Site, a, b, First, Second))

	summary.fold()
	return summary, nil
}

func (r *Runner) load(summary *Summary, name string, cfg sheets.SourceConfig) (*schedule.Collection, error) {
	c, lr, err := r.source.Load(name, cfg)
	if err != nil {
		return nil, err
	}
	summary.Loads = append(summary.Loads, lr)
	summary.Sections = append(summary.Sections, report.Load(lr))
	return c, nil
}
