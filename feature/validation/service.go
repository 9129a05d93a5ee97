package validation

import (
	"workday-audit/core/calendar"
	"workday-audit/feature/schedule"
	"workday-audit/feature/validation/checks"

	"go.uber.org/zap"
)

// Report bundles the results of the three validation passes.
type Report struct {
	Count      *checks.CountReport     `json:"count" yaml:"count"`
	Calendar   *checks.CalendarReport  `json:"calendar" yaml:"calendar"`
	DateErrors *checks.DateErrorReport `json:"date_errors" yaml:"date_errors"`
}

// Passed reports whether every pass succeeded.
func (r *Report) Passed() bool {
	return r.Count.Passed() && r.Calendar.Passed() && r.DateErrors.Passed()
}

// Service handles validation of a single collection.
type Service struct {
	statusAtWork string
	holidays     calendar.HolidaySet
	logger       *zap.Logger
}

// NewService creates a new validation service.
func NewService(statusAtWork string, holidays calendar.HolidaySet, logger *zap.Logger) *Service {
	return &Service{
		statusAtWork: statusAtWork,
		holidays:     holidays,
		logger:       logger,
	}
}

// CheckDayCount compares declared and listed day counts of the active records.
func (s *Service) CheckDayCount(c *schedule.Collection) *checks.CountReport {
	report := checks.CheckDayCount(c.Active(s.statusAtWork))
	s.logger.Debug("Day count check finished",
		zap.String("source", c.Name()),
		zap.Int("checked", report.Checked),
		zap.Int("mismatches", len(report.Mismatches)))
	return report
}

// CheckCalendar flags active work days on holidays and weekends.
func (s *Service) CheckCalendar(c *schedule.Collection) *checks.CalendarReport {
	report := checks.CheckCalendar(c.Active(s.statusAtWork), s.holidays)
	s.logger.Debug("Calendar check finished",
		zap.String("source", c.Name()),
		zap.Int("checked", report.Checked),
		zap.Int("hits", len(report.Hits)))
	return report
}

// CheckDateErrors lists active records with rejected date tokens.
func (s *Service) CheckDateErrors(c *schedule.Collection) *checks.DateErrorReport {
	report := checks.CheckDateErrors(c.Active(s.statusAtWork))
	s.logger.Debug("Date error check finished",
		zap.String("source", c.Name()),
		zap.Int("errors", len(report.Errors)))
	return report
}

// Validate runs all passes. None of them mutates the collection.
func (s *Service) Validate(c *schedule.Collection) *Report {
	return &Report{
		Count:      s.CheckDayCount(c),
		Calendar:   s.CheckCalendar(c),
		DateErrors: s.CheckDateErrors(c),
	}
}
