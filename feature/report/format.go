package report

import (
	"fmt"
	"strings"

	"workday-audit/core/calendar"
	"workday-audit/core/reconcile"
	"workday-audit/feature/schedule"
	workdays "workday-audit/feature/schedule/reconcile"
	"workday-audit/feature/sheets"
	"workday-audit/feature/validation/checks"
)

// Section titles.
const (
	TitleLoad       = "load"
	TitleDump       = "records"
	TitleDayCount   = "day count check"
	TitleCalendar   = "calendar check"
	TitleDateErrors = "date error check"
	TitleDayQuery   = "day query"
	TitleReconcile  = "reconcile"
)

// Version renders the tool version line printed at start.
func Version(version string) Line {
	return Line{Level: LevelInfo, Text: "workday-audit " + version}
}

// Verdict renders the final line of a run.
func Verdict(passed bool) Line {
	if passed {
		return Line{Level: LevelInfo, Text: "[Congratulations!] all checks passed"}
	}
	return Line{Level: LevelError, Text: "[NG] some checks failed"}
}

// Load renders the row diagnostics of one source.
func Load(r *sheets.LoadReport) Section {
	s := Section{Title: TitleLoad + " " + r.Source, Passed: r.Passed()}
	s.info(fmt.Sprintf("sheet:%s, last row:%d, rows:%d, accepted:%d", r.Sheet, r.LastRow, r.Rows, r.Accepted))
	for _, skip := range r.Skips {
		s.warn(fmt.Sprintf("row skipped sheet:%s, row:%d, key:%s, %s", skip.Sheet, skip.Row, skip.SiteKey, skip.Reason))
	}
	for _, skip := range r.Filtered {
		s.debug(fmt.Sprintf("row %s sheet:%s, row:%d, key:%s", skip.Outcome, skip.Sheet, skip.Row, skip.SiteKey))
	}
	for _, wd := range r.DateErrors {
		s.fail(fmt.Sprintf("date error %s, row:%d, tokens:%s", wd.Label(), wd.Row, formatIssues(wd.Days.Issues)))
	}
	if s.Passed {
		s.info("[OK] all work days parsed")
	} else {
		s.fail("[ERROR] date errors found while loading")
	}
	return s
}

// Dump renders every record of a collection at debug level.
func Dump(c *schedule.Collection) Section {
	s := Section{Title: TitleDump + " " + c.Name(), Passed: true}
	for _, wd := range c.Records() {
		s.debug(fmt.Sprintf("%s, status:%s, days:%d, dates:%s", wd.Label(), wd.Status, wd.DeclaredDays, wd.Days))
	}
	s.debug(fmt.Sprintf("%d records", c.Len()))
	return s
}

// DayCount renders the day-count check.
func DayCount(r *checks.CountReport) Section {
	s := Section{Title: TitleDayCount, Passed: r.Passed()}
	for _, m := range r.Mismatches {
		s.fail(fmt.Sprintf("count mismatch %s, declared:%d, listed:%d, dates:%s",
			m.Record.Label(), m.Declared, m.Listed, m.Record.Days))
	}
	if s.Passed {
		s.info("[OK] declared day counts match the listed dates")
	} else {
		s.info("[NG] declared day counts differ from the listed dates")
	}
	return s
}

// Calendar renders the calendar check.
func Calendar(r *checks.CalendarReport) Section {
	s := Section{Title: TitleCalendar, Passed: r.Passed()}
	for _, hit := range r.Hits {
		s.warn(fmt.Sprintf("[WARNING] %s %s %s", hit.Kind, calendar.FormatWithWeekday(hit.Day), hit.Record.Label()))
	}
	if s.Passed {
		s.info("[OK] no work days on holidays or weekends")
	} else {
		s.info("[NG] work days on holidays or weekends found")
	}
	return s
}

// DateErrors renders the date-error check, one line per record. The tokens
// themselves are listed by the load section.
func DateErrors(r *checks.DateErrorReport) Section {
	s := Section{Title: TitleDateErrors, Passed: r.Passed()}
	for _, e := range r.Errors {
		s.fail(fmt.Sprintf("date error %s, issues:%d", e.Record.Label(), len(e.Issues)))
	}
	if s.Passed {
		s.info("[OK] no date errors")
	} else {
		s.fail("[ERROR] date errors found")
	}
	return s
}

// Reconcile renders a reconciliation between the two sources.
func Reconcile(r *reconcile.Report) Section {
	s := Section{Title: TitleReconcile, Passed: r.AllMatched()}

	for _, key := range r.OnlyInA {
		s.fail(fmt.Sprintf("[ERROR] site key %s not found in %s", key, r.NameB))
	}
	for _, key := range r.OnlyInB {
		s.fail(fmt.Sprintf("[ERROR] site key %s not found in %s", key, r.NameA))
	}
	for _, m := range r.Mismatches {
		s.mismatch(m, r.NameA, r.NameB)
	}
	for _, skip := range r.Skipped {
		s.fail(fmt.Sprintf("not compared key:%s, name:%s, %s", skip.Key, skip.Name, skip.Reason))
	}

	s.debug(fmt.Sprintf("keys:%d, compared:%d, mismatched:%d",
		r.Summary.TotalKeys, r.Summary.Compared, r.Summary.Mismatched))
	if s.Passed {
		s.info(fmt.Sprintf("[OK] no differences between %s and %s", r.NameA, r.NameB))
		return s
	}
	if len(r.Skipped) > 0 {
		s.fail("[ERROR] date errors found")
	}
	if !r.KeysMatched() || len(r.Mismatches) > 0 {
		s.info(fmt.Sprintf("[NG] differences found between %s and %s", r.NameA, r.NameB))
	}
	return s
}

// Site renders a targeted reconciliation of one key.
func Site(result *reconcile.Result, a, b *schedule.WorkDay, nameA, nameB string) Section {
	s := Section{Title: TitleReconcile + " " + result.Key, Passed: result.Matched()}
	for _, side := range []struct {
		name string
		wd   *schedule.WorkDay
	}{{nameA, a}, {nameB, b}} {
		if side.wd == nil {
			s.fail(fmt.Sprintf("[ERROR] site key %s not found in %s", result.Key, side.name))
			continue
		}
		s.info(fmt.Sprintf("%s %s, status:%s, days:%d, dates:%s",
			side.name, side.wd.Label(), side.wd.Status, side.wd.DeclaredDays, side.wd.Days))
	}
	if a != nil && b != nil && result.Compared {
		diff := workdays.DiffDates(a.Days, b.Days)
		if len(diff.Common) > 0 {
			s.debug(fmt.Sprintf("match (%s) %s [%s=%s] %s", workdays.FieldWorkDays, result.Key, nameA, nameB, schedule.JoinDates(diff.Common)))
		}
	}
	for _, m := range result.Mismatches {
		s.mismatch(m, nameA, nameB)
	}
	if result.SkipReason != "" {
		s.fail(fmt.Sprintf("not compared key:%s, %s", result.Key, result.SkipReason))
	}
	if s.Passed {
		s.info("[OK] " + reconcile.Presence(*result, nameA, nameB) + ", no differences")
	} else {
		s.info("[NG] " + reconcile.Presence(*result, nameA, nameB))
	}
	return s
}

// mismatch adds a field mismatch. Date-set differences are informational,
// every other field is an error.
func (s *Section) mismatch(m reconcile.Mismatch, nameA, nameB string) {
	if m.Field == workdays.FieldWorkDays {
		s.info(formatMismatch(m, nameA, nameB))
		return
	}
	s.fail(formatMismatch(m, nameA, nameB))
}

func formatMismatch(m reconcile.Mismatch, nameA, nameB string) string {
	if m.Field == workdays.FieldWorkDays {
		var parts []string
		if m.A != "" {
			parts = append(parts, fmt.Sprintf("[%s-%s] %s", nameA, nameB, m.A))
		}
		if m.B != "" {
			parts = append(parts, fmt.Sprintf("[%s-%s] %s", nameB, nameA, m.B))
		}
		return fmt.Sprintf("mismatch (%s) %s %s", m.Field, m.Key, strings.Join(parts, " "))
	}
	return fmt.Sprintf("mismatch (%s) %s [%s=%s] [%s=%s]", m.Field, m.Key, nameA, m.A, nameB, m.B)
}

func formatIssues(issues []schedule.TokenIssue) string {
	parts := make([]string, len(issues))
	for i, issue := range issues {
		parts[i] = fmt.Sprintf("%s(%s)", issue.Token, issue.Kind)
	}
	return strings.Join(parts, ", ")
}
