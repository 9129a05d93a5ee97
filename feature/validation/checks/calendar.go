package checks

import (
	"time"

	"workday-audit/core/calendar"
	"workday-audit/feature/schedule"
)

// CalendarHit is a work day that falls on a holiday or a weekend.
type CalendarHit struct {
	Record *schedule.WorkDay `json:"record" yaml:"record"`
	Day    time.Time         `json:"day" yaml:"day"`
	Kind   calendar.DayKind  `json:"kind" yaml:"kind"`
}

// CalendarReport strictly types the result of a calendar check.
type CalendarReport struct {
	Checked int           `json:"checked" yaml:"checked"`
	Hits    []CalendarHit `json:"hits" yaml:"hits"`
}

// Passed reports whether no work day fell on a non-working day.
func (r *CalendarReport) Passed() bool {
	return len(r.Hits) == 0
}

// CheckCalendar classifies every listed date. Holidays take precedence over weekends.
// Records with a date error are not checked.
func CheckCalendar(records []*schedule.WorkDay, holidays calendar.HolidaySet) *CalendarReport {
	report := &CalendarReport{Hits: []CalendarHit{}}

	for _, wd := range records {
		if wd.Days.HasError {
			continue
		}
		report.Checked++
		for _, day := range wd.Days.Dates {
			if kind := holidays.Classify(day); kind != calendar.Weekday {
				report.Hits = append(report.Hits, CalendarHit{Record: wd, Day: day, Kind: kind})
			}
		}
	}

	return report
}
