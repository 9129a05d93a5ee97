package report

import (
	"fmt"
	"strings"
	"time"

	"workday-audit/core/calendar"
	"workday-audit/feature/schedule"
)

// DaySite is an active site working on the queried day.
type DaySite struct {
	Name     string `json:"name" yaml:"name"`
	SiteKey  string `json:"site_key" yaml:"site_key"`
	Position int    `json:"position" yaml:"position"`
	Total    int    `json:"total" yaml:"total"`
}

// DayEntry is the answer for one target date.
type DayEntry struct {
	Target string    `json:"target" yaml:"target"`
	Day    time.Time `json:"day" yaml:"day"`
	// Error is set when Target is not a date.
	Error string    `json:"error,omitempty" yaml:"error,omitempty"`
	Sites []DaySite `json:"sites" yaml:"sites"`
}

// DayQueryReport answers which active sites work on the target dates.
type DayQueryReport struct {
	Entries []DayEntry `json:"entries" yaml:"entries"`
	// DateErrors are active records that could not be searched.
	DateErrors []*schedule.WorkDay `json:"date_errors" yaml:"date_errors"`
}

// Passed reports whether every target parsed and every active record was searchable.
func (r *DayQueryReport) Passed() bool {
	if len(r.DateErrors) > 0 {
		return false
	}
	for _, e := range r.Entries {
		if e.Error != "" {
			return false
		}
	}
	return true
}

// QueryDays lists, for each pipe-delimited target date, the active records
// working that day in collection order.
func QueryDays(c *schedule.Collection, statusAtWork, targets string) *DayQueryReport {
	report := &DayQueryReport{Entries: []DayEntry{}, DateErrors: []*schedule.WorkDay{}}
	active := c.Active(statusAtWork)

	var searchable []*schedule.WorkDay
	for _, wd := range active {
		if wd.Days.HasError {
			report.DateErrors = append(report.DateErrors, wd)
			continue
		}
		searchable = append(searchable, wd)
	}

	for _, target := range strings.Split(targets, schedule.Delimiter) {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		entry := DayEntry{Target: target, Sites: []DaySite{}}
		day, err := calendar.ParseDate(target)
		if err != nil {
			entry.Error = err.Error()
			report.Entries = append(report.Entries, entry)
			continue
		}
		entry.Day = day
		for _, wd := range searchable {
			if pos := wd.Days.Position(day); pos > 0 {
				entry.Sites = append(entry.Sites, DaySite{
					Name:     wd.SiteName,
					SiteKey:  wd.SiteKey,
					Position: pos,
					Total:    wd.Days.Len(),
				})
			}
		}
		report.Entries = append(report.Entries, entry)
	}

	return report
}

// DayQuery renders a day query.
func DayQuery(r *DayQueryReport) Section {
	s := Section{Title: TitleDayQuery, Passed: r.Passed()}
	for _, wd := range r.DateErrors {
		s.warn(fmt.Sprintf("not queried %s, has date errors", wd.Label()))
	}
	for _, e := range r.Entries {
		if e.Error != "" {
			s.fail(fmt.Sprintf("[NG] cannot parse target date: %s", e.Target))
			continue
		}
		s.info(calendar.FormatWithWeekday(e.Day))
		for _, site := range e.Sites {
			s.info(fmt.Sprintf("%s (%d/%d)", site.Name, site.Position, site.Total))
		}
	}
	return s
}
