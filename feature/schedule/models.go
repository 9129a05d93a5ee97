package schedule

import (
	"sort"
	"strings"
	"time"

	"workday-audit/core/calendar"
)

// NotSet is the DeclaredDays value of a record whose count cell was not numeric.
const NotSet = -1

// IssueKind tells why a date token was rejected.
type IssueKind string

const (
	// IssueUnparseable marks a token that is not a date.
	IssueUnparseable IssueKind = "unparseable"
	// IssueDuplicate marks a date already listed earlier in the same cell.
	IssueDuplicate IssueKind = "duplicate"
)

// TokenIssue is a rejected date token.
type TokenIssue struct {
	Token string    `json:"token" yaml:"token"`
	Kind  IssueKind `json:"kind" yaml:"kind"`
}

// DateList is the parsed work-day cell of a record.
// Dates are distinct and sorted ascending. HasError is set when at least one
// token was rejected; such a record only takes part in date-error reporting.
type DateList struct {
	Dates    []time.Time  `json:"dates" yaml:"dates"`
	HasError bool         `json:"has_error" yaml:"has_error"`
	Issues   []TokenIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Len returns the number of valid dates.
func (l DateList) Len() int {
	return len(l.Dates)
}

// Position returns the 1-based position of day in the list, or 0 when absent.
func (l DateList) Position(day time.Time) int {
	day = calendar.Day(day)
	i := sort.Search(len(l.Dates), func(i int) bool { return !l.Dates[i].Before(day) })
	if i < len(l.Dates) && l.Dates[i].Equal(day) {
		return i + 1
	}
	return 0
}

// Contains reports whether day is listed.
func (l DateList) Contains(day time.Time) bool {
	return l.Position(day) > 0
}

// String joins the dates with "|".
func (l DateList) String() string {
	return JoinDates(l.Dates)
}

// JoinDates renders dates as 2006/01/02 joined with "|".
func JoinDates(days []time.Time) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = calendar.Format(d)
	}
	return strings.Join(parts, "|")
}

// WorkDay is the canonical work schedule of one site in one source.
type WorkDay struct {
	// SiteKey matches records across sources. Empty when the source has no key column.
	SiteKey string `json:"site_key" yaml:"site_key"`
	// SiteNumber is a display identifier.
	SiteNumber string `json:"site_number" yaml:"site_number"`
	// SiteName is the display name after zero-padding.
	SiteName string `json:"site_name" yaml:"site_name"`
	// Status is the free-text progress classification.
	Status string `json:"status" yaml:"status"`
	// DeclaredDays is the expected number of work days, NotSet when unknown.
	DeclaredDays int `json:"declared_days" yaml:"declared_days"`
	// Days is the parsed list of work days.
	Days DateList `json:"days" yaml:"days"`
	// Row is the sheet row the record was read from.
	Row int `json:"row" yaml:"row"`
}

// IsActive reports whether the record has the given status.
func (w *WorkDay) IsActive(status string) bool {
	return w.Status == status
}

// Label identifies the record in report lines.
func (w *WorkDay) Label() string {
	var b strings.Builder
	b.WriteString("key:")
	b.WriteString(w.SiteKey)
	b.WriteString(", number:")
	b.WriteString(w.SiteNumber)
	b.WriteString(", name:")
	b.WriteString(w.SiteName)
	return b.String()
}
