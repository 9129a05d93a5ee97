package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"workday-audit/core/utils"
)

// DayKind classifies a calendar day.
type DayKind int

const (
	// Weekday is a regular working day.
	Weekday DayKind = iota
	// Holiday is a configured public or business holiday.
	Holiday
	// Saturday is a Saturday that is not a configured holiday.
	Saturday
	// Sunday is a Sunday that is not a configured holiday.
	Sunday
)

// String returns the label used in warnings.
func (k DayKind) String() string {
	switch k {
	case Holiday:
		return "holiday"
	case Saturday:
		return "saturday"
	case Sunday:
		return "sunday"
	default:
		return "weekday"
	}
}

// MarshalText renders the kind by name in exported reports.
func (k DayKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var weekdaySuffix = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Format renders a date as 2006/01/02.
func Format(t time.Time) string {
	return t.Format(utils.DateLayout)
}

// FormatWithWeekday renders a date followed by its weekday, e.g. 2024/05/03(金).
func FormatWithWeekday(t time.Time) string {
	return fmt.Sprintf("%s(%s)", Format(t), weekdaySuffix[t.Weekday()])
}

// HolidaySet is the union of the configured public and business holidays.
type HolidaySet struct {
	days map[time.Time]struct{}
}

// NewHolidaySet builds a holiday set from the given dates.
func NewHolidaySet(days ...time.Time) HolidaySet {
	s := HolidaySet{days: make(map[time.Time]struct{}, len(days))}
	for _, d := range days {
		s.days[Day(d)] = struct{}{}
	}
	return s
}

// ParseHolidays builds a holiday set from pipe-delimited date lists.
// Empty lists and empty entries are allowed; an unparseable entry is an error.
func ParseHolidays(lists ...string) (HolidaySet, error) {
	var days []time.Time
	for _, list := range lists {
		for _, token := range strings.Split(list, "|") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			d, err := ParseDate(token)
			if err != nil {
				return HolidaySet{}, fmt.Errorf("invalid holiday %q: %w", token, err)
			}
			days = append(days, d)
		}
	}
	return NewHolidaySet(days...), nil
}

// Contains reports whether the day is a holiday.
func (s HolidaySet) Contains(t time.Time) bool {
	_, ok := s.days[Day(t)]
	return ok
}

// Len returns the number of distinct holidays.
func (s HolidaySet) Len() int {
	return len(s.days)
}

// Days returns the holidays in ascending order.
func (s HolidaySet) Days() []time.Time {
	out := make([]time.Time, 0, len(s.days))
	for d := range s.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Classify checks the holiday set first and the day of week second.
func (s HolidaySet) Classify(t time.Time) DayKind {
	if s.Contains(t) {
		return Holiday
	}
	switch t.Weekday() {
	case time.Saturday:
		return Saturday
	case time.Sunday:
		return Sunday
	}
	return Weekday
}
