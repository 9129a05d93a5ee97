package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted by ParseDate. Month and day may have one or two digits.
var Layouts = []string{"2006/1/2", "2006-1-2", "2006.1.2"}

// ParseDate strictly parses a single calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
