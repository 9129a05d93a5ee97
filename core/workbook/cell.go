package workbook

import (
	"time"

	"workday-audit/core/utils"
)

// Kind is the type tag of a cell as seen by the schedule normalizer.
type Kind int

const (
	// KindBlank is an empty cell.
	KindBlank Kind = iota
	// KindNumber is a numeric cell without a date format.
	KindNumber
	// KindText is a string cell.
	KindText
	// KindDate is a numeric cell formatted as a date, or a native date cell.
	KindDate
	// KindOther covers booleans, errors and anything else.
	KindOther
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	default:
		return "other"
	}
}

// Cell is a typed cell value.
type Cell struct {
	// Kind is the type tag of the cell.
	Kind Kind
	// Raw is the unformatted cell content.
	Raw string
	// Number holds the value of KindNumber cells.
	Number float64
	// Time holds the value of KindDate cells, truncated to the day in UTC.
	Time time.Time
}

// String returns the display value of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case KindBlank:
		return ""
	case KindNumber:
		return utils.ToString(c.Number)
	case KindDate:
		return utils.ToString(c.Time)
	default:
		return c.Raw
	}
}

// Text builds a text cell. Used by tests and in-memory sources.
func Text(s string) Cell {
	if s == "" {
		return Cell{Kind: KindBlank}
	}
	return Cell{Kind: KindText, Raw: s}
}

// Number builds a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: KindNumber, Raw: utils.ToString(v), Number: v}
}

// Date builds a date cell.
func Date(t time.Time) Cell {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Cell{Kind: KindDate, Raw: utils.ToString(d), Time: d}
}
