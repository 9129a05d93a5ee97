package schedule

import (
	"fmt"
	"strings"

	"workday-audit/core/utils"
	"workday-audit/core/workbook"
)

// identifierWidth is the index at which the first separator of a padded site name lands.
const identifierWidth = 4

// PadIdentifier left-pads s with zeros when its first "-" (or, lacking one, its
// first "_") sits at index 1, 2 or 3, so that the separator lands at index 4.
// Any other string is returned unchanged.
func PadIdentifier(s string) string {
	idx := strings.IndexByte(s, '-')
	if idx < 1 || idx >= identifierWidth {
		if under := strings.IndexByte(s, '_'); under >= 1 && under < identifierWidth {
			idx = under
		}
	}
	if idx >= 1 && idx < identifierWidth {
		return strings.Repeat("0", identifierWidth-idx) + s
	}
	return s
}

// KeySet is a set of site keys.
type KeySet map[string]struct{}

// ParseKeySet builds a set from a comma-delimited list. Blank entries are ignored.
func ParseKeySet(list string) KeySet {
	set := make(KeySet)
	for _, key := range strings.Split(list, ",") {
		if key = strings.TrimSpace(key); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// RawRow is one spreadsheet row addressed by field.
type RawRow struct {
	Row        int
	SiteKey    workbook.Cell
	SiteNumber workbook.Cell
	SiteName   workbook.Cell
	Status     workbook.Cell
	DayCount   workbook.Cell
	WorkDays   workbook.Cell
}

// Outcome tells what happened to a row during normalization.
type Outcome int

const (
	// Accepted rows produce a record.
	Accepted Outcome = iota
	// SkippedCount rows have a non-numeric day-count cell.
	SkippedCount
	// SkippedDates rows have a work-day cell that is neither date, text nor blank.
	SkippedDates
	// SkippedKey rows of a keyed source have no site key.
	SkippedKey
	// Ignored rows have a site key in the ignore set.
	Ignored
	// Suffixed rows have a site key ending with the ignored suffix.
	Suffixed
)

// String returns a short name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case SkippedCount:
		return "skipped_count"
	case SkippedDates:
		return "skipped_dates"
	case SkippedKey:
		return "skipped_key"
	case Ignored:
		return "ignored"
	case Suffixed:
		return "suffixed"
	default:
		return "unknown"
	}
}

// MarshalText renders the outcome by name in exported reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// IsSkip reports whether the outcome is a row-skip diagnostic rather than a configured filter.
func (o Outcome) IsSkip() bool {
	return o == SkippedCount || o == SkippedDates || o == SkippedKey
}

// Result is the outcome of normalizing one row.
type Result struct {
	Record  *WorkDay
	Outcome Outcome
	Reason  string
}

// Normalizer builds WorkDay records from raw rows.
type Normalizer struct {
	tokenizer *Tokenizer
	ignore    KeySet
	suffix    string
	keyed     bool
}

// NewNormalizer creates a normalizer. An empty suffix disables suffix filtering.
// When keyed is true, rows without a site key are skipped.
func NewNormalizer(tokenizer *Tokenizer, ignore KeySet, suffix string, keyed bool) *Normalizer {
	if ignore == nil {
		ignore = KeySet{}
	}
	return &Normalizer{
		tokenizer: tokenizer,
		ignore:    ignore,
		suffix:    suffix,
		keyed:     keyed,
	}
}

// Normalize turns a raw row into zero or one record.
func (n *Normalizer) Normalize(row RawRow) Result {
	siteKey := strings.TrimSpace(row.SiteKey.String())

	if row.DayCount.Kind != workbook.KindNumber {
		return Result{
			Outcome: SkippedCount,
			Reason:  fmt.Sprintf("day count is %s, not number", row.DayCount.Kind),
		}
	}

	var days DateList
	switch row.WorkDays.Kind {
	case workbook.KindDate:
		days = SingleDate(row.WorkDays.Time)
	case workbook.KindText:
		days = n.tokenizer.Parse(row.WorkDays.Raw)
	case workbook.KindBlank:
	default:
		return Result{
			Outcome: SkippedDates,
			Reason:  fmt.Sprintf("work days is %s, not date, text or blank", row.WorkDays.Kind),
		}
	}

	if n.keyed && siteKey == "" {
		return Result{Outcome: SkippedKey, Reason: "site key is blank"}
	}
	if n.ignore.Has(siteKey) {
		return Result{Outcome: Ignored, Reason: "site key is in the ignore list"}
	}
	if n.suffix != "" && strings.HasSuffix(siteKey, n.suffix) {
		return Result{Outcome: Suffixed, Reason: fmt.Sprintf("site key ends with %q", n.suffix)}
	}

	return Result{
		Outcome: Accepted,
		Record: &WorkDay{
			SiteKey:      siteKey,
			SiteNumber:   strings.TrimSpace(row.SiteNumber.String()),
			SiteName:     PadIdentifier(strings.TrimSpace(row.SiteName.String())),
			Status:       strings.TrimSpace(row.Status.String()),
			DeclaredDays: utils.ToInt(row.DayCount.Number),
			Days:         days,
			Row:          row.Row,
		},
	}
}
