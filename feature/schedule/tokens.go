package schedule

import (
	"sort"
	"strings"
	"time"

	"workday-audit/core/calendar"

	"golang.org/x/text/width"
)

// Delimiter separates date tokens in a normalized work-day string.
const Delimiter = "|"

// DefaultSeparators are rewritten to Delimiter before splitting.
var DefaultSeparators = []string{" ", "、", "，", ","}

// Tokenizer turns a free-text work-day cell into a DateList.
type Tokenizer struct {
	replacer *strings.Replacer
}

// NewTokenizer creates a tokenizer for the given separators.
// Separators are width-folded like the input, so "，" and "," are interchangeable.
func NewTokenizer(separators []string) *Tokenizer {
	pairs := make([]string, 0, len(separators)*2)
	seen := make(map[string]bool)
	for _, sep := range separators {
		sep = width.Fold.String(sep)
		if sep == "" || sep == Delimiter || seen[sep] {
			continue
		}
		seen[sep] = true
		pairs = append(pairs, sep, Delimiter)
	}
	return &Tokenizer{replacer: strings.NewReplacer(pairs...)}
}

// Normalize folds full-width characters, rewrites separators to Delimiter and
// drops empty tokens. Normalizing an already normalized string is a no-op.
func (t *Tokenizer) Normalize(s string) string {
	s = width.Fold.String(s)
	s = t.replacer.Replace(s)
	return strings.Join(splitNonEmpty(s), Delimiter)
}

// Split normalizes s and returns its tokens.
func (t *Tokenizer) Split(s string) []string {
	return splitNonEmpty(t.Normalize(s))
}

// Parse tokenizes s and parses every token.
func (t *Tokenizer) Parse(s string) DateList {
	return ParseTokens(t.Split(s))
}

// ParseTokens parses tokens strictly. A token that fails to parse or repeats an
// earlier date is recorded as an issue and flags the list, but the remaining
// tokens are still processed.
func ParseTokens(tokens []string) DateList {
	var list DateList
	seen := make(map[time.Time]bool, len(tokens))
	for _, token := range tokens {
		day, err := calendar.ParseDate(token)
		if err != nil {
			list.HasError = true
			list.Issues = append(list.Issues, TokenIssue{Token: token, Kind: IssueUnparseable})
			continue
		}
		if seen[day] {
			list.HasError = true
			list.Issues = append(list.Issues, TokenIssue{Token: token, Kind: IssueDuplicate})
			continue
		}
		seen[day] = true
		list.Dates = append(list.Dates, day)
	}
	sortDates(list.Dates)
	return list
}

// SingleDate builds the list of a native date cell.
func SingleDate(day time.Time) DateList {
	return DateList{Dates: []time.Time{calendar.Day(day)}}
}

func splitNonEmpty(s string) []string {
	parts := strings.Split(s, Delimiter)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func sortDates(days []time.Time) {
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
}
