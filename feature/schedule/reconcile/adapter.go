package reconcile

import (
	"fmt"
	"strconv"
	"time"

	"workday-audit/core/reconcile"
	"workday-audit/feature/schedule"
)

// WorkDayAdapter implements the reconcile.Adapter interface for work-day records.
type WorkDayAdapter struct {
	statusAtWork string
}

// NewAdapter creates a new work-day adapter. Only pairs whose first record has
// statusAtWork are field-compared.
func NewAdapter(statusAtWork string) *WorkDayAdapter {
	return &WorkDayAdapter{statusAtWork: statusAtWork}
}

// Name returns the unique name of this adapter.
func (a *WorkDayAdapter) Name() string {
	return "workday"
}

// ResolveName returns the display name for an entity.
func (a *WorkDayAdapter) ResolveName(itemA, itemB reconcile.Item) string {
	if itemA != nil {
		return itemA.(*schedule.WorkDay).SiteName
	}
	if itemB != nil {
		return itemB.(*schedule.WorkDay).SiteName
	}
	return ""
}

// Participates gates the comparison on the status of the first record.
func (a *WorkDayAdapter) Participates(itemA, _ reconcile.Item) bool {
	return itemA.(*schedule.WorkDay).IsActive(a.statusAtWork)
}

// SkipReason excludes pairs where either side has a date error.
func (a *WorkDayAdapter) SkipReason(itemA, itemB reconcile.Item) string {
	wdA := itemA.(*schedule.WorkDay)
	wdB := itemB.(*schedule.WorkDay)

	switch {
	case wdA.Days.HasError && wdB.Days.HasError:
		return "date error in both sources"
	case wdA.Days.HasError:
		return fmt.Sprintf("date error in first source (row %d)", wdA.Row)
	case wdB.Days.HasError:
		return fmt.Sprintf("date error in second source (row %d)", wdB.Row)
	}
	return ""
}

// CompareFields compares two work-day records and returns one mismatch per differing field.
func (a *WorkDayAdapter) CompareFields(key string, itemA, itemB reconcile.Item) []reconcile.Mismatch {
	wdA := itemA.(*schedule.WorkDay)
	wdB := itemB.(*schedule.WorkDay)

	var mismatches []reconcile.Mismatch

	// Compare name
	if wdA.SiteName != wdB.SiteName {
		mismatches = append(mismatches, reconcile.Mismatch{Key: key, Field: FieldName, A: wdA.SiteName, B: wdB.SiteName})
	}

	// Compare declared count
	if wdA.DeclaredDays != wdB.DeclaredDays {
		mismatches = append(mismatches, reconcile.Mismatch{
			Key:   key,
			Field: FieldDayCount,
			A:     strconv.Itoa(wdA.DeclaredDays),
			B:     strconv.Itoa(wdB.DeclaredDays),
		})
	}

	// Compare listed date totals
	if wdA.Days.Len() != wdB.Days.Len() {
		mismatches = append(mismatches, reconcile.Mismatch{
			Key:   key,
			Field: FieldWorkDayTotal,
			A:     strconv.Itoa(wdA.Days.Len()),
			B:     strconv.Itoa(wdB.Days.Len()),
		})
	}

	// Compare date sets
	diff := DiffDates(wdA.Days, wdB.Days)
	if !diff.Equal() {
		mismatches = append(mismatches, reconcile.Mismatch{
			Key:   key,
			Field: FieldWorkDays,
			A:     schedule.JoinDates(diff.OnlyA),
			B:     schedule.JoinDates(diff.OnlyB),
		})
	}

	return mismatches
}

// DateDiff splits two date lists into shared and one-sided dates.
type DateDiff struct {
	Common []time.Time
	OnlyA  []time.Time
	OnlyB  []time.Time
}

// Equal reports whether both lists hold the same dates.
func (d DateDiff) Equal() bool {
	return len(d.OnlyA) == 0 && len(d.OnlyB) == 0
}

// DiffDates compares two sorted date lists. The output slices stay sorted.
func DiffDates(a, b schedule.DateList) DateDiff {
	var diff DateDiff
	i, j := 0, 0
	for i < len(a.Dates) && j < len(b.Dates) {
		switch da, db := a.Dates[i], b.Dates[j]; {
		case da.Equal(db):
			diff.Common = append(diff.Common, da)
			i++
			j++
		case da.Before(db):
			diff.OnlyA = append(diff.OnlyA, da)
			i++
		default:
			diff.OnlyB = append(diff.OnlyB, db)
			j++
		}
	}
	diff.OnlyA = append(diff.OnlyA, a.Dates[i:]...)
	diff.OnlyB = append(diff.OnlyB, b.Dates[j:]...)
	return diff
}
