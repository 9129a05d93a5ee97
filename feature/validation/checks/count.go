package checks

import "workday-audit/feature/schedule"

// CountMismatch is a record whose declared day count differs from its listed dates.
type CountMismatch struct {
	Record   *schedule.WorkDay `json:"record" yaml:"record"`
	Declared int               `json:"declared" yaml:"declared"`
	Listed   int               `json:"listed" yaml:"listed"`
}

// CountReport strictly types the result of a day-count check.
type CountReport struct {
	Checked    int             `json:"checked" yaml:"checked"`
	Mismatches []CountMismatch `json:"mismatches" yaml:"mismatches"`
}

// Passed reports whether every checked record matched.
func (r *CountReport) Passed() bool {
	return len(r.Mismatches) == 0
}

// CheckDayCount compares the declared count of each record with the number of listed dates.
// Records with a date error or without a declared count are not checked.
func CheckDayCount(records []*schedule.WorkDay) *CountReport {
	report := &CountReport{Mismatches: []CountMismatch{}}

	for _, wd := range records {
		if wd.Days.HasError || wd.DeclaredDays == schedule.NotSet {
			continue
		}
		report.Checked++
		if wd.DeclaredDays != wd.Days.Len() {
			report.Mismatches = append(report.Mismatches, CountMismatch{
				Record:   wd,
				Declared: wd.DeclaredDays,
				Listed:   wd.Days.Len(),
			})
		}
	}

	return report
}
