package checks

import "workday-audit/feature/schedule"

// DateError is a record whose work-day cell had rejected tokens.
type DateError struct {
	Record *schedule.WorkDay     `json:"record" yaml:"record"`
	Issues []schedule.TokenIssue `json:"issues" yaml:"issues"`
}

// DateErrorReport lists the records with date errors.
type DateErrorReport struct {
	Errors []DateError `json:"errors" yaml:"errors"`
}

// Passed reports whether no record had a date error.
func (r *DateErrorReport) Passed() bool {
	return len(r.Errors) == 0
}

// CheckDateErrors reports each record with a date error once.
func CheckDateErrors(records []*schedule.WorkDay) *DateErrorReport {
	report := &DateErrorReport{Errors: []DateError{}}

	for _, wd := range records {
		if wd.Days.HasError {
			report.Errors = append(report.Errors, DateError{Record: wd, Issues: wd.Days.Issues})
		}
	}

	return report
}
