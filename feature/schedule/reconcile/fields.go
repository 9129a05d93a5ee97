package reconcile

// Field labels reported in mismatches.
const (
	FieldName         = "name"
	FieldDayCount     = "day_count"
	FieldWorkDayTotal = "work_day_total"
	FieldWorkDays     = "work_days"
)
