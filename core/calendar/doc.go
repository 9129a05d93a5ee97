// Package calendar holds the fixed calendar convention of the audit: civil dates
// without time of day, the 2006/01/02 rendering, Japanese weekday suffixes and the
// configured holiday set.
//
// Classification checks the holiday set before the day of week, so a holiday
// falling on a Saturday is reported as a holiday.
package calendar
