// Package validation checks the internal consistency of one work-day collection.
//
// # Checks Provided
//
//   - Day count: the declared number of work days equals the number of listed dates.
//   - Calendar: no listed date falls on a configured holiday, a Saturday or a Sunday.
//   - Date errors: no work-day cell holds an unparseable or duplicate date.
//
// Only records with the configured active status are checked. A record with a
// date error is reported by the date-error check alone.
package validation
