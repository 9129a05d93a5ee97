// Package schedule models the work schedule of construction sites as read from a spreadsheet.
//
// # Records
//
// A WorkDay holds the site identifiers, a status, the declared number of work days
// and the parsed DateList. A DateList carries an explicit HasError flag instead of a
// magic date: once a token of the cell is unparseable or repeats an earlier date, the
// record is reported as a date error and left out of every other check.
//
// # Normalization
//
// The Normalizer turns one RawRow of typed cells into zero or one record:
//   - the day-count cell must be numeric, otherwise the row is skipped
//   - text work-day cells are tokenized on the configured separators and parsed strictly
//   - site names such as "1-234" are zero-padded to "0001-234"
//   - rows whose key is in the ignore set or ends with the ignored suffix are dropped
//
// # Collections
//
// A Collection keeps the records of one source. Keyed collections reject duplicate
// site keys with ErrDuplicateKey, which aborts the run.
package schedule
