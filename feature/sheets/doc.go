// Package sheets reads work-day records out of configured spreadsheet sheets.
//
// Each source is described by a SourceConfig naming its sheet, first data row
// and 1-based columns. The Loader walks the rows up to the last used one,
// normalizes them and returns the resulting collection together with a
// LoadReport of skipped rows and date errors.
package sheets
