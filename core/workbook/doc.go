// Package workbook provides read-only, typed access to xlsx spreadsheets.
//
// It wraps excelize behind the small Workbook interface so that the schedule
// loader can be tested against mocks or in-memory workbooks.
//
// # Cell Typing
//
// Every cell is reported with one of the kinds blank, number, text, date or other.
// Numeric cells carrying a date number format (built-in or custom) are reported
// as dates, truncated to the calendar day.
//
// # Usage
//
//	wb, err := workbook.Open("first.xlsx")
//	if err != nil {
//	    return err
//	}
//	defer wb.Close()
//	last, _ := wb.LastRow("Sheet1")
//	cell, _ := wb.Cell("Sheet1", 2, 3)
package workbook
