// Package utils holds small value conversions shared by the workbook reader and the schedule model.
package utils
