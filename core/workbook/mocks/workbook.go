package mocks

import (
	"workday-audit/core/workbook"

	"github.com/stretchr/testify/mock"
)

// Workbook is a mock implementation of workbook.Workbook
type Workbook struct {
	mock.Mock
}

func (m *Workbook) SheetNames() []string {
	args := m.Called()
	if names, ok := args.Get(0).([]string); ok {
		return names
	}
	return nil
}

func (m *Workbook) LastRow(sheet string) (int, error) {
	args := m.Called(sheet)
	return args.Int(0), args.Error(1)
}

func (m *Workbook) Cell(sheet string, row, col int) (workbook.Cell, error) {
	args := m.Called(sheet, row, col)
	if cell, ok := args.Get(0).(workbook.Cell); ok {
		return cell, args.Error(1)
	}
	return workbook.Cell{}, args.Error(1)
}

func (m *Workbook) Close() error {
	args := m.Called()
	return args.Error(0)
}
