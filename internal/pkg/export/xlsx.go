// Package export renders finance records as a spreadsheet.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheet = "Finance"

var header = []interface{}{"Date", "Project", "Type", "Amount", "Description"}

type FinanceRow struct {
	Date        time.Time
	Project     string
	Type        string
	Amount      float64
	Description string
}

// FinanceXLSX writes rows under a header and totals income, expenses and profit below them.
func FinanceXLSX(rows []FinanceRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", bold); err != nil {
		return nil, err
	}

	var income, expense float64
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{r.Date.Format("2006-01-02"), r.Project, r.Type, r.Amount, r.Description}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
		switch r.Type {
		case "income":
			income += r.Amount
		case "expense":
			expense += r.Amount
		}
	}

	totalsAt := len(rows) + 3
	totals := [][]interface{}{
		{"Total income", income},
		{"Total expenses", expense},
		{"Profit", income - expense},
	}
	for i, t := range totals {
		cell := fmt.Sprintf("C%d", totalsAt+i)
		if err := f.SetSheetRow(sheet, cell, &t); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", "E", 18); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
