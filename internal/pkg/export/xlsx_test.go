package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFinanceXLSX(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	data, err := FinanceXLSX([]FinanceRow{
		{Date: day, Project: "Alpha", Type: "income", Amount: 500.5, Description: "deposit"},
		{Date: day, Project: "Alpha", Type: "expense", Amount: 120.25},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Project", "Type", "Amount", "Description"}, rows[0])
	assert.Equal(t, "2025-03-01", rows[1][0])
	assert.Equal(t, "Alpha", rows[1][1])

	profit, err := f.GetCellValue(sheet, "D7")
	require.NoError(t, err)
	assert.Equal(t, "380.25", profit)
}
