package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

func TestLoadCSV(t *testing.T) {
	customers, err := LoadCSV(filepath.Join("testdata", "customers.csv"))
	require.NoError(t, err)
	require.Len(t, customers, 3)

	assert.Equal(t, "דנה לוי", customers[0].Name)
	assert.Equal(t, "0501234567", customers[0].Phone)
	assert.Equal(t, "2024-05-12", customers[0].LastVisit)
	assert.Equal(t, "צבע שורש", customers[0].Treatments)
	assert.Equal(t, "מעדיפה בקרים", customers[0].Notes)

	assert.Equal(t, "רונית כהן", customers[1].Name)
	assert.Equal(t, "יוסי מזרחי", customers[2].Name)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join("testdata", "does-not-exist.csv"))
	assert.Error(t, err)
}

func TestLoadCSVEnglishHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	data := "Name,Phone,Last Visit,Treatments,Notes\nDana Levi,0501234567,2024-05-12,color,\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	customers, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Dana Levi", customers[0].Name)
	assert.Equal(t, "color", customers[0].Treatments)
}

func TestLoadXLSX(t *testing.T) {
	path := writeRosterXLSX(t, [][]string{
		{"שם", "טלפון", "טיפולים"},
		{"דנה לוי", "0501234567", "צבע שורש"},
		{"רונית כהן", "0527654321", ""},
	})

	customers, err := LoadXLSX(path)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "דנה לוי", customers[0].Name)
	assert.Equal(t, "0501234567", customers[0].Phone)
	assert.Equal(t, "רונית כהן", customers[1].Name)
}

func TestLoadFilePicksFormatByExtension(t *testing.T) {
	logger := logging.NewWithWriter("error", os.Stderr)

	csvDir := LoadFile(filepath.Join("testdata", "customers.csv"), logger)
	assert.Equal(t, 3, csvDir.Size())

	xlsxPath := writeRosterXLSX(t, [][]string{
		{"שם", "טלפון"},
		{"דנה לוי", "0501234567"},
	})
	xlsxDir := LoadFile(xlsxPath, logger)
	assert.Equal(t, 1, xlsxDir.Size())
}

func TestLoadFileMissingStartsEmpty(t *testing.T) {
	logger := logging.NewWithWriter("error", os.Stderr)

	dir := LoadFile(filepath.Join(t.TempDir(), "missing.csv"), logger)
	assert.Equal(t, 0, dir.Size())
}

func writeRosterXLSX(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
