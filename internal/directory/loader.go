package directory

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Roster files carry either Hebrew or English headers. Column order is
// not assumed; cells are mapped by header name.
var headerAliases = map[string]string{
	"שם":          "name",
	"name":        "name",
	"טלפון":       "phone",
	"phone":       "phone",
	"ביקור אחרון": "last_visit",
	"last visit":  "last_visit",
	"טיפולים":     "treatments",
	"treatments":  "treatments",
	"הערות":       "notes",
	"notes":       "notes",
}

// LoadCSV reads a customer roster from a CSV file with a header row.
func LoadCSV(path string) ([]Customer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("directory: open roster: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("directory: read roster: %w", err)
	}
	return customersFromRows(rows), nil
}

// LoadXLSX reads a customer roster from the first sheet of an Excel
// workbook, as exported by the salon's booking software.
func LoadXLSX(path string) ([]Customer, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("directory: open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("directory: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("directory: read sheet %q: %w", sheets[0], err)
	}
	return customersFromRows(rows), nil
}

func customersFromRows(rows [][]string) []Customer {
	if len(rows) < 2 {
		return nil
	}

	columns := make(map[int]string, len(rows[0]))
	for i, header := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		if field, ok := headerAliases[key]; ok {
			columns[i] = field
		}
	}

	customers := make([]Customer, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var c Customer
		empty := true
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			switch columns[i] {
			case "name":
				c.Name = cell
			case "phone":
				c.Phone = cell
			case "last_visit":
				c.LastVisit = cell
			case "treatments":
				c.Treatments = cell
			case "notes":
				c.Notes = cell
			default:
				continue
			}
			empty = false
		}
		if !empty {
			customers = append(customers, c)
		}
	}
	return customers
}
