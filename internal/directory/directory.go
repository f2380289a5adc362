package directory

import (
	"path/filepath"
	"strings"

	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

// Customer is one row of the salon's customer roster.
type Customer struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	LastVisit  string `json:"last_visit"`
	Treatments string `json:"treatments"`
	Notes      string `json:"notes"`
}

// Directory is a read-only lookup of customers by normalized phone.
// It is loaded once at startup and never mutated, so lookups need no
// synchronization.
type Directory struct {
	byPhone map[string]Customer
	size    int
}

// New builds a directory from the given customers, indexing each by
// normalized phone. Rows without a usable phone are skipped.
func New(customers []Customer) *Directory {
	byPhone := make(map[string]Customer, len(customers))
	for _, c := range customers {
		key := NormalizePhone(c.Phone)
		if key == "" {
			continue
		}
		if _, exists := byPhone[key]; !exists {
			byPhone[key] = c
		}
	}
	return &Directory{byPhone: byPhone, size: len(byPhone)}
}

// Lookup finds a customer by phone in any dialable form. A miss is the
// documented unknown-customer branch, not an error.
func (d *Directory) Lookup(phone string) (Customer, bool) {
	c, ok := d.byPhone[NormalizePhone(phone)]
	return c, ok
}

// Size returns the number of indexed customers.
func (d *Directory) Size() int {
	return d.size
}

// LoadFile loads a roster from a CSV or XLSX file, picked by extension.
// A missing file starts the directory empty rather than failing.
func LoadFile(path string, logger *logging.Logger) *Directory {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		customers []Customer
		err       error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		customers, err = LoadXLSX(path)
	default:
		customers, err = LoadCSV(path)
	}
	if err != nil {
		logger.Warn("customer roster unavailable, starting empty", "path", path, "error", err)
		return New(nil)
	}

	dir := New(customers)
	logger.Info("customer roster loaded", "path", path, "customers", dir.Size())
	return dir
}
