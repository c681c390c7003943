// Package export writes report tables to opaque targets. The core only ever
// hands it a (headers, rows) tuple; the formats themselves are presentation
// concerns.
package export

import (
	"encoding/csv"
	"io"

	"gym_crm_backend/internal/models"
)

// WriteCSV emits the table with a fixed header row matching the on-screen
// columns.
func WriteCSV(w io.Writer, table *models.ReportTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Headers); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
