package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"dubizzle-scraper/models"
	"dubizzle-scraper/utils"
)

// csvHeader is the fixed output column order. Changing it breaks downstream
// consumers of the file.
var csvHeader = []string{
	"name",
	"telephone number",
	"price",
	"location",
	"type of car",
	"description",
	"link of ad",
}

// CSVWriter saves records to a CSV file, overwriting the previous run's
// output. The file is written even for an empty run so a completed run
// always produces output.
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

func (w *CSVWriter) Write(records []models.Record) error {
	// Create output directory if needed (e.g. "output/" folder)
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	// csv.NewWriter handles quoting, commas inside fields, line endings
	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write(csvHeader)

	for _, r := range records {
		writer.Write([]string{
			r.Name,
			r.Phone,
			r.Price,
			r.Location,
			r.CarType,
			r.Description,
			r.Link,
		})
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}

	utils.Success("Saved %d records → %s", len(records), w.path)
	return nil
}
