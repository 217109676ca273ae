package publisher

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// CSVFile publishes the ranking snapshot to a local CSV file, replacing any
// previous content.
type CSVFile struct {
	Path string
}

// NewCSVFile creates a CSV file sink writing to path.
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{Path: path}
}

var _ Publisher = (*CSVFile)(nil)

func (c *CSVFile) Publish(_ context.Context, report Report) error {
	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", c.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range report.Rows {
		if err := w.Write(row.Strings()); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	if err := w.Write(report.CheckpointRow()); err != nil {
		return fmt.Errorf("writing checkpoint row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	log.Info("Wrote ranking snapshot", "path", c.Path, "players", len(report.Rows))
	return nil
}
