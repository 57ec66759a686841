package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"finlens/pkg/contracts/domain"
)

// CSVWriter exports pipeline tables as CSV files.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger.With(slog.String("component", "exporter"))}
}

// WriteIndicators streams the indicator table: rows in catalogue order,
// columns in chronological order, absent cells as the placeholder.
func (w *CSVWriter) WriteIndicators(out io.Writer, t *domain.IndicatorTable) error {
	cw := csv.NewWriter(out)

	header := append([]string{"Indicator"}, periodHeader(t.Periods)...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, name := range t.Names {
		row := make([]string, 0, len(t.Periods)+1)
		row = append(row, name)
		for _, p := range t.Periods {
			if v, ok := t.Value(name, p); ok {
				row = append(row, FormatIndicator(v))
			} else {
				row = append(row, AbsentCell)
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %q: %w", name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteStatement streams one pivoted statement view.
func (w *CSVWriter) WriteStatement(out io.Writer, t *domain.StatementTable) error {
	cw := csv.NewWriter(out)

	header := append([]string{"Line Item"}, periodHeader(t.Periods)...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, label := range t.Labels {
		row := make([]string, 0, len(t.Periods)+1)
		row = append(row, label)
		for _, p := range t.Periods {
			if v, ok := t.Value(label, p); ok {
				row = append(row, FormatAmount(v))
			} else {
				row = append(row, AbsentCell)
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %q: %w", label, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveIndicators writes the indicator table to a file with a UTF-8 BOM so
// Excel opens it correctly.
func (w *CSVWriter) SaveIndicators(path string, t *domain.IndicatorTable) error {
	return w.saveWithBOM(path, func(f io.Writer) error { return w.WriteIndicators(f, t) })
}

// SaveStatement writes one statement view to a file with a UTF-8 BOM.
func (w *CSVWriter) SaveStatement(path string, t *domain.StatementTable) error {
	return w.saveWithBOM(path, func(f io.Writer) error { return w.WriteStatement(f, t) })
}

func (w *CSVWriter) saveWithBOM(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}
	if err := write(f); err != nil {
		return err
	}

	w.logger.Info("CSV written", slog.String("path", path))
	return nil
}

func periodHeader(periods []domain.PeriodLabel) []string {
	out := make([]string, len(periods))
	for i, p := range periods {
		out[i] = string(p)
	}
	return out
}
