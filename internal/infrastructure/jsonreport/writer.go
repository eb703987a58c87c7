package jsonreport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"MediaObservatory/internal/domain"
	"MediaObservatory/internal/ports"
)

// FileWriter stores the stats report as pretty-printed JSON, the file the
// dashboard serves verbatim.
type FileWriter struct {
	path   string
	logger *slog.Logger
}

var _ ports.ReportWriter = (*FileWriter)(nil)

// NewFileWriter targets the configured stats file path.
func NewFileWriter(path string, logger *slog.Logger) *FileWriter {
	return &FileWriter{path: path, logger: logger}
}

// WriteReport marshals and writes the report, creating parent directories as
// needed.
func (w *FileWriter) WriteReport(ctx context.Context, report domain.StatsReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	if err := os.WriteFile(w.path, payload, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if w.logger != nil {
		w.logger.Info("report written", "path", w.path, "bytes", len(payload))
	}
	return nil
}
