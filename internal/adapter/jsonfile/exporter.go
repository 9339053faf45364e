package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"teamwork-time/internal/domain"
)

// Exporter implements ports.Exporter by writing the report as indented JSON
// to a file and echoing it to an output stream.
type Exporter struct {
	dir string
	out io.Writer
	log *slog.Logger
}

// NewExporter writes files into dir (the working directory when empty) and
// echoes to out (os.Stdout when nil).
func NewExporter(dir string, out io.Writer, log *slog.Logger) *Exporter {
	if dir == "" {
		dir = "."
	}
	if out == nil {
		out = os.Stdout
	}
	return &Exporter{dir: dir, out: out, log: log}
}

// FileName returns TeamWork_Time_<from>_<to>.json.
func FileName(interval domain.TimeInterval) string {
	return fmt.Sprintf("TeamWork_Time_%s_%s.json", interval.From, interval.To)
}

// Export overwrites the interval's file and then prints the same JSON.
func (e *Exporter) Export(ctx context.Context, interval domain.TimeInterval, totals domain.Totals) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(totals, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding totals: %w", domain.ErrFileWrite, err)
	}

	path := filepath.Join(e.dir, FileName(interval))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFileWrite, err)
	}
	e.log.Info("wrote totals file", slog.String("path", path), slog.Int("bytes", len(b)))

	if _, err := fmt.Fprintln(e.out, string(b)); err != nil {
		return err
	}
	return nil
}
