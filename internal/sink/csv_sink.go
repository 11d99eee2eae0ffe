package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"skillscope/internal/aggregate"
	"skillscope/internal/config"
	"skillscope/internal/errors"
	"skillscope/internal/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("skillscope/sink")

// Sink persists one derived table and reports the number of data rows
// written.
type Sink interface {
	Write(ctx context.Context, table aggregate.Table) (int, error)
}

type csvSink struct {
	dir    string
	comma  rune
	logger *zap.Logger
}

// NewCSVSink returns a Sink writing <table name>.csv files into the
// configured output directory, creating it if absent.
func NewCSVSink(logger *zap.Logger, cfg *config.Config) (Sink, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.OutputFailure(fmt.Sprintf("creating output directory %s", cfg.OutputDir), err)
	}
	return &csvSink{dir: cfg.OutputDir, comma: cfg.CSVComma, logger: logger}, nil
}

func (s *csvSink) Write(ctx context.Context, table aggregate.Table) (int, error) {
	_, span := tracer.Start(ctx, "WriteTable")
	defer span.End()
	span.SetAttributes(
		telemetry.String("table.name", table.Name),
		telemetry.Int("table.rows", len(table.Rows)),
	)

	path := filepath.Join(s.dir, table.Name+".csv")
	file, err := os.Create(path)
	if err != nil {
		return 0, errors.OutputFailure(fmt.Sprintf("creating %s", path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = s.comma

	if err := writer.Write(table.Header); err != nil {
		return 0, errors.OutputFailure(fmt.Sprintf("writing header of %s", path), err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return 0, errors.OutputFailure(fmt.Sprintf("writing row of %s", path), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, errors.OutputFailure(fmt.Sprintf("flushing %s", path), err)
	}
	if err := file.Close(); err != nil {
		return 0, errors.OutputFailure(fmt.Sprintf("closing %s", path), err)
	}

	s.logger.Debug("wrote table",
		zap.String("table", table.Name),
		zap.String("path", path),
		zap.Int("rows", len(table.Rows)))
	return len(table.Rows), nil
}
