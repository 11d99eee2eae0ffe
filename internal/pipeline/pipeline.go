package pipeline

import (
	"context"
	"fmt"

	"skillscope/internal/aggregate"
	"skillscope/internal/config"
	"skillscope/internal/dataset"
	"skillscope/internal/sink"
	"skillscope/internal/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Pipeline runs the full export: load the cleaned dataset once, build the
// twelve derived tables from the same snapshot, write each through the sink.
// The first error aborts the run; tables already written stay on disk.
type Pipeline struct {
	logger *zap.Logger
	loader *dataset.Loader
	sink   sink.Sink
	tracer trace.Tracer
	config *config.Config
}

func New(logger *zap.Logger, loader *dataset.Loader, out sink.Sink, cfg *config.Config) *Pipeline {
	tracer := telemetry.GetTracer("skillscope/pipeline")
	return &Pipeline{
		logger: logger,
		loader: loader,
		sink:   out,
		tracer: tracer,
		config: cfg,
	}
}

func (p *Pipeline) Run(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "Run")
	defer span.End()

	runID := uuid.NewString()
	logger := p.logger.With(zap.String("run_id", runID))
	logger.Info("starting export",
		zap.String("input", p.config.InputPath),
		zap.String("output_dir", p.config.OutputDir))

	ds, err := p.loader.Load(ctx, p.config.InputPath)
	if err != nil {
		logger.Error("failed to load dataset", zap.Error(err))
		return fmt.Errorf("load dataset: %w", err)
	}

	tables := 0
	for _, build := range aggregate.All() {
		table, err := build(ds)
		if err != nil {
			logger.Error("failed to build table", zap.Error(err))
			return fmt.Errorf("build table: %w", err)
		}

		rows, err := p.sink.Write(ctx, table)
		if err != nil {
			logger.Error("failed to write table",
				zap.String("table", table.Name),
				zap.Error(err))
			return fmt.Errorf("write %s: %w", table.Name, err)
		}

		logger.Info("saved table",
			zap.String("table", table.Name),
			zap.Int("rows", rows))
		tables++
	}

	span.SetAttributes(telemetry.Int("export.tables", tables))
	logger.Info("export complete", zap.Int("tables", tables))
	return nil
}
