package main

import (
	"context"
	"log"

	"skillscope/internal/config"
	"skillscope/internal/dataset"
	"skillscope/internal/pipeline"
	"skillscope/internal/sink"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func newLoader(logger *zap.Logger, cfg *config.Config) *dataset.Loader {
	return dataset.NewLoader(logger, cfg.CSVComma)
}

func newRootCommand() *cobra.Command {
	var inputPath string
	var outputDir string

	cmd := &cobra.Command{
		Use:          "export",
		Short:        "Export aggregated job-postings tables for the dashboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), inputPath, outputDir)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "",
		"path to the cleaned postings CSV (defaults to the configured path)")
	cmd.Flags().StringVar(&outputDir, "output", "",
		"directory the exported tables are written to (defaults to the configured path)")
	return cmd
}

func run(ctx context.Context, inputPath, outputDir string) error {
	newConfig := func() (*config.Config, error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, err
		}
		if inputPath != "" {
			cfg.InputPath = inputPath
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}
		return cfg, nil
	}

	var p *pipeline.Pipeline
	app := fx.New(
		fx.Provide(
			newConfig,
			newLogger,
			newLoader,
			sink.NewCSVSink,
			pipeline.New,
		),
		fx.Populate(&p),
	)

	if err := app.Start(ctx); err != nil {
		return err
	}
	runErr := p.Run(ctx)
	if err := app.Stop(ctx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
