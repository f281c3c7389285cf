package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"range-remapper/internal/almanac"
	"range-remapper/internal/config"
	"range-remapper/internal/logging"
	"range-remapper/internal/pipeline"
)

// app carries flags and the state built in PersistentPreRunE.
type app struct {
	configPath  string
	verbose     bool
	parallelism int
	format      string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "range-remapper",
		Short: "Push seed ranges through layered remapping stages",
		Long: `range-remapper evaluates an almanac: a list of seeds followed by an ordered
sequence of "x-to-y map:" stages, each made of "dest source length" lines.

Values not covered by any line of a stage pass through unchanged. Ranges
are processed as whole intervals, so huge seed ranges cost no more than
small ones.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&a.parallelism, "parallelism", 0, "goroutines per stage (overrides config)")
	pf.StringVar(&a.format, "format", "", "input format: auto, text or yaml (overrides config)")

	root.AddCommand(
		a.pointsCmd(),
		a.rangesCmd(),
		a.searchCmd(),
		a.pointCmd(),
		a.exportCmd(),
		a.validateCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()

	if a.configPath != "" {
		loaded, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if cmd.Flags().Changed("parallelism") {
		cfg.Execution.Parallelism = a.parallelism
	}

	if cmd.Flags().Changed("format") {
		cfg.Input.Format = a.format
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, a.verbose)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With(zap.String("run_id", uuid.NewString()), zap.String("command", cmd.Name()))

	return nil
}

func (a *app) executor() *pipeline.Executor {
	return pipeline.NewExecutor(
		pipeline.WithLogger(a.logger),
		pipeline.WithParallelism(a.cfg.Execution.Parallelism),
		pipeline.WithCoalesce(a.cfg.Execution.Coalesce),
	)
}

// load parses and validates the almanac at path and builds its pipeline.
func (a *app) load(path string) (*almanac.Document, *pipeline.Pipeline, error) {
	doc, err := almanac.LoadFile(path, almanac.Format(a.cfg.Input.Format))
	if err != nil {
		return nil, nil, err
	}

	res := doc.Validate()
	for _, w := range res.Warnings {
		a.logger.Warn("almanac warning", zap.String("code", w.Code), zap.String("detail", w.String()))
	}

	if err := res.Err(); err != nil {
		return nil, nil, fmt.Errorf("invalid almanac %s: %w", path, err)
	}

	p, err := doc.Pipeline()
	if err != nil {
		return nil, nil, err
	}

	a.logger.Debug("almanac loaded",
		zap.String("path", path),
		zap.Int("seeds", len(doc.Seeds)),
		zap.Int("stages", p.Len()))

	return doc, p, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
