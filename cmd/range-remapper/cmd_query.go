package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"range-remapper/internal/pipeline"
)

func (a *app) pointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "points <almanac>",
		Short: "Lowest location for seeds read as individual values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, p, err := a.load(args[0])
			if err != nil {
				return err
			}

			lowest, err := p.MinimumPointOutput(doc.SeedPoints())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), lowest)

			return nil
		},
	}
}

func (a *app) rangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges <almanac>",
		Short: "Lowest location for seeds read as (start, length) pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, p, err := a.load(args[0])
			if err != nil {
				return err
			}

			seeds, err := doc.SeedRanges()
			if err != nil {
				return err
			}

			lowest, err := a.executor().MinimumOutput(contextOf(cmd), p, seeds)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), lowest)

			return nil
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	var (
		limit    uint64
		interval bool
	)

	cmd := &cobra.Command{
		Use:   "search <almanac>",
		Short: "Lowest location for seed ranges by scanning locations upward",
		Long: `search walks candidate locations 0, 1, 2, ... backwards through the
inverted pipeline until one lands inside a seed range. It is a brute-force
fallback, only valid when every stage is a bijection, and gives up after
--limit candidates. Pass --interval to answer the same bounded question
with the interval method instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, p, err := a.load(args[0])
			if err != nil {
				return err
			}

			seeds, err := doc.SeedRanges()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Execution.SearchLimit
			}

			a.logger.Debug("starting search", zap.Uint64("limit", limit), zap.Bool("interval", interval))

			var lowest uint64
			if interval {
				lowest, err = a.executor().MinimumReachable(contextOf(cmd), p, seeds, limit)
			} else {
				lowest, err = a.executor().MinimumInputReaching(contextOf(cmd), p, pipeline.SeedsAsPredicate(seeds), limit)
			}

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), lowest)

			return nil
		},
	}

	cmd.Flags().Uint64Var(&limit, "limit", 0, "maximum number of candidates to try (default from config)")
	cmd.Flags().BoolVar(&interval, "interval", false, "use the interval method instead of scanning")

	return cmd
}

func (a *app) pointCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "point <almanac> <value>",
		Short: "Trace one value through every stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := a.load(args[0])
			if err != nil {
				return err
			}

			v, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "input: %d\n", v)

			trace := p.Trace(v)
			for i, st := range p.Stages() {
				fmt.Fprintf(out, "%s: %d\n", st.Name(), trace[i])
			}

			return nil
		},
	}
}
