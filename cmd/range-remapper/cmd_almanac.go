package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"range-remapper/internal/almanac"
	"range-remapper/internal/diagnostic"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		output string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "export <almanac>",
		Short: "Re-encode an almanac as YAML or text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, p, err := a.load(args[0])
			if err != nil {
				return err
			}

			canonical := almanac.FromPipeline(p, doc.Seeds)

			switch almanac.Format(to) {
			case almanac.FormatYAML:
				if output != "" {
					return almanac.WriteYAMLFile(canonical, output)
				}

				data, err := almanac.MarshalYAML(canonical)
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(data)

				return err
			case almanac.FormatText:
				if output != "" {
					return fmt.Errorf("--output is only supported with --to yaml")
				}

				return almanac.WriteText(cmd.OutOrStdout(), canonical)
			default:
				return fmt.Errorf("unsupported export format %q", to)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&to, "to", string(almanac.FormatYAML), "output format: yaml or text")

	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <almanac>",
		Short: "Report every problem in an almanac",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := almanac.LoadFile(args[0], almanac.Format(a.cfg.Input.Format))
			if err != nil {
				return err
			}

			res := doc.Validate()
			out := cmd.OutOrStdout()

			for _, group := range [][]diagnostic.Diagnostic{res.Errors, res.Warnings, res.Infos} {
				for _, d := range group {
					fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
				}
			}

			if res.HasErrors() {
				return fmt.Errorf("%d error(s) in %s", len(res.Errors), args[0])
			}

			fmt.Fprintln(out, "ok")

			return nil
		},
	}
}
