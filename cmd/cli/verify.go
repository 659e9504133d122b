package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/solodynamo/1-billion-row-challenge/internal/config"
	"github.com/solodynamo/1-billion-row-challenge/internal/utils"
	"github.com/solodynamo/1-billion-row-challenge/internal/verify"
)

func newVerifyCmd(cfg *config.Config) *cobra.Command {
	var path string
	exp := verify.Expectations{
		Places: cfg.Generator.Places,
		Min:    cfg.Generator.Min,
		Max:    cfg.Generator.Max,
		Rows:   verify.AnyRowCount,
	}

	cmd := &cobra.Command{
		Use:          "verify",
		Short:        "Checks that a text file holds well-formed records.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := verify.File(path, exp)
			if err != nil {
				return fmt.Errorf("verification of %s failed: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s valid records\n", path, utils.FormatCount(rep.Lines))
			places := make([]string, 0, len(rep.PerPlace))
			for p := range rep.PerPlace {
				places = append(places, p)
			}
			slices.Sort(places)
			for _, p := range places {
				fmt.Fprintf(out, "  %s: %s\n", p, utils.FormatCount(rep.PerPlace[p]))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Text file to check (required)")
	cmd.Flags().Int64VarP(&exp.Rows, "rows", "n", verify.AnyRowCount, "Exact number of records expected (-1 for any)")
	cmd.Flags().StringSliceVar(&exp.Places, "places", exp.Places, "Allowed place names (empty for any)")
	cmd.Flags().Float64Var(&exp.Min, "min", exp.Min, "Lowest allowed temperature")
	cmd.Flags().Float64Var(&exp.Max, "max", exp.Max, "Highest allowed temperature")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
