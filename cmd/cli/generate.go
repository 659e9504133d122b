package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/solodynamo/1-billion-row-challenge/internal/application"
	"github.com/solodynamo/1-billion-row-challenge/internal/config"
	"github.com/solodynamo/1-billion-row-challenge/internal/utils"
)

func newGenerateCmd(cfg *config.Config, service *application.GeneratorService) *cobra.Command {
	var (
		outputPath string
		rowSpec    string
		seed       uint64
	)
	opts := cfg.Options()

	cmd := &cobra.Command{
		Use:   "gendata",
		Short: "Generates a file of random place;temperature records.",
		Long: `gendata writes random temperature records, one "place;temperature" line
each, for benchmarking line-oriented file processors.

Places are drawn uniformly from the place list and temperatures uniformly from
[min, max], rounded to one decimal digit. The output is created or truncated.
The format follows the extension: txt (default), csv, jsonl or xlsx.

Output grows linearly with --rows: one billion text rows is about 14 GB.`,
		Example: `  gendata -o measurements.txt -n 1B
  gendata -o sample.csv -n 10K --places Hamburg,Cracow --min -5 --max 35 --seed 7`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				opts.Seed = &seed
			}

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Suffix = " generating " + outputPath
			opts.Progress = func(written int64) {
				s.Lock()
				s.Suffix = fmt.Sprintf(" %s rows written to %s", utils.FormatCount(written), outputPath)
				s.Unlock()
			}
			s.Start()
			err := service.CreateFile(outputPath, rowSpec, opts)
			s.Stop()
			if err != nil {
				return fmt.Errorf("error generating file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %s with %s rows\n", outputPath, rowSpec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to the output file (required)")
	cmd.Flags().StringVarP(&rowSpec, "rows", "n", "", "Number of records (e.g., 1000, 10K, 5M, 1B) (required)")
	cmd.Flags().StringSliceVar(&opts.Places, "places", opts.Places, "Comma separated place names")
	cmd.Flags().Float64Var(&opts.Min, "min", opts.Min, "Lowest temperature")
	cmd.Flags().Float64Var(&opts.Max, "max", opts.Max, "Highest temperature")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output (random when unset)")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("rows")

	return cmd
}
