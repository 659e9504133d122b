package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/solodynamo/1-billion-row-challenge/internal/config"
	"github.com/solodynamo/1-billion-row-challenge/internal/stats"
)

func newStatsCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	var (
		path   string
		quoted bool
	)
	workers := cfg.Stats.Workers

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Prints min, max, mean and count per place of a text file.",
		Long: `stats aggregates a file of place;temperature lines and prints one
"place;min;max;mean;count" line per place, sorted by place. With --quoted
the place is quoted and whole values lose their ".0", as in "Hamburg";12;20.1;15.3;4.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			sums, err := stats.File(path, workers)
			if err != nil {
				return fmt.Errorf("aggregating %s: %w", path, err)
			}
			log.Debug().Str("file", path).Int("places", len(sums)).Dur("elapsed", time.Since(start)).Msg("Aggregated records")
			format := stats.Plain
			if quoted {
				format = stats.Quoted
			}
			return stats.WriteFormat(cmd.OutOrStdout(), sums, format)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Text file to aggregate (required)")
	cmd.Flags().IntVarP(&workers, "workers", "w", workers, "Concurrent sections (0 for one per CPU)")
	cmd.Flags().BoolVar(&quoted, "quoted", false, `Quote place names and drop a trailing ".0"`)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
