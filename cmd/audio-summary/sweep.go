package main

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/audio-summary/internal/filemanager"
	"github.com/spf13/cobra"
)

var sweepMaxAge time.Duration

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete expired files from the scratch directory once",
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().DurationVar(&sweepMaxAge, "max-age", 0, "override the configured maximum file age")
}

func runSweep(cmd *cobra.Command, args []string) error {
	maxAge := cfg.Sweep.MaxAge
	if sweepMaxAge > 0 {
		maxAge = sweepMaxAge
	}

	removed := filemanager.New(log).SweepExpired(cmd.Context(), cfg.Paths.Temp, maxAge)
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d file(s) older than %s from %s\n", removed, maxAge, cfg.Paths.Temp)
	return nil
}
