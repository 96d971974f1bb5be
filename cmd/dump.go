package cmd

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/summarylog/summarylog/summary/eventlog"
)

var (
	// CLI flags for the dump command
	dumpTag        string // Metric tag to dump
	dumpKind       string // Logger kind subdirectory ("train" or "validation")
	dumpHistograms bool   // Dump histogram entries instead of scalars
)

// dumpCmd prints a metric series from a persisted event log.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a metric series by tag from an event log",
	Run: func(cmd *cobra.Command, args []string) {
		if dumpTag == "" {
			logrus.Fatalf("No tag provided. Use --tag to select a metric series.")
		}
		dir := filepath.Join(logDir, dumpKind)

		if dumpHistograms {
			points, err := eventlog.ScanHistograms(dir, dumpTag)
			if err != nil {
				logrus.Fatalf("Failed to scan %s: %v", dir, err)
			}
			fmt.Printf("=== Histogram series %q (%d entries) ===\n", dumpTag, len(points))
			for _, p := range points {
				// stddev from the stored aggregates
				mean := float64(p.Histogram.Sum) / float64(p.Histogram.Num)
				variance := float64(p.Histogram.SumSquares)/float64(p.Histogram.Num) - mean*mean
				fmt.Printf("step %8d  n=%d min=%g max=%g mean=%g stddev=%g buckets=%d\n",
					p.Step, p.Histogram.Num, float64(p.Histogram.Min), float64(p.Histogram.Max),
					mean, math.Sqrt(math.Max(variance, 0)), len(p.Histogram.Bucket))
			}
			return
		}

		points, err := eventlog.ScanScalars(dir, dumpTag)
		if err != nil {
			logrus.Fatalf("Failed to scan %s: %v", dir, err)
		}
		fmt.Printf("=== Scalar series %q (%d entries) ===\n", dumpTag, len(points))
		for _, p := range points {
			fmt.Printf("step %8d  value=%g  wall_time=%.3f\n", p.Step, p.Value, p.WallTime)
		}
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpTag, "tag", "", "Metric tag to dump (e.g. loss)")
	dumpCmd.Flags().StringVar(&dumpKind, "kind", "train", "Logger kind (train|validation)")
	dumpCmd.Flags().BoolVar(&dumpHistograms, "histograms", false, "Dump histogram entries instead of scalars")
}
