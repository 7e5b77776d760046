package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/richardjpurcell/sensor-deployment-simulation/sim"
	"github.com/richardjpurcell/sensor-deployment-simulation/sim/record"
)

var runDir string

// summarizeCmd recomputes metrics from a recorded run
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Recompute and print metrics from a recorded run directory",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		records, err := record.LoadStepRecords(runDir)
		if err != nil {
			logrus.Fatalf("Failed to load step records: %v", err)
		}

		coverage := make([]float64, len(records))
		for i, rec := range records {
			coverage[i] = rec.Coverage
		}

		strategy := "unknown"
		if info, err := record.LoadRunInfo(runDir); err == nil {
			strategy = info.Strategy
			fmt.Printf("Run %s: experiment %s, seed %d\n", info.ID, info.Experiment, info.Seed)
		}

		summary := sim.Summarize(coverage)
		summary.Print(strategy)

		dist := sim.NewDistribution(coverage)
		fmt.Printf("Coverage p50=%.4f p95=%.4f min=%.4f max=%.4f over %d steps\n",
			dist.P50, dist.P95, dist.Min, dist.Max, dist.Count)
	},
}

func init() {
	summarizeCmd.Flags().StringVar(&runDir, "run-dir", "", "Run directory holding timesteps/ records")
	_ = summarizeCmd.MarkFlagRequired("run-dir")

	rootCmd.AddCommand(summarizeCmd)
}
