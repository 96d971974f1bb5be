package cmd

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/summarylog/summarylog/summary"
)

var (
	// CLI flags for the demo run
	runSteps      int64  // Number of synthetic training steps
	runSeed       int64  // Seed for synthetic parameter generation
	runConfigPath string // Optional YAML recording config
	runParamEvery int64  // Record the parameters histogram every N steps (0 = off)
)

// runCmd drives a synthetic training loop against a training logger. It is
// the reference wiring for real step loops: consult the policy's active
// triggers each step, add what fires, and opt in to parameter histograms
// explicitly.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Record a synthetic training run into an event log",
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := summary.NewTrainingLogger(logDir)
		if err != nil {
			logrus.Fatalf("Failed to open training logger: %v", err)
		}
		defer func() {
			if closeErr := logger.Close(); closeErr != nil {
				logrus.Fatalf("Failed to close logger: %v", closeErr)
			}
		}()

		steps := runSteps
		if runConfigPath != "" {
			cfg, err := GetRecordConfig(runConfigPath)
			if err != nil {
				logrus.Fatalf("Failed to load record config: %v", err)
			}
			if err := cfg.ApplyTo(logger.Policy()); err != nil {
				logrus.Fatalf("Failed to apply record config: %v", err)
			}
			steps = cfg.Steps
		}

		rng := rand.New(rand.NewSource(runSeed))
		weights := make([]float64, 1024)
		for i := range weights {
			weights[i] = rng.NormFloat64() * 0.1
		}

		logrus.Infof("Recording %d synthetic steps into %s", steps, logger.Dir())
		for step := int64(1); step <= steps; step++ {
			loss := 5.0/math.Sqrt(float64(step)) + rng.Float64()*0.05
			throughput := 900 + rng.Float64()*200
			lr := 0.1 * math.Pow(0.999, float64(step))

			values := map[string]float32{
				summary.TagLoss:         float32(loss),
				summary.TagThroughput:   float32(throughput),
				summary.TagLearningRate: float32(lr),
			}
			for tag, trig := range logger.Policy().ActiveTriggers() {
				if !trig.ShouldFire(step) {
					continue
				}
				if err := logger.AddScalar(tag, values[tag], step); err != nil {
					logrus.Fatalf("Failed to record %s at step %d: %v", tag, step, err)
				}
			}

			if runParamEvery > 0 && step%runParamEvery == 0 {
				for i := range weights {
					weights[i] += rng.NormFloat64() * 0.001
				}
				if err := logger.AddHistogram(summary.TagParameters, summary.NewDense(weights), step); err != nil {
					logrus.Fatalf("Failed to record parameters at step %d: %v", step, err)
				}
			}
		}
		logrus.Info("Recording complete.")
	},
}

func init() {
	runCmd.Flags().Int64Var(&runSteps, "steps", 100, "Number of synthetic training steps")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "Seed for synthetic metric generation")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "YAML recording config (tags and cadences)")
	runCmd.Flags().Int64Var(&runParamEvery, "param-every", 0, "Record the parameters histogram every N steps (0 disables)")
}
