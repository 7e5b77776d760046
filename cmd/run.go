package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/richardjpurcell/sensor-deployment-simulation/sim"
	"github.com/richardjpurcell/sensor-deployment-simulation/sim/fire"
	"github.com/richardjpurcell/sensor-deployment-simulation/sim/record"
)

var (
	configPath     string // Path to the experiment YAML file
	experimentName string // Optional override for experiment_name
	seed           int64  // Optional override for the master seed
)

// runCmd executes one simulation with the configured algorithm
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one sensor-deployment simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := LoadExperimentConfig(configPath)
		if err != nil {
			logrus.Fatalf("Invalid experiment config: %v", err)
		}
		applyOverrides(cmd, cfg)

		summary, err := executeRun(cfg, cfg.PlacementConfig())
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		summary.Print(cfg.Deployment.Algorithm)
	},
}

// applyOverrides lets the flags win over the config file. The seed flag
// has a real default, so only a flag the user actually set may override
// the config value.
func applyOverrides(cmd *cobra.Command, cfg *ExperimentConfig) {
	if experimentName != "" {
		cfg.ExperimentName = experimentName
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = &seed
	}
}

// executeRun wires one strategy into a full simulation: fire series, BP
// seed, partitioned RNG, persistence sink. Shared by run and compare.
func executeRun(cfg *ExperimentConfig, pc sim.PlacementConfig) (sim.Summary, error) {
	key := sim.NewSimulationKey(*cfg.Seed)
	rng := sim.NewPartitionedRNG(key)

	fields, err := fire.LoadSeries(cfg.Data.Directory, cfg.Data.NumTimeSteps)
	if err != nil {
		return sim.Summary{}, err
	}

	bpSeed, err := loadBPSeed(cfg, fields[0], rng)
	if err != nil {
		return sim.Summary{}, err
	}
	bp := sim.NewBurnProbabilityField(bpSeed, *cfg.BurnProbability.DecayFactor,
		pc.SensorRadius, *cfg.Simulation.DetectionThreshold)

	strategy := sim.NewPlacementStrategy(pc, rng.ForSubsystem(sim.SubsystemPlacement))

	runDir := filepath.Join(cfg.Logs.OutputDirectory, cfg.ExperimentName, pc.Strategy)
	sink, err := record.NewDirSink(runDir, record.NewRunInfo(cfg.ExperimentName, pc.Strategy, *cfg.Seed))
	if err != nil {
		return sim.Summary{}, err
	}

	s, err := sim.NewSimulator(fields, strategy, bp, sink,
		cfg.Data.NumTimeSteps, pc.SensorRadius, *cfg.Simulation.DetectionThreshold)
	if err != nil {
		return sim.Summary{}, err
	}
	if err := s.Run(); err != nil {
		return sim.Summary{}, err
	}

	summary := s.Summary()
	if err := record.WriteSummary(filepath.Join(cfg.Logs.OutputDirectory, cfg.ExperimentName), pc.Strategy, summary); err != nil {
		return sim.Summary{}, err
	}
	logrus.Infof("run %s/%s: step records in %s", cfg.ExperimentName, pc.Strategy, runDir)
	return summary, nil
}

// loadBPSeed resolves the initial burn-probability grid. A configured
// seed file must load and match the fire-field shape; no configured file
// means a uniform-random seed from the run's bpseed stream.
func loadBPSeed(cfg *ExperimentConfig, ref *sim.Grid, rng *sim.PartitionedRNG) (*sim.Grid, error) {
	if cfg.BurnProbability.File == "" {
		logrus.Info("no burn-probability seed file configured, seeding at random")
		return sim.RandomGrid(ref.Rows(), ref.Cols(), rng.ForSubsystem(sim.SubsystemBPSeed)), nil
	}
	g, err := fire.LoadGrid(cfg.BurnProbability.File)
	if err != nil {
		return nil, fmt.Errorf("burn-probability seed: %w", err)
	}
	if !g.SameShape(ref) {
		return nil, fmt.Errorf("burn-probability seed %s is %dx%d, fire fields are %dx%d",
			cfg.BurnProbability.File, g.Rows(), g.Cols(), ref.Rows(), ref.Cols())
	}
	return g, nil
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "configs/default_config.yaml", "Path to the experiment YAML file")
	runCmd.Flags().StringVar(&experimentName, "experiment-name", "", "Override experiment_name from the config")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed (overrides the config when set)")

	rootCmd.AddCommand(runCmd)
}
