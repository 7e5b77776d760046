package cmd

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/richardjpurcell/sensor-deployment-simulation/sim"
)

// Defaults for optional experiment-config fields. Alpha and beta default
// differently per algorithm: the epsilon-greedy value function leans on
// burn probability, the genetic fitness weighs both fields evenly.
const (
	defaultExperimentName = "DefaultExperiment"
	defaultSeed           = int64(42)
	defaultEpsilon        = 0.2
	defaultEpsilonAlpha   = 0.7
	defaultEpsilonBeta    = 0.3
	defaultGeneticAlpha   = 0.5
	defaultGeneticBeta    = 0.5
	defaultPopulation     = 50
	defaultGenerations    = 100
	defaultMutationRate   = 0.1
	defaultDecayFactor    = 0.9
	defaultThreshold      = 0.5
	defaultLogsDir        = "logs"
)

// ExperimentConfig is the YAML experiment file. Optional scalars are
// pointers so an absent key and an explicit zero stay distinguishable.
type ExperimentConfig struct {
	ExperimentName  string                `yaml:"experiment_name"`
	Seed            *int64                `yaml:"seed"`
	Data            DataConfig            `yaml:"data"`
	Deployment      DeploymentConfig      `yaml:"deployment"`
	Simulation      SimulationConfig      `yaml:"simulation"`
	BurnProbability BurnProbabilityConfig `yaml:"burn_probability"`
	Logs            LogsConfig            `yaml:"logs"`
}

// DataConfig locates the fire-field series.
type DataConfig struct {
	Directory    string `yaml:"directory"`
	NumTimeSteps int    `yaml:"num_time_steps"`
}

// DeploymentConfig selects and parameterizes the placement algorithm.
type DeploymentConfig struct {
	Algorithm      string   `yaml:"algorithm"`
	NumSensors     int      `yaml:"num_sensors"`
	SensorRadius   float64  `yaml:"sensor_radius"`
	Epsilon        *float64 `yaml:"epsilon"`
	Alpha          *float64 `yaml:"alpha"`
	Beta           *float64 `yaml:"beta"`
	PopulationSize *int     `yaml:"population_size"`
	NumGenerations *int     `yaml:"num_generations"`
	MutationRate   *float64 `yaml:"mutation_rate"`
}

// SimulationConfig holds loop-level parameters.
type SimulationConfig struct {
	DetectionThreshold *float64 `yaml:"detection_threshold"`
}

// BurnProbabilityConfig seeds and evolves the burn-probability field. An
// empty File means a uniform-random seed from the run's RNG.
type BurnProbabilityConfig struct {
	File        string   `yaml:"file"`
	DecayFactor *float64 `yaml:"decay_factor"`
}

// LogsConfig locates run output.
type LogsConfig struct {
	OutputDirectory string `yaml:"output_directory"`
}

// LoadExperimentConfig reads, defaults, and validates an experiment file.
// Unknown YAML keys are rejected so typos fail loudly instead of silently
// falling back to defaults.
func LoadExperimentConfig(path string) (*ExperimentConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg ExperimentConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *ExperimentConfig) applyDefaults() {
	if c.ExperimentName == "" {
		c.ExperimentName = defaultExperimentName
	}
	if c.Seed == nil {
		seed := defaultSeed
		c.Seed = &seed
	}
	c.Deployment.Algorithm = strings.ToLower(strings.TrimSpace(c.Deployment.Algorithm))
	if c.Simulation.DetectionThreshold == nil {
		threshold := defaultThreshold
		c.Simulation.DetectionThreshold = &threshold
	}
	if c.BurnProbability.DecayFactor == nil {
		decay := defaultDecayFactor
		c.BurnProbability.DecayFactor = &decay
	}
	if c.Logs.OutputDirectory == "" {
		c.Logs.OutputDirectory = defaultLogsDir
	}
}

// Validate reports the first invalid field. Call after applyDefaults.
func (c *ExperimentConfig) Validate() error {
	if c.Data.Directory == "" {
		return fmt.Errorf("data.directory is required")
	}
	if c.Data.NumTimeSteps <= 0 {
		return fmt.Errorf("data.num_time_steps must be positive, got %d", c.Data.NumTimeSteps)
	}
	if decay := *c.BurnProbability.DecayFactor; decay <= 0 || decay > 1 {
		return fmt.Errorf("burn_probability.decay_factor must be in (0,1], got %v", decay)
	}
	return c.PlacementConfig().Validate()
}

// PlacementConfig resolves the deployment section for the configured
// algorithm.
func (c *ExperimentConfig) PlacementConfig() sim.PlacementConfig {
	return c.PlacementConfigFor(c.Deployment.Algorithm)
}

// PlacementConfigFor resolves the deployment section for an arbitrary
// strategy, so compare can run every strategy from one experiment file.
func (c *ExperimentConfig) PlacementConfigFor(strategy string) sim.PlacementConfig {
	d := c.Deployment
	alpha, beta := defaultGeneticAlpha, defaultGeneticBeta
	if strategy == "epsilon-greedy" {
		alpha, beta = defaultEpsilonAlpha, defaultEpsilonBeta
	}
	return sim.PlacementConfig{
		Strategy:       strategy,
		NumSensors:     d.NumSensors,
		SensorRadius:   d.SensorRadius,
		Epsilon:        floatOr(d.Epsilon, defaultEpsilon),
		Alpha:          floatOr(d.Alpha, alpha),
		Beta:           floatOr(d.Beta, beta),
		PopulationSize: intOr(d.PopulationSize, defaultPopulation),
		NumGenerations: intOr(d.NumGenerations, defaultGenerations),
		MutationRate:   floatOr(d.MutationRate, defaultMutationRate),
	}
}

func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
