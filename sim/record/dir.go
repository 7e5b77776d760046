package record

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/richardjpurcell/sensor-deployment-simulation/sim"
)

// stepRecordJSON is the on-disk form of a step record. Positions flatten
// to [row, col] pairs so the files stay readable without this package.
type stepRecordJSON struct {
	TimeStep        int      `json:"time_step"`
	SensorPositions [][2]int `json:"sensor_positions"`
	Coverage        float64  `json:"coverage"`
}

// DirSink writes one JSON record and one burn-probability CSV per step
// into a run directory.
type DirSink struct {
	stepsDir string
	bpDir    string
}

// NewDirSink prepares dir for a run: creates the timesteps/ and bp_maps/
// subdirectories and records info in run.json.
func NewDirSink(dir string, info RunInfo) (*DirSink, error) {
	s := &DirSink{
		stepsDir: filepath.Join(dir, "timesteps"),
		bpDir:    filepath.Join(dir, "bp_maps"),
	}
	for _, d := range []string{s.stepsDir, s.bpDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, err
		}
	}
	if err := writeJSON(filepath.Join(dir, "run.json"), info); err != nil {
		return nil, err
	}
	return s, nil
}

// RecordStep implements sim.StepSink.
func (s *DirSink) RecordStep(rec sim.StepRecord, bp *sim.Grid) error {
	positions := make([][2]int, len(rec.Positions))
	for i, p := range rec.Positions {
		positions[i] = [2]int{p.Row, p.Col}
	}
	step := stepRecordJSON{
		TimeStep:        rec.TimeStep,
		SensorPositions: positions,
		Coverage:        rec.Coverage,
	}
	path := filepath.Join(s.stepsDir, fmt.Sprintf("time_step_%02d.json", rec.TimeStep))
	if err := writeJSON(path, step); err != nil {
		return err
	}

	bpPath := filepath.Join(s.bpDir, fmt.Sprintf("bp_map_%02d.csv", rec.TimeStep))
	f, err := os.Create(bpPath)
	if err != nil {
		return err
	}
	if err := bp.WriteDelimited(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", bpPath, err)
	}
	return f.Close()
}

// NopSink discards every step record, for runs that only need the
// in-memory histories.
type NopSink struct{}

// RecordStep implements sim.StepSink.
func (NopSink) RecordStep(sim.StepRecord, *sim.Grid) error { return nil }

var (
	_ sim.StepSink = (*DirSink)(nil)
	_ sim.StepSink = NopSink{}
)

// WriteSummary writes a strategy's aggregate metrics next to its run
// directory as <strategy>_metrics.json.
func WriteSummary(dir, strategy string, summary sim.Summary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, strategy+"_metrics.json"), summary)
}
