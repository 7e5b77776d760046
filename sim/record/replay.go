package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/richardjpurcell/sensor-deployment-simulation/sim"
)

// LoadRunInfo reads run.json from a run directory.
func LoadRunInfo(dir string) (RunInfo, error) {
	data, err := os.ReadFile(filepath.Join(dir, "run.json"))
	if err != nil {
		return RunInfo{}, err
	}
	var info RunInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return RunInfo{}, fmt.Errorf("parsing run.json: %w", err)
	}
	return info, nil
}

// LoadStepRecords reads every step record in a run directory, ordered by
// time step.
func LoadStepRecords(dir string) ([]sim.StepRecord, error) {
	stepsDir := filepath.Join(dir, "timesteps")
	entries, err := os.ReadDir(stepsDir)
	if err != nil {
		return nil, err
	}

	records := make([]sim.StepRecord, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(stepsDir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var raw stepRecordJSON
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		positions := make([]sim.Position, len(raw.SensorPositions))
		for i, p := range raw.SensorPositions {
			positions[i] = sim.Position{Row: p[0], Col: p[1]}
		}
		records = append(records, sim.StepRecord{
			TimeStep:  raw.TimeStep,
			Positions: positions,
			Coverage:  raw.Coverage,
		})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no step records found in %s", stepsDir)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].TimeStep < records[j].TimeStep })
	return records, nil
}
