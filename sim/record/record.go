// Package record persists simulation runs to disk and reads them back.
// A run directory holds run.json (identity and seed), timesteps/ with one
// JSON record per step, and bp_maps/ with the matching burn-probability
// grids as CSV.
package record

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"
)

// RunInfo identifies one simulation run.
type RunInfo struct {
	ID         string `json:"run_id"`
	Experiment string `json:"experiment"`
	Strategy   string `json:"strategy"`
	Seed       int64  `json:"seed"`
}

// NewRunInfo mints a RunInfo with a fresh unique ID.
func NewRunInfo(experiment, strategy string, seed int64) RunInfo {
	return RunInfo{
		ID:         uuid.NewString(),
		Experiment: experiment,
		Strategy:   strategy,
		Seed:       seed,
	}
}

// writeJSON marshals v with indentation and writes it to path.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
