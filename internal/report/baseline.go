package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/boshu2/agentaudit/internal/types"
)

// BaselineFile is the snapshot path relative to the project root.
const BaselineFile = ".agentaudit/baseline.json"

// SaveBaseline writes a snapshot of the current baseline simulation as a
// whole-file overwrite, so a partial write never corrupts an existing
// snapshot beyond recovery by re-running.
func SaveBaseline(path string, profile *types.PatternProfile, result *types.SimulationResult, componentCount int) (*types.BaselineSnapshot, error) {
	snapshot := &types.BaselineSnapshot{
		Profile:        profile,
		Result:         result,
		ComponentCount: componentCount,
		CapturedAt:     time.Now().UTC(),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create baseline directory: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode baseline: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("write baseline: %w", err)
	}

	return snapshot, nil
}

// LoadBaseline reads a previously captured snapshot.
func LoadBaseline(path string) (*types.BaselineSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline: %w", err)
	}

	var snapshot types.BaselineSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode baseline %s: %w", path, err)
	}
	return &snapshot, nil
}
