package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boshu2/agentaudit/internal/types"
)

func TestBaseline_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".agentaudit", "baseline.json")

	profile := types.DefaultProfile()
	result := &types.SimulationResult{Sessions: 1000, AvgTokens: 4200, AvgDuration: 21}

	saved, err := SaveBaseline(path, profile, result, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, saved.ComponentCount)
	assert.False(t, saved.CapturedAt.IsZero())

	loaded, err := LoadBaseline(path)
	require.NoError(t, err)

	if diff := cmp.Diff(saved.Result, loaded.Result); diff != "" {
		t.Errorf("result round trip differs (-saved +loaded):\n%s", diff)
	}
	assert.Equal(t, saved.ComponentCount, loaded.ComponentCount)
	assert.True(t, saved.CapturedAt.Equal(loaded.CapturedAt))
}

func TestBaseline_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")

	_, err := SaveBaseline(path, types.DefaultProfile(), &types.SimulationResult{Sessions: 1}, 1)
	require.NoError(t, err)
	_, err = SaveBaseline(path, types.DefaultProfile(), &types.SimulationResult{Sessions: 2}, 2)
	require.NoError(t, err)

	loaded, err := LoadBaseline(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Result.Sessions)
	assert.Equal(t, 2, loaded.ComponentCount)
}

func TestBaseline_LoadMissing(t *testing.T) {
	_, err := LoadBaseline(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestBaseline_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := LoadBaseline(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode baseline")
}
