package cfr

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyTableMarshalRoundTrip(t *testing.T) {
	table := StrategyTable{
		NewHistory():     {{0.25, 1}, {0.75, 0}},
		NewHistory(0, 1): {{0, 0.5}, {1, 0.5}},
	}

	var buf bytes.Buffer
	require.NoError(t, table.MarshalTo(&buf))
	loaded, err := LoadStrategyTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, loaded)
}

func TestLoadStrategyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strategy.gob")
	table := StrategyTable{NewHistory(1): {{1}, {0}}}
	require.NoError(t, table.SaveFile(path))

	loaded, err := LoadStrategyFile(path)
	require.NoError(t, err)
	assert.Equal(t, table, loaded)

	_, err = LoadStrategyFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
