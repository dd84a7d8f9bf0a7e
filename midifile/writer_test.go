package midifile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yrbane/acidgrid/engine"
)

func TestWrite(t *testing.T) {
	arr, err := engine.Compose(engine.Request{Style: "techno", Measures: 16, Seed: 42})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.mid")
	require.NoError(t, Write(arr, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(100), "file should contain real track data")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "MThd", string(data[:4]))
}

func TestWriteEmptyStyleErrors(t *testing.T) {
	_, err := engine.Compose(engine.Request{Style: "nope", Measures: 16, Seed: 1})
	require.Error(t, err)
}

func TestReleaseVelocityRanges(t *testing.T) {
	// Bass layers release soft and slow, drums hard.
	for v := uint8(1); v <= 127; v++ {
		rel := releaseVelocity(1, v)
		assert.GreaterOrEqual(t, rel, uint8(60))
		assert.LessOrEqual(t, rel, uint8(80))
	}
	assert.Equal(t, uint8(0), releaseVelocity(0, 100))
}
