package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFor(t *testing.T) {
	p, err := ProfileFor("techno")
	require.NoError(t, err)
	assert.Equal(t, "techno", p.ID)
	assert.Equal(t, 128, p.TempoMin)
	assert.Equal(t, 135, p.TempoMax)
}

func TestProfileForUnknown(t *testing.T) {
	_, err := ProfileFor("dubstep")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStyle)
	assert.Contains(t, err.Error(), "dubstep")
}

func TestIDs(t *testing.T) {
	ids := IDs()
	assert.Len(t, ids, 10)
	assert.Contains(t, ids, "house")
	assert.Contains(t, ids, "drum&bass")
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i], "ids must be sorted")
	}
}

func TestValidateTempo(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		bpm      int
		ok       bool
		wantWarn bool
		wantErr  bool
	}{
		{"techno at lower bound", "techno", 128, true, false, false},
		{"techno at upper bound", "techno", 135, true, false, false},
		{"techno too slow", "techno", 90, false, true, false},
		{"techno too fast", "techno", 150, false, true, false},
		{"ambient default", "ambient", 75, true, false, false},
		{"unknown style", "gabber", 180, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, warning, err := ValidateTempo(tt.style, tt.bpm)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownStyle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			if tt.wantWarn {
				assert.NotEmpty(t, warning)
			} else {
				assert.Empty(t, warning)
			}
		})
	}
}

func TestCatalogConsistency(t *testing.T) {
	for _, id := range IDs() {
		p, err := ProfileFor(id)
		require.NoError(t, err)

		assert.NotEmpty(t, p.Template, "%s needs a section template", id)
		assert.NotEmpty(t, p.RhythmPatterns, id)
		assert.NotEmpty(t, p.BasslineRiffs, id)
		assert.NotEmpty(t, p.Moods, id)
		assert.LessOrEqual(t, p.TempoMin, p.TempoDefault, id)
		assert.LessOrEqual(t, p.TempoDefault, p.TempoMax, id)
		assert.Greater(t, p.ProgressionLen, 0, id)
		assert.Greater(t, p.MeasuresPerChord, 0, id)
		for _, slot := range p.Template {
			assert.Greater(t, slot.Weight, 0, "%s slot %s", id, slot.Type)
		}
	}
}

func TestPresetByName(t *testing.T) {
	p, err := PresetByName("berlin-warehouse")
	require.NoError(t, err)
	assert.Equal(t, "techno", p.Style)
	assert.Equal(t, 132, p.Tempo)

	_, err = PresetByName("nope")
	assert.Error(t, err)
}

func TestPresetsSorted(t *testing.T) {
	ps := Presets()
	require.NotEmpty(t, ps)
	for i := 1; i < len(ps); i++ {
		assert.Less(t, ps[i-1].Name, ps[i].Name)
	}
}
