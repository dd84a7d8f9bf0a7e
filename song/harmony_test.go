package song

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHarmonyDeterministic(t *testing.T) {
	p := mustProfile(t, "techno")

	a := BuildHarmony(p, 42)
	b := BuildHarmony(p, 42)
	assert.Equal(t, a, b)

	varies := false
	for seed := int64(43); seed < 53; seed++ {
		c := BuildHarmony(p, seed)
		if c.Key != a.Key || c.Mood != a.Mood {
			varies = true
			break
		}
	}
	assert.True(t, varies, "different seeds should vary the harmony")
}

func TestProgressionShape(t *testing.T) {
	for _, id := range []string{"techno", "idm", "ambient", "hip-hop"} {
		p := mustProfile(t, id)
		h := BuildHarmony(p, 7)

		require.Len(t, h.Progression, p.ProgressionLen, id)
		assert.Equal(t, 0, h.Progression[0].Degree, "%s progressions start on the tonic", id)
		assert.Contains(t, p.Moods, h.Mood, id)
	}
}

func TestChordTonesInScale(t *testing.T) {
	p := mustProfile(t, "techno")

	for seed := int64(1); seed <= 25; seed++ {
		h := BuildHarmony(p, seed)
		for _, c := range h.Progression {
			for _, d := range c.Tones {
				for _, shift := range []int{-2, -1, 0, 1} {
					pitch := h.DegreePitch(d, shift)
					assert.True(t, h.InScale(pitch),
						"seed %d chord %s tone %d pitch %d leaves the scale", seed, c.Name, d, pitch)
				}
			}
		}
	}
}

func TestChordAtCycles(t *testing.T) {
	p := mustProfile(t, "techno") // 4 chords, 2 measures each
	h := BuildHarmony(p, 3)

	assert.Equal(t, h.Progression[0], h.ChordAt(0))
	assert.Equal(t, h.Progression[0], h.ChordAt(1))
	assert.Equal(t, h.Progression[1], h.ChordAt(2))
	assert.Equal(t, h.Progression[0], h.ChordAt(8), "progression cycles after len*measuresPerChord")
	assert.Equal(t, h.Progression[0], h.ChordAt(-5), "negative measures clamp to the start")
}

func TestDegreePitchOctaves(t *testing.T) {
	p := mustProfile(t, "techno")
	h := BuildHarmony(p, 3)

	root := h.DegreePitch(0, 0)
	assert.Equal(t, int(root), h.Root)

	assert.Equal(t, int(root)+12, int(h.DegreePitch(7, 0)), "degree 7 is the next octave")
	assert.Equal(t, int(root)-12, int(h.DegreePitch(-7, 0)))
	assert.Equal(t, int(root)-24, int(h.DegreePitch(0, -2)))

	// Negative degrees map into the octave below.
	assert.Equal(t, int(root)-5, int(h.DegreePitch(-3, 0)), "degree -3 is the fourth below")
}

func TestInScale(t *testing.T) {
	p := mustProfile(t, "techno")
	h := BuildHarmony(p, 3)

	root := h.Root
	assert.True(t, h.InScale(uint8(root)))
	assert.True(t, h.InScale(uint8(root+3)), "minor third")
	assert.True(t, h.InScale(uint8(root+7)), "fifth")
	assert.False(t, h.InScale(uint8(root+1)), "flat second is chromatic")
	assert.False(t, h.InScale(uint8(root+4)), "major third is chromatic")
}
