package song

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/style"
)

func mustProfile(t *testing.T, id string) *style.Profile {
	t.Helper()
	p, err := style.ProfileFor(id)
	require.NoError(t, err)
	return p
}

func TestBuildSectionsConservesMeasures(t *testing.T) {
	p := mustProfile(t, "techno")

	for _, measures := range []int{1, 7, 8, 64, 128, 192, 1000} {
		sections, err := BuildSections(p, measures, 42)
		require.NoError(t, err, "measures=%d", measures)

		total := 0
		prevEnd := 0
		for _, s := range sections {
			assert.Equal(t, prevEnd, s.Start, "sections must be contiguous")
			assert.Greater(t, s.Length, 0)
			total += s.Length
			prevEnd = s.End()
		}
		assert.Equal(t, measures, total, "measures=%d", measures)
	}
}

func TestBuildSectionsInvalidCount(t *testing.T) {
	p := mustProfile(t, "house")

	for _, measures := range []int{0, -1, -64} {
		_, err := BuildSections(p, measures, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidMeasureCount)
	}
}

func TestBuildSectionsDeterministic(t *testing.T) {
	p := mustProfile(t, "jungle")

	a, err := BuildSections(p, 128, 99)
	require.NoError(t, err)
	b, err := BuildSections(p, 128, 99)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestIntensityBounds(t *testing.T) {
	for _, id := range style.IDs() {
		p := mustProfile(t, id)
		sections, err := BuildSections(p, 96, 7)
		require.NoError(t, err)

		for _, s := range sections {
			for m := 0; m < s.Length; m++ {
				v := s.IntensityAt(m)
				assert.GreaterOrEqual(t, v, 0.2, "%s %s", id, s.Type)
				assert.LessOrEqual(t, v, 1.0, "%s %s", id, s.Type)
			}
		}
	}
}

func TestBuildupRampsUp(t *testing.T) {
	p := mustProfile(t, "techno")
	sections, err := BuildSections(p, 128, 13)
	require.NoError(t, err)

	for _, s := range sections {
		switch s.Type {
		case music.SectionBuildup:
			assert.Greater(t, s.EndIntensity, s.Intensity, "buildups ramp up")
		case music.SectionOutro:
			assert.Less(t, s.EndIntensity, s.Intensity, "outros decay")
		case music.SectionDrop:
			assert.GreaterOrEqual(t, s.Intensity, 0.9)
		}
	}
}

func TestBuildupBelowDrop(t *testing.T) {
	p := mustProfile(t, "techno")
	sections, err := BuildSections(p, 128, 4)
	require.NoError(t, err)

	var buildupStart, dropPeak float64
	for _, s := range sections {
		if s.Type == music.SectionBuildup && buildupStart == 0 {
			buildupStart = s.Intensity
		}
		if s.Type == music.SectionDrop && dropPeak == 0 {
			dropPeak = s.EndIntensity
		}
	}
	require.NotZero(t, buildupStart)
	require.NotZero(t, dropPeak)
	assert.Less(t, buildupStart, dropPeak)
}

func TestFillsMarkTransitions(t *testing.T) {
	p := mustProfile(t, "house")
	sections, err := BuildSections(p, 128, 21)
	require.NoError(t, err)

	for i, s := range sections {
		if i+1 < len(sections) {
			wantFill := sections[i+1].Type != s.Type
			assert.Equal(t, wantFill, s.HasFill, "section %d", i)
		} else {
			assert.False(t, s.HasFill, "last section never fills")
		}
	}
}

func TestDropsNeverBreak(t *testing.T) {
	for _, id := range style.IDs() {
		p := mustProfile(t, id)
		sections, err := BuildSections(p, 256, 5)
		require.NoError(t, err)
		for _, s := range sections {
			if s.Type == music.SectionDrop {
				assert.False(t, s.IsBreak, "%s drop at %d", id, s.Start)
			}
		}
	}
}

func TestTinySongTruncatesTemplate(t *testing.T) {
	p := mustProfile(t, "techno")
	sections, err := BuildSections(p, 3, 1)
	require.NoError(t, err)
	assert.Len(t, sections, 3)
	for _, s := range sections {
		assert.Equal(t, 1, s.Length)
	}
}
