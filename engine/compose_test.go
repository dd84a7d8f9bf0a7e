package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/song"
	"github.com/yrbane/acidgrid/style"
)

func TestComposeDeterministic(t *testing.T) {
	req := Request{Style: "techno", Measures: 64, Tempo: 130, Seed: 42}

	a, err := Compose(req)
	require.NoError(t, err)
	b, err := Compose(req)
	require.NoError(t, err)

	assert.Equal(t, a.Sections, b.Sections)
	assert.Equal(t, a.Harmony, b.Harmony)
	for i := range a.Timelines {
		assert.Equal(t, a.Timelines[i], b.Timelines[i], "track %s diverged", music.Track(i))
	}
}

func TestComposeSeedsDiffer(t *testing.T) {
	a, err := Compose(Request{Style: "techno", Measures: 64, Seed: 1})
	require.NoError(t, err)
	b, err := Compose(Request{Style: "techno", Measures: 64, Seed: 2})
	require.NoError(t, err)

	assert.NotEqual(t, a.Timelines[music.TrackRhythm], b.Timelines[music.TrackRhythm])
}

func TestComposeMeasureConservation(t *testing.T) {
	for _, measures := range []int{1, 7, 64, 192} {
		arr, err := Compose(Request{Style: "house", Measures: measures, Seed: 9})
		require.NoError(t, err)

		total := 0
		for _, s := range arr.Sections {
			total += s.Length
		}
		assert.Equal(t, measures, total)
		assert.Equal(t, int64(measures)*music.TicksPerMeasure, arr.TotalTicks)

		for i, tl := range arr.Timelines {
			for _, e := range tl {
				assert.GreaterOrEqual(t, e.Start, int64(0), "track %d", i)
				assert.Less(t, e.Start, arr.TotalTicks, "track %d note starts past the end", i)
			}
		}
	}
}

func TestComposeTempoDefaults(t *testing.T) {
	arr, err := Compose(Request{Style: "techno", Measures: 16, Seed: 3})
	require.NoError(t, err)
	assert.Equal(t, 128, arr.Tempo)
	assert.Empty(t, arr.TempoWarning)
}

func TestComposeTempoWarning(t *testing.T) {
	arr, err := Compose(Request{Style: "techno", Measures: 16, Tempo: 90, Seed: 3})
	require.NoError(t, err)
	assert.Equal(t, 90, arr.Tempo, "generation proceeds at the requested tempo")
	assert.NotEmpty(t, arr.TempoWarning)

	ok, err := Compose(Request{Style: "techno", Measures: 16, Tempo: 130, Seed: 3})
	require.NoError(t, err)
	assert.Empty(t, ok.TempoWarning)
}

func TestComposeErrors(t *testing.T) {
	_, err := Compose(Request{Style: "dubstep", Measures: 64})
	require.Error(t, err)
	assert.ErrorIs(t, err, style.ErrUnknownStyle)

	_, err = Compose(Request{Style: "house", Measures: 0, Seed: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, song.ErrInvalidMeasureCount)

	_, err = Compose(Request{Style: "house", Measures: -8, Seed: 1})
	assert.ErrorIs(t, err, song.ErrInvalidMeasureCount)
}

func TestComposeFreshSeedWhenZero(t *testing.T) {
	arr, err := Compose(Request{Style: "ambient", Measures: 8})
	require.NoError(t, err)
	assert.NotZero(t, arr.Seed)
}

func TestAmbientSparserThanHardTekno(t *testing.T) {
	ambient, err := Compose(Request{Style: "ambient", Measures: 64, Seed: 77})
	require.NoError(t, err)
	hard, err := Compose(Request{Style: "hard-tekno", Measures: 64, Seed: 77})
	require.NoError(t, err)

	assert.Less(t, len(ambient.Timelines[music.TrackRhythm]), len(hard.Timelines[music.TrackRhythm]),
		"ambient drums should be sparser than hard tekno")
}

func TestTimelinesSorted(t *testing.T) {
	arr, err := Compose(Request{Style: "jungle", Measures: 64, Seed: 5})
	require.NoError(t, err)

	for i, tl := range arr.Timelines {
		for j := 1; j < len(tl); j++ {
			assert.LessOrEqual(t, tl[j-1].Start, tl[j].Start, "track %d unsorted at %d", i, j)
		}
	}
}

func TestSubBassNeverInsideBassNote(t *testing.T) {
	arr, err := Compose(Request{Style: "techno", Measures: 128, Seed: 13})
	require.NoError(t, err)

	bass := arr.Timelines[music.TrackBassline]
	for _, s := range arr.Timelines[music.TrackSubBass] {
		for _, b := range bass {
			if b.Start >= s.Start {
				break
			}
			assert.False(t, s.Start > b.Start && s.Start < b.End(),
				"sub onset %d inside bass note [%d,%d)", s.Start, b.Start, b.End())
		}
	}
}

func TestWriteJSON(t *testing.T) {
	arr, err := Compose(Request{Style: "trap", Measures: 16, Seed: 8})
	require.NoError(t, err)

	var buf testBuffer
	require.NoError(t, arr.WriteJSON(&buf))
	s := buf.String()
	assert.Contains(t, s, `"style": "trap"`)
	assert.Contains(t, s, `"sections"`)
	assert.Contains(t, s, `"tracks"`)
}

type testBuffer struct{ data []byte }

func (b *testBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *testBuffer) String() string { return string(b.data) }
