package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/rng"
	"github.com/yrbane/acidgrid/song"
	"github.com/yrbane/acidgrid/style"
)

func testContext(t *testing.T, styleID string, seed int64) (*style.Profile, []song.Section, *song.Harmony) {
	t.Helper()
	p, err := style.ProfileFor(styleID)
	require.NoError(t, err)
	sections, err := song.BuildSections(p, 64, seed)
	require.NoError(t, err)
	return p, sections, song.BuildHarmony(p, seed)
}

func findSection(sections []song.Section, typ music.SectionType) (song.Section, bool) {
	for _, s := range sections {
		if s.Type == typ {
			return s, true
		}
	}
	return song.Section{}, false
}

func TestGeneratorsRejectEmptySection(t *testing.T) {
	p, _, h := testContext(t, "techno", 1)
	bad := song.Section{Index: 0, Type: music.SectionDrop, Length: 0}

	gens := []Generator{NewRhythm(), NewBassline(), NewSubBass(), NewAccomp(), NewLead()}
	for _, g := range gens {
		rs := rng.Derive(1, g.Name())
		_, err := g.Generate(bad, h, p, rs)
		require.Error(t, err, g.Name())
		assert.ErrorIs(t, err, ErrInvalidSection, g.Name())
	}
}

func TestRhythmDropNotEmpty(t *testing.T) {
	p, sections, h := testContext(t, "techno", 5)
	drop, ok := findSection(sections, music.SectionDrop)
	require.True(t, ok)

	events, err := NewRhythm().Generate(drop, h, p, rng.Derive(5, "rhythm"))
	require.NoError(t, err)
	require.NotEmpty(t, events)

	// Drops anchor a kick on every beat of every measure.
	kicks := map[int64]bool{}
	for _, e := range events {
		assert.Equal(t, music.TrackRhythm, e.Track)
		assert.Equal(t, uint8(9), e.Channel)
		if e.Pitch == drumKick {
			kicks[e.Start] = true
		}
	}
	for m := 0; m < drop.Length; m++ {
		for beat := 0; beat < music.BeatsPerMeasure; beat++ {
			at := int64(m)*music.TicksPerMeasure + int64(beat)*music.TicksPerBeat
			assert.True(t, kicks[at], "missing drop kick at measure %d beat %d", m, beat)
		}
	}
}

func TestRhythmBreakThinsToKick(t *testing.T) {
	p, _, h := testContext(t, "techno", 5)
	brk := song.Section{
		Index: 2, Type: music.SectionVerse, Start: 16, Length: 2,
		Intensity: 0.6, EndIntensity: 0.6, IsBreak: true,
	}

	events, err := NewRhythm().Generate(brk, h, p, rng.Derive(5, "rhythm"))
	require.NoError(t, err)
	for _, e := range events {
		assert.Equal(t, uint8(drumKick), e.Pitch, "breaks keep only the kick")
	}
}

func TestRhythmAvoidsImmediateRepeat(t *testing.T) {
	p, sections, _ := testContext(t, "techno", 9)
	drop, ok := findSection(sections, music.SectionDrop)
	require.True(t, ok)
	require.Greater(t, drop.Length, 1)

	g := NewRhythm()
	rs := rng.Derive(9, "rhythm")
	prev := ""
	for m := 0; m < 20; m++ {
		name := g.choosePattern(drop, 0.9, p, rs)
		if prev != "" {
			assert.NotEqual(t, prev, name, "measure %d repeated pattern", m)
		}
		g.lastPattern = name
		prev = name
	}
}

func TestBasslineAvoidsImmediateRepeat(t *testing.T) {
	p, sections, _ := testContext(t, "techno", 9)
	drop, ok := findSection(sections, music.SectionDrop)
	require.True(t, ok)

	g := NewBassline()
	rs := rng.Derive(9, "bassline")
	prev := ""
	for i := 0; i < 20; i++ {
		name := g.chooseRiff(drop, 0.9, p, rs)
		if prev != "" {
			assert.NotEqual(t, prev, name, "choice %d repeated riff", i)
		}
		g.lastRiff = name
		prev = name
	}
}

func TestLeadAvoidsImmediateRepeat(t *testing.T) {
	_, sections, _ := testContext(t, "techno", 9)
	drop, ok := findSection(sections, music.SectionDrop)
	require.True(t, ok)

	g := NewLead()
	rs := rng.Derive(9, "lead")
	prev := ""
	for i := 0; i < 20; i++ {
		name := g.chooseStyle(drop, rs)
		if prev != "" {
			assert.NotEqual(t, prev, name, "choice %d repeated melody style", i)
		}
		g.lastStyle = name
		prev = name
	}
}

func TestBasslineStaysInScale(t *testing.T) {
	for _, id := range []string{"techno", "house", "jungle"} {
		p, sections, h := testContext(t, id, 11)
		g := NewBassline()
		rs := rng.Derive(11, "bassline")

		for _, sec := range sections {
			events, err := g.Generate(sec, h, p, rs)
			require.NoError(t, err)
			for _, e := range events {
				assert.True(t, h.InScale(e.Pitch),
					"%s %s measure-range pitch %d outside scale", id, sec.Type, e.Pitch)
				assert.GreaterOrEqual(t, e.Velocity, uint8(30))
			}
		}
	}
}

func TestBasslineSlideOverlap(t *testing.T) {
	p, sections, h := testContext(t, "techno", 2)
	g := NewBassline()
	rs := rng.Derive(2, "bassline")

	overlap := false
	for _, sec := range sections {
		events, err := g.Generate(sec, h, p, rs)
		require.NoError(t, err)
		for i := 1; i < len(events); i++ {
			if events[i-1].End() > events[i].Start {
				overlap = true
			}
		}
	}
	assert.True(t, overlap, "slides should produce at least one glide overlap across a full song")
}

func TestSubBassSilentOnBreaks(t *testing.T) {
	p, _, h := testContext(t, "techno", 3)
	brk := song.Section{
		Index: 1, Type: music.SectionVerse, Start: 8, Length: 4,
		Intensity: 0.6, EndIntensity: 0.6, IsBreak: true,
	}

	events, err := NewSubBass().Generate(brk, h, p, rng.Derive(3, "subbass"))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSubBassRegisterAndScale(t *testing.T) {
	p, sections, h := testContext(t, "techno", 3)
	g := NewSubBass()
	rs := rng.Derive(3, "subbass")

	for _, sec := range sections {
		events, err := g.Generate(sec, h, p, rs)
		require.NoError(t, err)
		for _, e := range events {
			assert.True(t, h.InScale(e.Pitch))
			assert.Less(t, e.Pitch, uint8(50), "sub-bass lives in the bottom octaves")
			assert.Greater(t, e.Duration, int64(0))
		}
	}
}

func TestAccompChordTonesInScale(t *testing.T) {
	p, sections, h := testContext(t, "house", 17)
	g := NewAccomp()
	rs := rng.Derive(17, "accomp")

	total := 0
	for _, sec := range sections {
		events, err := g.Generate(sec, h, p, rs)
		require.NoError(t, err)
		total += len(events)
		for _, e := range events {
			assert.True(t, h.InScale(e.Pitch), "accomp pitch %d outside scale", e.Pitch)
		}
	}
	assert.Greater(t, total, 0)
}

func TestLeadStaysInScale(t *testing.T) {
	p, sections, h := testContext(t, "techno", 23)
	g := NewLead()
	rs := rng.Derive(23, "lead")

	total := 0
	for _, sec := range sections {
		events, err := g.Generate(sec, h, p, rs)
		require.NoError(t, err)
		total += len(events)
		for _, e := range events {
			assert.True(t, h.InScale(e.Pitch), "lead pitch %d outside scale", e.Pitch)
			assert.Equal(t, uint8(3), e.Channel)
		}
	}
	assert.Greater(t, total, 0, "a 64 measure techno song should have some lead")
}

func TestLeadCallResponse(t *testing.T) {
	p, sections, h := testContext(t, "techno", 31)
	drop, ok := findSection(sections, music.SectionDrop)
	require.True(t, ok)

	events, err := NewLead().Generate(drop, h, p, rng.Derive(31, "lead"))
	require.NoError(t, err)

	for _, e := range events {
		local := int(e.Start / music.TicksPerMeasure)
		abs := drop.Start + local
		assert.True(t, callMeasure(abs), "lead played outside its call measures at %d", abs)
	}
}

func TestRiffLibraryComplete(t *testing.T) {
	assert.Len(t, riffLibrary, 10)
	for _, name := range riffNames {
		_, ok := riffLibrary[name]
		assert.True(t, ok, name)
	}

	// Every style's preferred riffs and patterns must exist.
	for _, id := range style.IDs() {
		p, err := style.ProfileFor(id)
		require.NoError(t, err)
		for _, r := range p.BasslineRiffs {
			_, ok := riffLibrary[r]
			assert.True(t, ok, "%s references unknown riff %s", id, r)
		}
		for _, pat := range p.RhythmPatterns {
			_, ok := drumPatterns[pat]
			assert.True(t, ok, "%s references unknown pattern %s", id, pat)
		}
	}
}

func TestDrumTablesConsistent(t *testing.T) {
	for name, pattern := range drumPatterns {
		for voice := range pattern {
			_, ok := drumNotes[voice]
			assert.True(t, ok, "pattern %s uses unmapped voice %s", name, voice)
			_, ok = baseVelocity[voice]
			assert.True(t, ok, "pattern %s voice %s has no base velocity", name, voice)
		}
	}
	for name := range percussionLayers {
		_, ok := drumNotes[name]
		assert.True(t, ok, "layer %s has no drum note", name)
	}
}
