// Package engine assembles complete arrangements: it builds the song
// skeleton, runs the five track generators over every section and
// merges their output onto absolute timelines.
package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/rng"
	"github.com/yrbane/acidgrid/song"
	"github.com/yrbane/acidgrid/style"
	"github.com/yrbane/acidgrid/track"
)

// Timeline is one instrument's notes in absolute ticks, sorted by start.
type Timeline []music.NoteEvent

// Arrangement is a fully generated piece, ready for export.
type Arrangement struct {
	Style    string
	Tempo    int
	Measures int
	Seed     int64

	// TempoWarning is set when the requested tempo falls outside the
	// style's authentic range. Generation still proceeds.
	TempoWarning string

	Sections  []song.Section
	Harmony   *song.Harmony
	Timelines [music.NumTracks]Timeline

	TotalTicks int64
}

// Request carries the generation parameters. Zero values fall back to
// style defaults (Tempo) or a time-derived seed (Seed).
type Request struct {
	Style    string
	Measures int
	Tempo    int
	Seed     int64
}

// Compose generates a full arrangement. The same request with the same
// non-zero seed always yields the same arrangement.
func Compose(req Request) (*Arrangement, error) {
	p, err := style.ProfileFor(req.Style)
	if err != nil {
		return nil, err
	}

	tempo := req.Tempo
	if tempo <= 0 {
		tempo = p.TempoDefault
	}
	var warning string
	if !p.TempoInRange(tempo) {
		_, warning, _ = style.ValidateTempo(req.Style, tempo)
	}

	seed := req.Seed
	if seed <= 0 {
		seed = time.Now().UnixMicro()
	}

	sections, err := song.BuildSections(p, req.Measures, seed)
	if err != nil {
		return nil, err
	}
	harmony := song.BuildHarmony(p, seed)

	arr := &Arrangement{
		Style:        req.Style,
		Tempo:        tempo,
		Measures:     req.Measures,
		Seed:         seed,
		TempoWarning: warning,
		Sections:     sections,
		Harmony:      harmony,
		TotalTicks:   int64(req.Measures) * music.TicksPerMeasure,
	}

	generators := [music.NumTracks]track.Generator{
		track.NewRhythm(),
		track.NewBassline(),
		track.NewSubBass(),
		track.NewAccomp(),
		track.NewLead(),
	}

	for i, gen := range generators {
		rs := rng.Derive(seed, gen.Name())
		var tl Timeline
		for _, sec := range sections {
			events, err := gen.Generate(sec, harmony, p, rs)
			if err != nil {
				return nil, fmt.Errorf("generate %s section %d: %w", gen.Name(), sec.Index, err)
			}
			offset := int64(sec.Start) * music.TicksPerMeasure
			for _, e := range events {
				e.Start += offset
				tl = append(tl, e)
			}
		}
		sort.SliceStable(tl, func(a, b int) bool { return tl[a].Start < tl[b].Start })
		arr.Timelines[i] = tl
	}

	alignSubBass(arr)
	return arr, nil
}

// alignSubBass snaps sub-bass onsets that land inside a sounding
// bassline note to that note's release, so the two bass layers never
// smear the low end.
func alignSubBass(arr *Arrangement) {
	bass := arr.Timelines[music.TrackBassline]
	sub := arr.Timelines[music.TrackSubBass]
	if len(bass) == 0 || len(sub) == 0 {
		return
	}

	out := make(Timeline, 0, len(sub))
	for _, e := range sub {
		// Slid bass notes overlap their successor, so one snap can land
		// inside the next note; repeat until the onset is clear.
		for iter := 0; iter < 4; iter++ {
			onset := e.Start
			j := sort.Search(len(bass), func(k int) bool { return bass[k].Start > onset })
			snapped := false
			for k := j - 1; k >= 0 && k >= j-8; k-- {
				n := bass[k]
				if onset > n.Start && onset < n.End() {
					shift := n.End() - onset
					e.Start = n.End()
					e.Duration -= shift
					snapped = true
					break
				}
			}
			if !snapped {
				break
			}
		}
		// Notes squeezed to nothing or pushed past the end are dropped.
		if e.Duration > 0 && e.Start < arr.TotalTicks {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Start < out[b].Start })
	arr.Timelines[music.TrackSubBass] = out
}

// Duration returns the arrangement length at its tempo.
func (a *Arrangement) Duration() time.Duration {
	beats := float64(a.TotalTicks) / music.TicksPerBeat
	return time.Duration(beats * 60 / float64(a.Tempo) * float64(time.Second))
}

// EventCount returns the total notes across all timelines.
func (a *Arrangement) EventCount() int {
	n := 0
	for _, tl := range a.Timelines {
		n += len(tl)
	}
	return n
}
