package track

import (
	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/rng"
	"github.com/yrbane/acidgrid/song"
	"github.com/yrbane/acidgrid/style"
)

// subOctave puts the sub-bass three octaves under the key root, at the
// bottom of the usable MIDI range.
const subOctave = -3

// subNote is one hit of a sub-bass measure pattern. Times are in 16th
// steps; Fifth raises the hit from the chord root to its fifth.
type subNote struct {
	At    int
	Dur   int
	Fifth bool
	Vel   int
}

// Long notes, little movement.
var subSimple = [][]subNote{
	{{0, 16, false, 65}},
	{{0, 8, false, 70}, {8, 8, false, 60}},
	{{0, 14, false, 65}, {15, 1, false, 50}},
	{{0, 8, false, 70}, {8, 8, true, 65}},
}

// Pumping patterns fake a sidechain duck on each beat.
var subPumping = [][]subNote{
	{{0, 3, false, 75}, {4, 3, false, 75}, {8, 3, false, 75}, {12, 3, false, 75}},
	{{0, 2, false, 85}, {3, 1, false, 45}, {4, 2, false, 75}, {8, 2, false, 80}, {11, 1, false, 50}, {12, 2, false, 70}},
	{{0, 4, false, 75}, {4, 4, false, 60}, {8, 4, false, 65}, {12, 4, false, 55}},
}

var subMovement = [][]subNote{
	{{0, 8, false, 70}, {8, 8, true, 65}},
	{{0, 4, false, 75}, {4, 2, true, 60}, {6, 2, false, 55}, {8, 8, false, 70}},
	{{0, 2, false, 85}, {2, 2, false, 50}, {8, 2, true, 75}, {10, 6, false, 60}},
	{{0, 4, false, 70}, {4, 4, true, 65}, {8, 4, false, 70}, {12, 4, true, 65}},
}

var subSparse = [][]subNote{
	{{0, 4, false, 60}},
	{{0, 2, false, 65}, {12, 4, false, 55}},
	{{0, 32, false, 50}}, // drone spilling into the next measure
}

// SubBass generates the low-end foundation: the active chord root held
// in long notes, pattern shape driven by intensity.
type SubBass struct{}

// NewSubBass returns a sub-bass generator.
func NewSubBass() *SubBass { return &SubBass{} }

func (g *SubBass) Name() string { return "subbass" }

func (g *SubBass) Generate(sec song.Section, h *song.Harmony, p *style.Profile, rs *rng.Stream) ([]music.NoteEvent, error) {
	if err := checkSection(sec); err != nil {
		return nil, err
	}

	// The sub drops out entirely on breaks to leave room for the kick.
	if sec.IsBreak {
		return nil, nil
	}

	var events []music.NoteEvent
	for m := 0; m < sec.Length; m++ {
		intensity := sec.IntensityAt(m)
		if !rs.Chance(presence(sec.Type, intensity)) {
			continue
		}

		chord := h.ChordAt(sec.Start + m)
		pattern := choosePattern(sec.Type, intensity, rs)

		for _, n := range pattern {
			degree := chord.Degree
			if n.Fifth {
				degree += 4
			}
			events = append(events, music.NoteEvent{
				Track:    music.TrackSubBass,
				Channel:  music.TrackSubBass.Channel(),
				Pitch:    h.DegreePitch(degree, subOctave),
				Velocity: music.ClampVelocity(int(float64(n.Vel)*(0.7+intensity*0.3)) + rs.Jitter(3)),
				Start:    stepTick(m, n.At),
				Duration: int64(n.Dur) * music.TicksPerStep,
			})
		}
	}
	return events, nil
}

// presence is the probability the sub plays at all in a measure.
func presence(t music.SectionType, intensity float64) float64 {
	switch t {
	case music.SectionIntro:
		return 0.3
	case music.SectionOutro, music.SectionBreakdown:
		return 0.6
	default:
		return 0.6 + intensity*0.35
	}
}

func choosePattern(t music.SectionType, intensity float64, rs *rng.Stream) []subNote {
	var pool [][]subNote
	switch {
	case t == music.SectionBreakdown || t == music.SectionOutro:
		pool = subSparse
	case intensity < 0.45:
		pool = subSimple
	case rs.Chance(0.7):
		pool = subPumping
	default:
		pool = subMovement
	}
	return pool[rs.IntN(len(pool))]
}
