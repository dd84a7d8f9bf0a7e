package track

import (
	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/rng"
	"github.com/yrbane/acidgrid/song"
	"github.com/yrbane/acidgrid/style"
)

// Accomp generates the harmonic bed: block chords, stabs or arpeggios
// built from the active chord's tones, with optional enrichment. How
// busy it gets follows intensity scaled by the style's synth density.
type Accomp struct{}

// NewAccomp returns an accompaniment generator.
func NewAccomp() *Accomp { return &Accomp{} }

func (g *Accomp) Name() string { return "accomp" }

func (g *Accomp) Generate(sec song.Section, h *song.Harmony, p *style.Profile, rs *rng.Stream) ([]music.NoteEvent, error) {
	if err := checkSection(sec); err != nil {
		return nil, err
	}

	var events []music.NoteEvent
	for m := 0; m < sec.Length; m++ {
		intensity := sec.IntensityAt(m)
		density := intensity * p.SynthDensity
		abs := sec.Start + m

		// In the high-energy sections lead and accompaniment trade
		// two-measure phrases; the accompaniment thins during the
		// lead's call.
		if callMeasure(abs) && (sec.Type == music.SectionBuildup || sec.Type == music.SectionDrop) {
			density *= 0.5
		}

		chord := h.ChordAt(abs)
		tones := enrich(chord, rs)

		var me []music.NoteEvent
		if rs.Chance(p.ChordBlockBias) {
			if rs.Chance(0.55) {
				me = sustainedChord(h, tones, m, density, rs)
			} else {
				me = stabChord(h, tones, m, density, rs)
			}
		} else {
			if rs.Chance(0.75) {
				me = arpeggio(h, tones, m, density, p.Swing, rs)
			} else {
				me = filteredPulse(h, tones, m, density, rs)
			}
		}
		events = append(events, me...)
	}
	return events, nil
}

// callMeasure says whether an absolute measure belongs to the lead's
// half of the two-measure call/response cycle. The lead generator uses
// the same convention, so the two stay interlocked without sharing
// state.
func callMeasure(abs int) bool {
	return (abs/2)%2 == 0
}

// enrich widens the chord's stacked thirds: sevenths, ninths and sus
// voicings, weighted toward plain triads.
func enrich(c song.Chord, rs *rng.Stream) []int {
	tones := append([]int(nil), c.Tones...)
	kinds := []string{"triad", "7th", "9th", "sus2", "sus4", "add9"}
	weights := []float64{0.3, 0.25, 0.15, 0.1, 0.1, 0.1}
	switch rs.Weighted(kinds, weights) {
	case "7th":
		tones = append(tones, c.Degree+6)
	case "9th":
		tones = append(tones, c.Degree+6, c.Degree+8)
	case "sus2":
		tones[1] = c.Degree + 1
	case "sus4":
		tones[1] = c.Degree + 3
	case "add9":
		tones = append(tones, c.Degree+8)
	}
	return tones
}

func sustainedChord(h *song.Harmony, tones []int, m int, density float64, rs *rng.Stream) []music.NoteEvent {
	if !rs.Chance(0.3 + density*0.5) {
		return nil
	}
	vel := rs.Range(30, 50)
	events := make([]music.NoteEvent, 0, len(tones))
	for _, d := range tones {
		events = append(events, accompNote(h, d, stepTick(m, 0), music.TicksPerMeasure-music.TicksPerStep, vel+rs.Jitter(4)))
	}
	return events
}

// stabChord hits the chord on the off-beats between 1-2 and 3-4.
func stabChord(h *song.Harmony, tones []int, m int, density float64, rs *rng.Stream) []music.NoteEvent {
	var events []music.NoteEvent
	for _, step := range [2]int{2, 10} {
		if !rs.Chance(0.4 + density*0.5) {
			continue
		}
		vel := rs.Range(40, 65)
		for _, d := range tones {
			events = append(events, accompNote(h, d, stepTick(m, step), music.TicksPerStep*2, vel+rs.Jitter(4)))
		}
	}
	return events
}

var arpShapes = []string{"up", "down", "pingpong", "broken", "syncopated"}

// arpeggio runs the chord as 16ths in one of several shapes.
func arpeggio(h *song.Harmony, tones []int, m int, density float64, swing float64, rs *rng.Stream) []music.NoteEvent {
	order := arpOrder(tones, rs.Pick(arpShapes))

	gate := 0.4 + density*0.5
	var events []music.NoteEvent
	for step := 0; step < music.StepsPerMeasure; step++ {
		if !rs.Chance(gate) {
			continue
		}
		d := order[step%len(order)]
		at := stepTick(m, step) + swingOffset(step, swing)
		events = append(events, accompNote(h, d, at, music.TicksPerStep-20, rs.Range(30, 55)))
	}
	return events
}

func arpOrder(tones []int, shape string) []int {
	up := append(append([]int(nil), tones...), tones[0]+7)
	switch shape {
	case "down":
		down := make([]int, len(up))
		for i, d := range up {
			down[len(up)-1-i] = d
		}
		return down
	case "pingpong":
		out := append([]int(nil), up...)
		for i := len(tones) - 1; i > 0; i-- {
			out = append(out, tones[i])
		}
		return out
	case "broken":
		if len(tones) >= 3 {
			return []int{tones[0], tones[2], tones[1], tones[2]}
		}
		return up
	case "syncopated":
		return up
	default: // up
		return up
	}
}

// filteredPulse plays eighth notes with a velocity sweep, standing in
// for a filter opening and closing.
func filteredPulse(h *song.Harmony, tones []int, m int, density float64, rs *rng.Stream) []music.NoteEvent {
	var events []music.NoteEvent
	for i := 0; i < 8; i++ {
		if !rs.Chance(0.4 + density*0.4) {
			continue
		}
		sweep := int(30 * abs64(0.5-float64(i)/8))
		vel := clampRange(45+sweep, 25, 65)
		d := tones[rs.IntN(len(tones))]
		events = append(events, accompNote(h, d, stepTick(m, i*2), music.TicksPerStep*2-20, vel))
	}
	return events
}

func accompNote(h *song.Harmony, degree int, at, dur int64, vel int) music.NoteEvent {
	return music.NoteEvent{
		Track:    music.TrackAccomp,
		Channel:  music.TrackAccomp.Channel(),
		Pitch:    h.DegreePitch(degree, 0),
		Velocity: music.ClampVelocity(vel),
		Start:    at,
		Duration: dur,
	}
}

func abs64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
