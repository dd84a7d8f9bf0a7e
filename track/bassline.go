package track

import (
	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/rng"
	"github.com/yrbane/acidgrid/song"
	"github.com/yrbane/acidgrid/style"
)

// bassOctave places the bassline two octaves below the key root.
const bassOctave = -2

// Bassline generates the main bass riff. A riff archetype is held for
// eight measures, then re-chosen; degrees are transposed by the active
// chord so the line follows the progression.
type Bassline struct {
	current   string
	lastRiff  string
	holdCount int
}

// NewBassline returns a bass generator.
func NewBassline() *Bassline { return &Bassline{} }

func (g *Bassline) Name() string { return "bassline" }

func (g *Bassline) Generate(sec song.Section, h *song.Harmony, p *style.Profile, rs *rng.Stream) ([]music.NoteEvent, error) {
	if err := checkSection(sec); err != nil {
		return nil, err
	}

	var events []music.NoteEvent
	for m := 0; m < sec.Length; m++ {
		intensity := sec.IntensityAt(m)

		if g.current == "" || g.holdCount%8 == 0 {
			g.current = g.chooseRiff(sec, intensity, p, rs)
			g.lastRiff = g.current
		}
		g.holdCount++

		r := riffLibrary[g.current]
		varied := varyRiff(r, intensity, rs)

		chord := h.ChordAt(sec.Start + m)

		for step := 0; step < music.StepsPerMeasure; step++ {
			if varied.Steps[step] == 0 {
				continue
			}
			pitch := h.DegreePitch(chord.Degree+varied.Degrees[step], bassOctave)
			at := stepTick(m, step) + swingOffset(step, p.Swing)
			dur := int64(music.TicksPerStep) - 10

			// A slide target extends the previous note into this one
			// so a mono synth glides instead of retriggering.
			if varied.Slides[step] == 1 && len(events) > 0 {
				prev := &events[len(events)-1]
				if prev.End() <= at {
					prev.Duration = at - prev.Start + music.TicksPerStep/2
				}
			}

			events = append(events, music.NoteEvent{
				Track:    music.TrackBassline,
				Channel:  music.TrackBassline.Channel(),
				Pitch:    pitch,
				Velocity: bassVelocity(step, intensity, rs),
				Start:    at,
				Duration: dur,
			})
		}
	}
	return events, nil
}

// chooseRiff picks a riff for the coming phrase, biased by section
// role and filtered to the style's preferred set.
func (g *Bassline) chooseRiff(sec song.Section, intensity float64, p *style.Profile, rs *rng.Stream) string {
	preferred := p.BasslineRiffs
	if len(preferred) == 0 {
		preferred = riffNames
	}

	var options []string
	switch {
	case sec.Type == music.SectionIntro || intensity < 0.3:
		options = intersect(preferred, []string{"berlin_minimal", "sub_pressure", "hypnotic_loop"})
	case sec.Type == music.SectionBuildup && intensity < 0.6:
		options = intersect(preferred, []string{"hypnotic_loop", "warehouse_stomp", "detroit_funk"})
	case sec.Type == music.SectionBuildup:
		options = intersect(preferred, []string{"rolling_thunder", "techno_gallop", "uk_rave", "acid_303"})
	case sec.Type == music.SectionBreakdown:
		options = intersect(preferred, []string{"detroit_funk", "hypnotic_loop", "berlin_minimal", "sub_pressure"})
	}
	if len(options) == 0 {
		options = preferred
	}

	return rs.Pick(filterStrings(options, g.lastRiff))
}

// varyRiff applies one variation per measure so a held riff never
// plays identically eight times in a row.
func varyRiff(r riff, intensity float64, rs *rng.Stream) riff {
	v := r
	switch rs.IntN(5) {
	case 0: // as written
	case 1: // octave jumps
		for i := range v.Degrees {
			if v.Steps[i] == 1 && rs.Chance(0.2) {
				if rs.Chance(0.5) {
					v.Degrees[i] += 7
				} else {
					v.Degrees[i] -= 7
				}
			}
		}
	case 2: // thin out
		for i := range v.Steps {
			if rs.Chance(0.1) {
				v.Steps[i] = 0
			}
		}
	case 3: // extra pushes at high intensity
		if intensity > 0.7 {
			for i := 0; i < music.StepsPerMeasure; i += 2 {
				if v.Steps[i] == 0 && rs.Chance(0.3) {
					v.Steps[i] = 1
					if i > 0 {
						v.Degrees[i] = v.Degrees[i-1] + rs.Range(1, 3)
					}
				}
			}
		}
	case 4: // rotate one step for syncopation
		if rs.Chance(0.5) {
			last := music.StepsPerMeasure - 1
			s, d := v.Steps[last], v.Degrees[last]
			copy(v.Steps[1:], r.Steps[:last])
			copy(v.Degrees[1:], r.Degrees[:last])
			v.Steps[0], v.Degrees[0] = s, d
		}
	}

	if intensity < 0.4 {
		for i := range v.Steps {
			if rs.Chance(0.3) {
				v.Steps[i] = 0
			}
		}
	} else if intensity > 0.9 {
		extras := [4]int{0, 2, 3, 4}
		for i := range v.Steps {
			if v.Steps[i] == 0 && rs.Chance(0.2) {
				v.Steps[i] = 1
				v.Degrees[i] = extras[rs.IntN(len(extras))]
			}
		}
	}
	return v
}

func bassVelocity(step int, intensity float64, rs *rng.Stream) uint8 {
	base := 80.0
	switch {
	case step%4 == 0:
		base *= 1.1
	case step%2 == 0:
		base *= 0.9
	default:
		base *= 0.8
	}
	v := int(base*(0.7+intensity*0.3)) + rs.Jitter(5)
	if v < 30 {
		v = 30
	}
	return music.ClampVelocity(v)
}
