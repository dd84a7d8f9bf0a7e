package track

import (
	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/rng"
	"github.com/yrbane/acidgrid/song"
	"github.com/yrbane/acidgrid/style"
)

// Lead melody styles, one held per section.
var leadStyles = []string{"flowing", "staccato", "sustained", "rapid"}

// Lead generates the top-line melody. A melody style is chosen per
// section; strong beats snap to chord tones so the line never fights
// the harmony underneath.
type Lead struct {
	lastStyle string
}

// NewLead returns a lead generator.
func NewLead() *Lead { return &Lead{} }

func (g *Lead) Name() string { return "lead" }

func (g *Lead) Generate(sec song.Section, h *song.Harmony, p *style.Profile, rs *rng.Stream) ([]music.NoteEvent, error) {
	if err := checkSection(sec); err != nil {
		return nil, err
	}

	melody := g.chooseStyle(sec, rs)
	g.lastStyle = melody

	// Where the line wanders, as a scale degree above the key root.
	degree := rs.Range(2, 6)

	var events []music.NoteEvent
	for m := 0; m < sec.Length; m++ {
		intensity := sec.IntensityAt(m)
		abs := sec.Start + m

		// Trade phrases with the accompaniment in the energy sections,
		// play probabilistically elsewhere.
		if sec.Type == music.SectionBuildup || sec.Type == music.SectionDrop {
			if !callMeasure(abs) {
				continue
			}
		} else if !rs.Chance(leadPresence(intensity)) {
			continue
		}

		chord := h.ChordAt(abs)

		var me []music.NoteEvent
		switch melody {
		case "flowing":
			me, degree = flowingLine(h, chord, m, degree, intensity, rs)
		case "staccato":
			me = staccatoStabs(h, chord, m, intensity, rs)
		case "sustained":
			me = sustainedLead(h, chord, m, intensity, rs)
		case "rapid":
			me = rapidRun(h, m, intensity, rs)
		}
		events = append(events, me...)
	}
	return events, nil
}

// chooseStyle weights melody styles by section role and avoids playing
// the previous section's style twice in a row.
func (g *Lead) chooseStyle(sec song.Section, rs *rng.Stream) string {
	var weights []float64
	switch sec.Type {
	case music.SectionIntro, music.SectionBreakdown:
		weights = []float64{0.4, 0.3, 0.3, 0.0}
	case music.SectionOutro:
		weights = []float64{0.5, 0.2, 0.3, 0.0}
	default:
		weights = []float64{0.3, 0.3, 0.2, 0.2}
	}

	options := make([]string, 0, len(leadStyles))
	w := make([]float64, 0, len(weights))
	for i, s := range leadStyles {
		if s == g.lastStyle && weights[i] < 1 {
			continue
		}
		options = append(options, s)
		w = append(w, weights[i])
	}
	if len(options) == 0 {
		return rs.Pick(leadStyles)
	}
	return rs.Weighted(options, w)
}

func leadPresence(intensity float64) float64 {
	switch {
	case intensity < 0.3:
		return 0.2
	case intensity < 0.5:
		return 0.4
	case intensity < 0.7:
		return 0.6
	case intensity < 0.9:
		return 0.8
	default:
		return 0.9
	}
}

// flowingLine walks the scale in small intervals, landing on a chord
// tone at the start of each measure. Returns the degree it ended on so
// the next measure continues the contour.
var flowRhythms = [][]int{
	{0, 2, 6, 10, 12}, // syncopated
	{0, 4, 8, 12},     // on the beat
	{2, 4, 10, 14},    // off-beat
}

func flowingLine(h *song.Harmony, chord song.Chord, m, degree int, intensity float64, rs *rng.Stream) ([]music.NoteEvent, int) {
	rhythm := flowRhythms[rs.IntN(len(flowRhythms))]

	var events []music.NoteEvent
	for i, step := range rhythm {
		if !rs.Chance(0.8) {
			continue
		}
		if i == 0 {
			degree = nearestChordTone(chord, degree)
		} else {
			moves := []string{"-2", "-1", "0", "+1", "+2"}
			weights := []float64{0.1, 0.3, 0.2, 0.3, 0.1}
			switch rs.Weighted(moves, weights) {
			case "-2":
				degree -= 2
			case "-1":
				degree--
			case "+1":
				degree++
			case "+2":
				degree += 2
			}
			degree = clampRange(degree, 0, 9)
		}
		dur := int64(music.TicksPerStep * 3)
		if i+1 < len(rhythm) {
			dur = int64(rhythm[i+1]-step)*music.TicksPerStep - 20
		}
		events = append(events, leadNote(h, degree, stepTick(m, step), dur, rs.Range(95, 125)))
	}
	return events, degree
}

// staccatoStabs places short accented hits on syncopated positions.
func staccatoStabs(h *song.Harmony, chord song.Chord, m int, intensity float64, rs *rng.Stream) []music.NoteEvent {
	var events []music.NoteEvent
	for _, step := range [3]int{3, 9, 14} {
		if !rs.Chance(0.7) {
			continue
		}
		degree := nearestChordTone(chord, rs.Range(3, 6))
		events = append(events, leadNote(h, degree, stepTick(m, step), music.TicksPerStep/2, rs.Range(105, 127)))
	}
	return events
}

func sustainedLead(h *song.Harmony, chord song.Chord, m int, intensity float64, rs *rng.Stream) []music.NoteEvent {
	var events []music.NoteEvent
	if rs.Chance(0.6) {
		degree := nearestChordTone(chord, rs.Range(4, 7))
		events = append(events, leadNote(h, degree, stepTick(m, 0), music.TicksPerMeasure-music.TicksPerStep, rs.Range(75, 100)))
	}
	if rs.Chance(0.3) {
		events = append(events, leadNote(h, rs.Range(6, 9), stepTick(m, 4), music.TicksPerBeat*2, rs.Range(55, 80)))
	}
	return events
}

// rapidRun fires a six-note 16th scale run up or down from beat 1 or 3.
func rapidRun(h *song.Harmony, m int, intensity float64, rs *rng.Stream) []music.NoteEvent {
	start := 0
	if rs.Chance(0.5) {
		start = 8
	}
	from := rs.Range(0, 4)
	dir := 1
	if rs.Chance(0.5) {
		from += 5
		dir = -1
	}

	var events []music.NoteEvent
	for i := 0; i < 6; i++ {
		events = append(events, leadNote(h, from+dir*i, stepTick(m, start+i), music.TicksPerStep-20, rs.Range(85, 110)))
	}
	return events
}

// nearestChordTone pulls a degree onto the closest tone of the chord,
// respecting the octave the degree sits in.
func nearestChordTone(c song.Chord, degree int) int {
	best := c.Tones[0]
	bestDist := 1 << 30
	for _, t := range c.Tones {
		for _, cand := range [3]int{t - 7, t, t + 7} {
			d := cand - degree
			if d < 0 {
				d = -d
			}
			if d < bestDist && cand >= 0 {
				best = cand
				bestDist = d
			}
		}
	}
	return best
}

func leadNote(h *song.Harmony, degree int, at, dur int64, vel int) music.NoteEvent {
	return music.NoteEvent{
		Track:    music.TrackLead,
		Channel:  music.TrackLead.Channel(),
		Pitch:    h.DegreePitch(degree, 0),
		Velocity: music.ClampVelocity(vel),
		Start:    at,
		Duration: dur,
	}
}
