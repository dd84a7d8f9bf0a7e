package song

import (
	"fmt"

	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/rng"
	"github.com/yrbane/acidgrid/style"
)

// naturalMinor is the scale used throughout: semitone offsets of the
// seven degrees inside one octave.
var naturalMinor = []int{0, 2, 3, 5, 7, 8, 10}

// keyRoot anchors each key at its bass-register MIDI root.
type keyRoot struct {
	Name   string
	Root   int // MIDI note of the tonic, mid register
	Weight float64
}

var keyTable = []keyRoot{
	{"A minor", 57, 1.0},
	{"D minor", 62, 0.8},
	{"E minor", 64, 0.8},
	{"F minor", 65, 0.6},
	{"G minor", 67, 0.6},
}

// Chord is one step of the progression, expressed in scale degrees so
// every chord tone stays inside the active scale.
type Chord struct {
	Name   string
	Degree int   // root scale degree, 0 = tonic
	Tones  []int // chord tone degrees relative to the scale (stacked thirds)
}

// degree transition tables per mood: from a degree, the candidate next
// degrees with weights. Degrees: 0=i 1=ii 2=III 3=iv 4=v 5=VI 6=VII.
var moodTransitions = map[string]map[int]map[int]float64{
	"dark": {
		0: {3: 3, 4: 2, 5: 1},
		3: {0: 3, 4: 2},
		4: {0: 3, 3: 1},
		5: {0: 2, 3: 1},
	},
	"uplifting": {
		0: {5: 3, 2: 2, 6: 1},
		2: {6: 2, 0: 1},
		5: {2: 2, 6: 2},
		6: {0: 3, 5: 1},
	},
	"driving": {
		0: {0: 3, 3: 1, 4: 1},
		3: {0: 3},
		4: {0: 3},
	},
	"emotional": {
		0: {4: 2, 5: 2, 3: 1},
		3: {0: 2, 5: 1},
		4: {5: 2, 0: 1},
		5: {3: 2, 0: 2},
	},
	"tension": {
		0: {6: 2, 4: 2, 1: 1},
		1: {4: 2, 0: 1},
		4: {0: 3},
		6: {0: 2, 4: 1},
	},
}

var degreeNames = []string{"i", "ii", "III", "iv", "v", "VI", "VII"}

// Harmony is the shared key/scale/progression backbone of a run.
// Built once per arrangement and read-only afterwards.
type Harmony struct {
	Key         string
	Root        int // MIDI note of the tonic
	Mood        string
	Progression []Chord

	scale            []int
	measuresPerChord int
}

// BuildHarmony picks key, mood and progression from style-weighted
// tables using the dedicated "harmony" stream.
func BuildHarmony(p *style.Profile, seed int64) *Harmony {
	rs := rng.Derive(seed, "harmony")

	names := make([]string, len(keyTable))
	weights := make([]float64, len(keyTable))
	for i, k := range keyTable {
		names[i] = k.Name
		weights[i] = k.Weight
	}
	keyName := rs.Weighted(names, weights)
	root := 57
	for _, k := range keyTable {
		if k.Name == keyName {
			root = k.Root
		}
	}

	mood := p.Moods[rs.IntN(len(p.Moods))]
	trans, ok := moodTransitions[mood]
	if !ok {
		trans = moodTransitions["dark"]
	}

	k := p.ProgressionLen
	if k <= 0 {
		k = 4
	}
	prog := make([]Chord, 0, k)
	degree := 0 // progressions start on the tonic
	for i := 0; i < k; i++ {
		prog = append(prog, chordOn(degree))
		degree = nextDegree(trans, degree, rs)
	}

	mpc := p.MeasuresPerChord
	if mpc <= 0 {
		mpc = 1
	}

	return &Harmony{
		Key:              keyName,
		Root:             root,
		Mood:             mood,
		Progression:      prog,
		scale:            naturalMinor,
		measuresPerChord: mpc,
	}
}

// chordOn stacks thirds on a scale degree.
func chordOn(degree int) Chord {
	return Chord{
		Name:   degreeNames[degree%7],
		Degree: degree,
		Tones:  []int{degree, degree + 2, degree + 4},
	}
}

// nextDegree walks the mood's transition weights; degrees without an
// entry resolve back to the tonic.
func nextDegree(trans map[int]map[int]float64, from int, rs *rng.Stream) int {
	cands, ok := trans[from]
	if !ok || len(cands) == 0 {
		return 0
	}
	names := make([]string, 0, len(cands))
	weights := make([]float64, 0, len(cands))
	for d := 0; d < 7; d++ {
		if w, ok := cands[d]; ok {
			names = append(names, degreeNames[d])
			weights = append(weights, w)
		}
	}
	picked := rs.Weighted(names, weights)
	for d, name := range degreeNames {
		if name == picked {
			return d
		}
	}
	return 0
}

// Scale returns the ordered semitone offsets of the scale degrees.
func (h *Harmony) Scale() []int { return h.scale }

// ChordAt returns the chord active at an absolute measure. The
// progression cycles, advancing every MeasuresPerChord measures.
func (h *Harmony) ChordAt(measure int) Chord {
	if measure < 0 {
		measure = 0
	}
	idx := (measure / h.measuresPerChord) % len(h.Progression)
	return h.Progression[idx]
}

// DegreePitch maps a scale degree (any integer; ±7 shifts an octave)
// to a MIDI pitch, offset by octaveShift octaves from the key root.
func (h *Harmony) DegreePitch(degree, octaveShift int) uint8 {
	oct := degree / 7
	idx := degree % 7
	if idx < 0 {
		idx += 7
		oct--
	}
	return music.ClampPitch(h.Root + 12*(oct+octaveShift) + h.scale[idx])
}

// InScale reports whether a pitch reduces to a scale pitch class.
func (h *Harmony) InScale(pitch uint8) bool {
	pc := (int(pitch) - h.Root) % 12
	if pc < 0 {
		pc += 12
	}
	for _, s := range h.scale {
		if s == pc {
			return true
		}
	}
	return false
}

// String summarises the harmony for display.
func (h *Harmony) String() string {
	names := make([]byte, 0, 32)
	for i, c := range h.Progression {
		if i > 0 {
			names = append(names, '-')
		}
		names = append(names, c.Name...)
	}
	return fmt.Sprintf("%s (%s) %s", h.Key, h.Mood, names)
}
