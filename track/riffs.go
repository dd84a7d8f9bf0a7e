package track

// riff is a one-measure bassline archetype. Degrees are scale degrees
// relative to the active chord root (7 spans an octave), so every note
// lands inside the key no matter which chord is playing. Slides mark
// steps reached by gliding from the previous note.
type riff struct {
	Steps   grid
	Degrees [16]int
	Slides  grid
}

var riffLibrary = map[string]riff{
	"acid_303": { // squelchy 303 line, octave stabs
		Steps:   grid{1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0},
		Degrees: [16]int{0, 0, 7, 0, 0, 4, 0, 3, 0, 0, 0, 2, 0, 4, 7, 0},
		Slides:  grid{0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0},
	},
	"detroit_funk": { // syncopated funk walk
		Steps:   grid{1, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0},
		Degrees: [16]int{0, 0, 0, -3, 0, 4, 0, 0, 0, 3, 0, 2, 0, 0, 7, 0},
		Slides:  grid{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
	},
	"berlin_minimal": { // three hits, one low drop
		Steps:   grid{1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		Degrees: [16]int{0, 0, 0, 0, 0, 0, -7, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	"uk_rave": { // doubled-note rave stabs
		Steps:   grid{1, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0},
		Degrees: [16]int{0, 0, 0, 4, 4, 0, 3, 0, 0, 0, 0, 2, 2, 0, 4, 0},
		Slides:  grid{0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0},
	},
	"chicago_jack": { // straight eighths, walking down
		Steps:   grid{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
		Degrees: [16]int{0, 0, 7, 0, 0, 0, 4, 0, 0, 0, 3, 0, 0, 0, 2, 0},
	},
	"rolling_thunder": { // relentless triplet-feel roller
		Steps:   grid{1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0},
		Degrees: [16]int{0, 1, 3, 0, 4, 3, 2, 0, 0, 1, 3, 0, 4, 6, 7, 0},
		Slides:  grid{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0},
	},
	"warehouse_stomp": { // sparse stomp with octave throws
		Steps:   grid{1, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 0},
		Degrees: [16]int{0, 0, 0, 0, 0, 0, 7, 0, -7, 0, 0, 0, 0, 4, 0, 0},
		Slides:  grid{0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0},
	},
	"hypnotic_loop": { // circling mid-register loop
		Steps:   grid{1, 0, 1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 0, 1, 0},
		Degrees: [16]int{0, 0, 2, 0, 0, 3, 0, 4, 0, 3, 0, 0, 2, 0, 0, 0},
		Slides:  grid{0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0},
	},
	"sub_pressure": { // quarter-note subs rising from the floor
		Steps:   grid{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		Degrees: [16]int{-7, 0, 0, 0, -7, 0, 0, 0, -4, 0, 0, 0, -3, 0, 0, 0},
		Slides:  grid{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
	},
	"techno_gallop": { // galloping off-beat pushes
		Steps:   grid{1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1},
		Degrees: [16]int{0, 0, 0, 3, 0, 4, 0, 7, 0, 0, 0, 3, 0, 2, 0, 0},
		Slides:  grid{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	},
}

// riffNames in stable order for deterministic fallback choices.
var riffNames = []string{
	"acid_303", "berlin_minimal", "chicago_jack", "detroit_funk",
	"hypnotic_loop", "rolling_thunder", "sub_pressure", "techno_gallop",
	"uk_rave", "warehouse_stomp",
}
