// Package track holds the five instrument generators. Each one turns a
// section plus the shared harmony into note events on its own timeline,
// drawing all randomness from a stream it is handed.
package track

import "github.com/yrbane/acidgrid/music"

// grid is one measure of 16th-note triggers for a single drum voice.
type grid [music.StepsPerMeasure]int

// General MIDI drum map, channel 10.
const (
	drumKick      = 36 // Acoustic Bass Drum
	drumSnare     = 38 // Acoustic Snare
	drumClap      = 39 // Hand Clap
	drumRim       = 37 // Side Stick
	drumLowTom    = 41 // Low Floor Tom
	drumMidTom    = 47 // Low-Mid Tom
	drumHighTom   = 50 // High Tom
	drumHat       = 42 // Closed Hi-Hat
	drumPedalHat  = 44 // Pedal Hi-Hat
	drumOpenHat   = 46 // Open Hi-Hat
	drumCrash     = 49 // Crash Cymbal 1
	drumRide      = 51 // Ride Cymbal 1
	drumRideBell  = 53 // Ride Bell
	drumTamb      = 54 // Tambourine
	drumCowbell   = 56 // Cowbell
	drumHighBongo = 60 // Hi Bongo
	drumLowBongo  = 61 // Low Bongo
	drumHiConga   = 63 // Open Hi Conga
	drumLowConga  = 64 // Low Conga
	drumHighAgogo = 67 // High Agogo
	drumLowAgogo  = 68 // Low Agogo
	drumClaves    = 75 // Claves
	drumWoodblock = 76 // Hi Wood Block
	drumTriangle  = 81 // Open Triangle
	drumShaker    = 82 // Shaker
)

// drumNotes maps voice names used in the pattern tables to GM notes.
var drumNotes = map[string]uint8{
	"bd":         drumKick,
	"sd":         drumSnare,
	"clap":       drumClap,
	"rim":        drumRim,
	"hh":         drumHat,
	"pedal_hh":   drumPedalHat,
	"oh":         drumOpenHat,
	"crash":      drumCrash,
	"ride":       drumRide,
	"ride_bell":  drumRideBell,
	"tambourine": drumTamb,
	"cowbell":    drumCowbell,
	"bongo_hi":   drumHighBongo,
	"bongo_low":  drumLowBongo,
	"conga_high": drumHiConga,
	"conga_low":  drumLowConga,
	"agogo_hi":   drumHighAgogo,
	"agogo_low":  drumLowAgogo,
	"claves":     drumClaves,
	"woodblock":  drumWoodblock,
	"triangle":   drumTriangle,
	"shaker":     drumShaker,
	"low_tom":    drumLowTom,
	"mid_tom":    drumMidTom,
	"high_tom":   drumHighTom,
}

// baseVelocity is the reference velocity per voice before the
// intensity curve and humanization are applied.
var baseVelocity = map[string]int{
	"bd":         120,
	"sd":         105,
	"clap":       95,
	"rim":        80,
	"hh":         75,
	"pedal_hh":   70,
	"oh":         85,
	"crash":      110,
	"ride":       80,
	"ride_bell":  85,
	"tambourine": 75,
	"cowbell":    85,
	"bongo_hi":   75,
	"bongo_low":  80,
	"conga_high": 80,
	"conga_low":  85,
	"agogo_hi":   75,
	"agogo_low":  70,
	"claves":     85,
	"woodblock":  80,
	"triangle":   60,
	"shaker":     65,
	"low_tom":    100,
	"mid_tom":    95,
	"high_tom":   90,
}

// drumPatterns are the core one-measure grooves. Voices not listed in
// a pattern stay silent for it.
var drumPatterns = map[string]map[string]grid{
	"minimal": {
		"bd":     {1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
		"sd":     {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		"hh":     {0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0},
		"oh":     {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
		"shaker": {0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1},
		"rim":    {0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	"driving": {
		"bd":         {1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		"sd":         {0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		"clap":       {0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1},
		"hh":         {0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
		"oh":         {0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0},
		"shaker":     {1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
		"tambourine": {0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
		"ride":       {0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0},
	},
	"complex": {
		"bd":       {1, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0, 1, 0, 1, 0},
		"sd":       {0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
		"clap":     {0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		"hh":       {1, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0},
		"oh":       {0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1},
		"shaker":   {1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1},
		"cowbell":  {0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
		"rim":      {0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
		"pedal_hh": {0, 1, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 0},
	},
	"breakbeat": {
		"bd":         {1, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0},
		"sd":         {0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0},
		"clap":       {0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
		"hh":         {1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1},
		"oh":         {0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0},
		"shaker":     {0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
		"tambourine": {0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0},
		"ride":       {1, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0},
	},
	"rolling": {
		"bd":         {1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
		"sd":         {0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
		"clap":       {0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0},
		"hh":         {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		"shaker":     {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		"tambourine": {0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1},
		"cowbell":    {0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0},
		"ride_bell":  {1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
	},
}

// percussionLayers are optional per-style colorations layered over the
// core groove. Style profiles reference them by name with an activity
// weight; "hatroll" is special-cased in the generator.
var percussionLayers = map[string]grid{
	"conga_low":  {0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0},
	"conga_high": {0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
	"bongo_hi":   {0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
	"bongo_low":  {0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0},
	"claves":     {0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
	"cowbell":    {0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0},
	"woodblock":  {0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
	"agogo_hi":   {0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0},
	"agogo_low":  {0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0},
	"triangle":   {0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
}

// patternNames lists the core grooves in a stable order so choices are
// reproducible across runs.
var patternNames = []string{"breakbeat", "complex", "driving", "minimal", "rolling"}
