// Package style holds the immutable per-style configuration consumed
// by the arrangement director and the track generators.
package style

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yrbane/acidgrid/music"
)

// ErrUnknownStyle is returned for style ids not present in the catalog.
var ErrUnknownStyle = errors.New("unknown style")

// Slot is one entry of a style's section template. Weight controls the
// share of the total measures the slot receives.
type Slot struct {
	Type   music.SectionType
	Weight int
}

// Profile is the full configuration of a music style. Profiles are
// package data: loaded once, never mutated.
type Profile struct {
	ID          string
	Name        string
	Description string

	TempoMin     int
	TempoMax     int
	TempoDefault int

	// Template is the ordered section plan the director distributes
	// measures over.
	Template []Slot

	// BreakIntervals are the measure multiples at which a non-drop
	// section starting there becomes a break.
	BreakIntervals []int

	// RhythmPatterns and BasslineRiffs are the style's preferred
	// pattern/riff names; generators weight choices toward them.
	RhythmPatterns []string
	BasslineRiffs  []string

	// Percussion maps layer names to activity weights in [0,1].
	Percussion map[string]float64

	SynthDensity   float64 // 0-1, accompaniment/lead activity
	Swing          float64 // 0-1, off-beat timing push
	ChordBlockBias float64 // probability of block chords over arpeggios

	Moods []string // candidate progression moods

	ProgressionLen   int // chords per progression cycle
	MeasuresPerChord int // measures before the chord advances
}

// TempoInRange reports whether bpm sits inside the style's authentic range.
func (p *Profile) TempoInRange(bpm int) bool {
	return bpm >= p.TempoMin && bpm <= p.TempoMax
}

var catalog = map[string]*Profile{
	"house": {
		ID:           "house",
		Name:         "House",
		Description:  "Classic house: four-on-the-floor, soulful, groovy",
		TempoMin:     120,
		TempoMax:     128,
		TempoDefault: 124,
		Template: []Slot{
			{music.SectionIntro, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
			{music.SectionBreakdown, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
			{music.SectionOutro, 1},
		},
		BreakIntervals: []int{8, 16, 32, 64},
		RhythmPatterns: []string{"driving", "minimal"},
		BasslineRiffs:  []string{"detroit_funk", "chicago_jack", "hypnotic_loop"},
		Percussion: map[string]float64{
			"conga_low": 0.6, "conga_high": 0.6, "bongo_hi": 0.4, "bongo_low": 0.4, "claves": 0.5,
		},
		SynthDensity:     0.8,
		Swing:            0.3,
		ChordBlockBias:   0.45,
		Moods:            []string{"uplifting", "emotional", "dark"},
		ProgressionLen:   4,
		MeasuresPerChord: 2,
	},
	"techno": {
		ID:           "techno",
		Name:         "Techno",
		Description:  "Techno: hypnotic, industrial, relentless energy",
		TempoMin:     128,
		TempoMax:     135,
		TempoDefault: 128,
		Template: []Slot{
			{music.SectionIntro, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
			{music.SectionBreakdown, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
			{music.SectionOutro, 1},
		},
		BreakIntervals: []int{8, 16, 32, 64},
		RhythmPatterns: []string{"driving", "complex", "minimal"},
		BasslineRiffs:  []string{"acid_303", "berlin_minimal", "warehouse_stomp", "rolling_thunder"},
		Percussion: map[string]float64{
			"cowbell": 0.3, "woodblock": 0.4,
		},
		SynthDensity:     0.7,
		Swing:            0.1,
		ChordBlockBias:   0.2,
		Moods:            []string{"dark", "driving", "tension"},
		ProgressionLen:   4,
		MeasuresPerChord: 2,
	},
	"hard-tekno": {
		ID:           "hard-tekno",
		Name:         "Hard Tekno",
		Description:  "Hard tekno: fast, aggressive, distorted, peak-time energy",
		TempoMin:     150,
		TempoMax:     170,
		TempoDefault: 160,
		Template: []Slot{
			{music.SectionIntro, 1},
			{music.SectionDrop, 2},
			{music.SectionBreakdown, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
			{music.SectionOutro, 1},
		},
		BreakIntervals: []int{16, 32, 64},
		RhythmPatterns: []string{"driving", "rolling", "complex"},
		BasslineRiffs:  []string{"acid_303", "sub_pressure", "uk_rave", "techno_gallop"},
		Percussion: map[string]float64{
			"cowbell": 0.9, "woodblock": 0.6, "claves": 0.5,
		},
		SynthDensity:     0.6,
		Swing:            0.0,
		ChordBlockBias:   0.15,
		Moods:            []string{"driving", "tension", "dark"},
		ProgressionLen:   4,
		MeasuresPerChord: 2,
	},
	"breakbeat": {
		ID:           "breakbeat",
		Name:         "Breakbeat",
		Description:  "Breakbeat: syncopated drums, funky, energetic",
		TempoMin:     130,
		TempoMax:     150,
		TempoDefault: 138,
		Template: []Slot{
			{music.SectionIntro, 1},
			{music.SectionDrop, 2},
			{music.SectionBreakdown, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
			{music.SectionOutro, 1},
		},
		BreakIntervals: []int{8, 16, 32},
		RhythmPatterns: []string{"breakbeat", "complex"},
		BasslineRiffs:  []string{"uk_rave", "rolling_thunder", "detroit_funk"},
		Percussion: map[string]float64{
			"cowbell": 0.5, "conga_high": 0.4,
		},
		SynthDensity:     0.7,
		Swing:            0.2,
		ChordBlockBias:   0.35,
		Moods:            []string{"uplifting", "driving"},
		ProgressionLen:   4,
		MeasuresPerChord: 2,
	},
	"idm": {
		ID:           "idm",
		Name:         "IDM",
		Description:  "IDM: intelligent, complex, glitchy, experimental",
		TempoMin:     140,
		TempoMax:     180,
		TempoDefault: 160,
		Template: []Slot{
			{music.SectionIntro, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
			{music.SectionBreakdown, 1},
			{music.SectionVerse, 1},
			{music.SectionDrop, 2},
			{music.SectionOutro, 1},
		},
		BreakIntervals: []int{4, 8, 16, 32},
		RhythmPatterns: []string{"complex", "breakbeat", "minimal"},
		BasslineRiffs:  []string{"hypnotic_loop", "sub_pressure", "techno_gallop"},
		Percussion: map[string]float64{
			"woodblock": 0.5, "claves": 0.3,
		},
		SynthDensity:     0.9,
		Swing:            0.4,
		ChordBlockBias:   0.3,
		Moods:            []string{"tension", "dark", "emotional"},
		ProgressionLen:   8,
		MeasuresPerChord: 1,
	},
	"jungle": {
		ID:           "jungle",
		Name:         "Jungle",
		Description:  "Jungle: fast breakbeats, heavy bass, reggae influence",
		TempoMin:     160,
		TempoMax:     180,
		TempoDefault: 170,
		Template: []Slot{
			{music.SectionIntro, 1},
			{music.SectionDrop, 2},
			{music.SectionBreakdown, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
			{music.SectionOutro, 1},
		},
		BreakIntervals: []int{8, 16, 32},
		RhythmPatterns: []string{"breakbeat", "complex", "rolling"},
		BasslineRiffs:  []string{"sub_pressure", "rolling_thunder", "uk_rave"},
		Percussion: map[string]float64{
			"conga_low": 0.7, "conga_high": 0.7, "agogo_hi": 0.5, "agogo_low": 0.5,
		},
		SynthDensity:     0.6,
		Swing:            0.35,
		ChordBlockBias:   0.3,
		Moods:            []string{"dark", "driving", "tension"},
		ProgressionLen:   4,
		MeasuresPerChord: 2,
	},
	"hip-hop": {
		ID:           "hip-hop",
		Name:         "Hip-Hop",
		Description:  "Hip-hop: laid back, boom bap, groovy",
		TempoMin:     85,
		TempoMax:     95,
		TempoDefault: 90,
		Template: []Slot{
			{music.SectionIntro, 1},
			{music.SectionVerse, 2},
			{music.SectionHook, 2},
			{music.SectionVerse, 2},
			{music.SectionBreakdown, 1},
			{music.SectionVerse, 2},
			{music.SectionHook, 2},
			{music.SectionOutro, 1},
		},
		BreakIntervals: []int{8, 16, 32},
		RhythmPatterns: []string{"minimal", "breakbeat"},
		BasslineRiffs:  []string{"detroit_funk", "warehouse_stomp", "sub_pressure"},
		Percussion: map[string]float64{
			"cowbell": 0.3,
		},
		SynthDensity:     0.5,
		Swing:            0.5,
		ChordBlockBias:   0.6,
		Moods:            []string{"emotional", "dark"},
		ProgressionLen:   4,
		MeasuresPerChord: 2,
	},
	"trap": {
		ID:           "trap",
		Name:         "Trap",
		Description:  "Trap: 808 bass, hi-hat rolls, modern urban sound",
		TempoMin:     140,
		TempoMax:     160,
		TempoDefault: 150,
		Template: []Slot{
			{music.SectionIntro, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
			{music.SectionBreakdown, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
		},
		BreakIntervals: []int{8, 16, 32},
		RhythmPatterns: []string{"minimal", "rolling"},
		BasslineRiffs:  []string{"sub_pressure", "warehouse_stomp", "hypnotic_loop"},
		Percussion: map[string]float64{
			"hatroll": 0.7, "cowbell": 0.3,
		},
		SynthDensity:     0.7,
		Swing:            0.1,
		ChordBlockBias:   0.5,
		Moods:            []string{"dark", "tension"},
		ProgressionLen:   4,
		MeasuresPerChord: 2,
	},
	"ambient": {
		ID:           "ambient",
		Name:         "Ambient",
		Description:  "Ambient: atmospheric, sparse, meditative, textural",
		TempoMin:     60,
		TempoMax:     90,
		TempoDefault: 75,
		Template: []Slot{
			{music.SectionIntro, 1},
			{music.SectionVerse, 2},
			{music.SectionVerse, 2},
			{music.SectionOutro, 1},
		},
		BreakIntervals: []int{32, 64},
		RhythmPatterns: []string{"minimal"},
		BasslineRiffs:  []string{"berlin_minimal", "sub_pressure", "hypnotic_loop"},
		Percussion: map[string]float64{
			"triangle": 0.3,
		},
		SynthDensity:     0.9,
		Swing:            0.0,
		ChordBlockBias:   0.7,
		Moods:            []string{"emotional", "uplifting"},
		ProgressionLen:   8,
		MeasuresPerChord: 4,
	},
	"drum&bass": {
		ID:           "drum&bass",
		Name:         "Drum & Bass",
		Description:  "Drum & bass: fast breakbeats, deep bass, high energy",
		TempoMin:     170,
		TempoMax:     180,
		TempoDefault: 174,
		Template: []Slot{
			{music.SectionIntro, 1},
			{music.SectionDrop, 2},
			{music.SectionBreakdown, 1},
			{music.SectionBuildup, 1},
			{music.SectionDrop, 2},
			{music.SectionOutro, 1},
		},
		BreakIntervals: []int{16, 32, 64},
		RhythmPatterns: []string{"breakbeat", "complex", "rolling"},
		BasslineRiffs:  []string{"sub_pressure", "rolling_thunder", "techno_gallop", "acid_303"},
		Percussion: map[string]float64{
			"conga_low": 0.7, "conga_high": 0.7, "agogo_hi": 0.5,
		},
		SynthDensity:     0.7,
		Swing:            0.2,
		ChordBlockBias:   0.25,
		Moods:            []string{"dark", "driving", "tension"},
		ProgressionLen:   4,
		MeasuresPerChord: 2,
	},
}

// ProfileFor looks up a style by id.
func ProfileFor(id string) (*Profile, error) {
	p, ok := catalog[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, id)
	}
	return p, nil
}

// IDs returns the sorted list of available style ids.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ValidateTempo checks bpm against the style's authentic range. A tempo
// outside the range is not an error: generation proceeds and the caller
// gets a warning to surface.
func ValidateTempo(id string, bpm int) (ok bool, warning string, err error) {
	p, err := ProfileFor(id)
	if err != nil {
		return false, "", err
	}
	if p.TempoInRange(bpm) {
		return true, "", nil
	}
	return false, fmt.Sprintf("tempo %d BPM outside %s range %d-%d", bpm, p.ID, p.TempoMin, p.TempoMax), nil
}
