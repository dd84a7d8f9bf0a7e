package track

import (
	"sort"

	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/rng"
	"github.com/yrbane/acidgrid/song"
	"github.com/yrbane/acidgrid/style"
)

// Rhythm generates the drum timeline: a core groove per measure chosen
// from the style's preferred patterns, percussion layers on top, and
// section-aware edits (break thinning, fills, crashes).
type Rhythm struct {
	lastPattern string
}

// NewRhythm returns a drum generator.
func NewRhythm() *Rhythm { return &Rhythm{} }

func (g *Rhythm) Name() string { return "rhythm" }

func (g *Rhythm) Generate(sec song.Section, h *song.Harmony, p *style.Profile, rs *rng.Stream) ([]music.NoteEvent, error) {
	if err := checkSection(sec); err != nil {
		return nil, err
	}

	var events []music.NoteEvent
	for m := 0; m < sec.Length; m++ {
		intensity := sec.IntensityAt(m)
		name := g.choosePattern(sec, intensity, p, rs)
		g.lastPattern = name

		pattern := copyPattern(drumPatterns[name])
		g.editForSection(pattern, sec, m, intensity, rs)
		if !sec.IsBreak {
			g.layerPercussion(pattern, p, m, intensity, rs)
		}

		if sec.Type == music.SectionDrop && m == 0 {
			events = append(events, drumHit("crash", stepTick(m, 0), rs.Range(100, 120)))
		}

		for step := 0; step < music.StepsPerMeasure; step++ {
			at := stepTick(m, step) + swingOffset(step, p.Swing)
			for _, voice := range voiceOrder(pattern) {
				if pattern[voice][step] == 0 {
					continue
				}
				vel := velocityFor(voice, step, intensity, rs)
				events = append(events, drumHit(voice, at, vel))
			}
		}
	}
	return events, nil
}

// choosePattern picks a groove for the measure, biased by section role
// and never repeating the previous measure's choice when an
// alternative exists.
func (g *Rhythm) choosePattern(sec song.Section, intensity float64, p *style.Profile, rs *rng.Stream) string {
	preferred := p.RhythmPatterns
	if len(preferred) == 0 {
		preferred = patternNames
	}

	var options []string
	switch sec.Type {
	case music.SectionIntro, music.SectionOutro:
		options = intersect(preferred, []string{"minimal", "driving"})
		if len(options) == 0 {
			options = []string{"minimal"}
		}
	case music.SectionBuildup:
		switch {
		case intensity < 0.4:
			options = []string{"minimal"}
		case intensity < 0.6:
			options = intersect(preferred, []string{"driving", "minimal"})
			if len(options) == 0 {
				options = []string{"driving"}
			}
		default:
			options = intersect(preferred, []string{"complex", "rolling", "breakbeat"})
			if len(options) == 0 {
				options = []string{"complex", "rolling"}
			}
		}
	case music.SectionBreakdown:
		options = intersect(preferred, []string{"minimal", "breakbeat"})
		if len(options) == 0 {
			options = []string{"minimal", "breakbeat"}
		}
	default:
		options = preferred
	}

	return rs.Pick(filterStrings(options, g.lastPattern))
}

// editForSection mutates the measure's pattern for its structural role.
func (g *Rhythm) editForSection(pattern map[string]grid, sec song.Section, m int, intensity float64, rs *rng.Stream) {
	switch {
	case sec.IsBreak:
		// Breaks strip the groove down to the kick.
		for voice := range pattern {
			if voice != "bd" {
				delete(pattern, voice)
			}
		}
		return

	case sec.Type == music.SectionBuildup:
		progress := float64(m+1) / float64(sec.Length)
		if progress > 0.75 {
			// Snare roll into the drop.
			sd := pattern["sd"]
			clap := pattern["clap"]
			for i := 12; i < 16; i++ {
				if rs.Chance(progress) {
					sd[i] = 1
					clap[i] = 1
				}
			}
			pattern["sd"] = sd
			pattern["clap"] = clap
		}
		if progress > 0.5 {
			hh := pattern["hh"]
			for i := range hh {
				if rs.Chance(progress * 0.3) {
					hh[i] = 1
				}
			}
			pattern["hh"] = hh
		}

	case sec.Type == music.SectionDrop:
		// Drops always get the four-on-the-floor anchor.
		bd := pattern["bd"]
		bd[0], bd[4], bd[8], bd[12] = 1, 1, 1, 1
		pattern["bd"] = bd

	case sec.Type == music.SectionBreakdown:
		bd := pattern["bd"]
		sd := pattern["sd"]
		for i := 0; i < music.StepsPerMeasure; i++ {
			if rs.Chance(0.7) {
				bd[i] = 0
			}
			if rs.Chance(0.5) {
				sd[i] = 0
			}
		}
		pattern["bd"] = bd
		pattern["sd"] = sd
	}

	// Tom fill on the last measure before a section change.
	if sec.HasFill && m == sec.Length-1 {
		hh := pattern["hh"]
		oh := pattern["oh"]
		for i := 12; i < 16; i++ {
			hh[i] = 0
			oh[i] = 0
		}
		pattern["hh"] = hh
		pattern["oh"] = oh
		pattern["high_tom"] = grid{12: 1}
		pattern["mid_tom"] = grid{13: 1, 14: 1}
		pattern["low_tom"] = grid{15: 1}
	} else if m%2 == 0 && rs.Chance(0.3) {
		// Occasional tom answer mid-section.
		pattern["low_tom"] = grid{4: 1}
		pattern["mid_tom"] = grid{6: 1}
		pattern["high_tom"] = grid{7: 1}
	}
}

// layerPercussion adds the style's coloration voices with their
// configured activity weights.
func (g *Rhythm) layerPercussion(pattern map[string]grid, p *style.Profile, m int, intensity float64, rs *rng.Stream) {
	for _, name := range sortedKeys(p.Percussion) {
		weight := p.Percussion[name]
		if name == "hatroll" {
			// Hi-hat roll closing every fourth measure.
			if m%4 == 3 && rs.Chance(weight) {
				hh := pattern["hh"]
				for i := 12; i < 16; i++ {
					hh[i] = 1
				}
				pattern["hh"] = hh
			}
			continue
		}
		layer, ok := percussionLayers[name]
		if !ok {
			continue
		}
		if rs.Chance(weight * (0.5 + intensity/2)) {
			pattern[name] = layer
		}
	}
}

// velocityFor applies the per-voice base, the intensity curve and a
// small humanization jitter.
func velocityFor(voice string, step int, intensity float64, rs *rng.Stream) int {
	base := baseVelocity[voice]
	var curve float64
	switch voice {
	case "bd":
		// Kicks on the beat punch harder.
		if step%4 == 0 {
			curve = 1.2
		} else {
			curve = 0.9
		}
	case "sd", "clap":
		curve = 0.5 + intensity*0.7
	case "crash":
		curve = 0.9 + intensity*0.1
	default:
		curve = 0.55 + intensity*0.35
	}
	return int(float64(base)*curve) + rs.Jitter(5)
}

func drumHit(voice string, at int64, vel int) music.NoteEvent {
	return music.NoteEvent{
		Track:    music.TrackRhythm,
		Channel:  music.TrackRhythm.Channel(),
		Pitch:    drumNotes[voice],
		Velocity: music.ClampVelocity(vel),
		Start:    at,
		Duration: music.TicksPerStep / 2,
	}
}

func copyPattern(src map[string]grid) map[string]grid {
	dst := make(map[string]grid, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// voiceOrder returns the pattern's voices sorted by name so event
// emission order is deterministic.
func voiceOrder(pattern map[string]grid) []string {
	names := make([]string, 0, len(pattern))
	for name := range pattern {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func intersect(a, b []string) []string {
	var out []string
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
				break
			}
		}
	}
	return out
}
