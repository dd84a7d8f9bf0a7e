// Package song builds the temporal and harmonic skeleton of a track:
// the ordered section structure with its intensity curve, and the
// key/scale/chord-progression context every instrument reads from.
package song

import (
	"errors"
	"fmt"

	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/rng"
	"github.com/yrbane/acidgrid/style"
)

// ErrInvalidMeasureCount is returned when a non-positive measure count
// is requested.
var ErrInvalidMeasureCount = errors.New("invalid measure count")

// Section is a contiguous span of measures with a structural role.
// Sections partition the track: no gaps, no overlaps, lengths sum to
// the requested total. Immutable once built.
type Section struct {
	Index  int
	Type   music.SectionType
	Start  int // first measure (0-based)
	Length int // measures, > 0

	// Intensity at the section start and end; buildups ramp up,
	// outros ramp down, everything else stays near flat.
	Intensity    float64
	EndIntensity float64

	IsBreak bool // starts on a style break interval, pattern thins out
	HasFill bool // last measure leads into a different section type
}

// End returns the first measure after the section.
func (s Section) End() int { return s.Start + s.Length }

// Contains reports whether the absolute measure falls inside the section.
func (s Section) Contains(measure int) bool {
	return measure >= s.Start && measure < s.End()
}

// IntensityAt interpolates the intensity for a measure inside the
// section (local index, 0-based).
func (s Section) IntensityAt(local int) float64 {
	if s.Length <= 1 {
		return s.Intensity
	}
	t := float64(local) / float64(s.Length-1)
	return s.Intensity + (s.EndIntensity-s.Intensity)*t
}

// Fixed intensity mapping per section type: start and end values.
// Buildups ramp toward drop energy, outros decay, the rest hold.
var intensityMap = map[music.SectionType][2]float64{
	music.SectionIntro:     {0.25, 0.3},
	music.SectionBuildup:   {0.35, 0.9},
	music.SectionDrop:      {0.9, 0.95},
	music.SectionBreakdown: {0.4, 0.35},
	music.SectionVerse:     {0.6, 0.6},
	music.SectionHook:      {0.85, 0.85},
	music.SectionOutro:     {0.5, 0.2},
}

// BuildSections distributes measures over the style's section template
// and derives the intensity curve, break and fill flags.
//
// Distribution rule: each slot gets floor(measures*weight/total), with
// a minimum of one measure; the remainder goes to the heaviest slot.
// When measures < len(template) the template is truncated, one measure
// per leading slot.
func BuildSections(p *style.Profile, measures int, seed int64) ([]Section, error) {
	if measures <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMeasureCount, measures)
	}

	tmpl := p.Template
	if measures < len(tmpl) {
		tmpl = tmpl[:measures]
	}
	lengths := distribute(tmpl, measures)

	rs := rng.Derive(seed, "arrange")

	sections := make([]Section, len(tmpl))
	start := 0
	for i, slot := range tmpl {
		lo, hi := intensityFor(slot.Type, rs)
		sections[i] = Section{
			Index:        i,
			Type:         slot.Type,
			Start:        start,
			Length:       lengths[i],
			Intensity:    lo,
			EndIntensity: hi,
		}
		start += lengths[i]
	}

	for i := range sections {
		s := &sections[i]
		if s.Type != music.SectionDrop && s.Start > 0 {
			for _, iv := range p.BreakIntervals {
				if iv > 0 && s.Start%iv == 0 {
					s.IsBreak = true
					break
				}
			}
		}
		if i+1 < len(sections) && sections[i+1].Type != s.Type {
			s.HasFill = true
		}
	}

	return sections, nil
}

// intensityFor returns start/end intensity for a slot type, with a
// small seeded variation inside the type's authentic range.
func intensityFor(t music.SectionType, rs *rng.Stream) (float64, float64) {
	base, ok := intensityMap[t]
	if !ok {
		base = [2]float64{0.6, 0.6}
	}
	lo, hi := base[0], base[1]
	switch t {
	case music.SectionDrop:
		// drops sit in 0.9-1.0
		hi = 0.95 + 0.05*rs.Float64()
	case music.SectionBreakdown:
		// breakdowns sit in 0.3-0.5
		lo = 0.35 + 0.1*rs.Float64()
		hi = lo - 0.05
	default:
		// keep the fixed mapping, burn one draw so stream positions
		// stay aligned across templates
		rs.Float64()
	}
	return lo, hi
}

// distribute splits measures across slots proportionally to weight.
func distribute(tmpl []style.Slot, measures int) []int {
	n := len(tmpl)
	lengths := make([]int, n)
	if measures <= n {
		for i := range lengths {
			lengths[i] = 1
		}
		return lengths
	}

	totalW := 0
	for _, s := range tmpl {
		totalW += s.Weight
	}
	assigned := 0
	for i, s := range tmpl {
		l := measures * s.Weight / totalW
		if l < 1 {
			l = 1
		}
		lengths[i] = l
		assigned += l
	}

	// Shrink if the minimums pushed us over.
	for assigned > measures {
		longest := 0
		for i, l := range lengths {
			if l > lengths[longest] {
				longest = i
			}
		}
		lengths[longest]--
		assigned--
	}

	// Remainder goes to the heaviest slot.
	if assigned < measures {
		heaviest := 0
		for i, s := range tmpl {
			if s.Weight > tmpl[heaviest].Weight {
				heaviest = i
			}
		}
		lengths[heaviest] += measures - assigned
	}

	return lengths
}
