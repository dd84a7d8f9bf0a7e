package track

import (
	"errors"
	"fmt"

	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/rng"
	"github.com/yrbane/acidgrid/song"
	"github.com/yrbane/acidgrid/style"
)

// ErrInvalidSection is returned when a generator is handed a section
// it cannot render, such as one with no measures.
var ErrInvalidSection = errors.New("invalid section")

// Generator renders one section of one instrument. Event starts are
// relative to the section; the engine shifts them onto the song
// timeline. Generators keep per-run state (pattern history) so the
// same instance must be reused across the sections of one arrangement.
type Generator interface {
	Name() string
	Generate(sec song.Section, h *song.Harmony, p *style.Profile, rs *rng.Stream) ([]music.NoteEvent, error)
}

func checkSection(sec song.Section) error {
	if sec.Length <= 0 {
		return fmt.Errorf("%w: section %d has length %d", ErrInvalidSection, sec.Index, sec.Length)
	}
	return nil
}

// stepTick converts a (measure, step) position inside a section to a
// section-relative tick.
func stepTick(measure, step int) int64 {
	return int64(measure)*music.TicksPerMeasure + int64(step)*music.TicksPerStep
}

// swingOffset delays off-beat 16ths. Even steps stay on the grid.
func swingOffset(step int, swing float64) int64 {
	if step%2 == 0 || swing <= 0 {
		return 0
	}
	return int64(swing * float64(music.TicksPerStep) / 2)
}

// filterStrings drops the excluded value, returning the original slice
// when the exclusion would leave nothing to choose from.
func filterStrings(options []string, exclude string) []string {
	if len(options) <= 1 {
		return options
	}
	out := make([]string, 0, len(options))
	for _, o := range options {
		if o != exclude {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return options
	}
	return out
}
