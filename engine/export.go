package engine

import (
	"encoding/json"
	"io"

	"github.com/yrbane/acidgrid/music"
)

// jsonArrangement is the stable on-disk shape of an arrangement dump.
type jsonArrangement struct {
	Style    string        `json:"style"`
	Tempo    int           `json:"tempo"`
	Measures int           `json:"measures"`
	Seed     int64         `json:"seed"`
	Key      string        `json:"key"`
	Mood     string        `json:"mood"`
	Warning  string        `json:"warning,omitempty"`
	Sections []jsonSection `json:"sections"`
	Tracks   []jsonTrack   `json:"tracks"`
}

type jsonSection struct {
	Type      string  `json:"type"`
	Start     int     `json:"start"`
	Length    int     `json:"length"`
	Intensity float64 `json:"intensity"`
	IsBreak   bool    `json:"is_break,omitempty"`
	HasFill   bool    `json:"has_fill,omitempty"`
}

type jsonTrack struct {
	Name    string      `json:"name"`
	Channel uint8       `json:"channel"`
	Notes   []jsonEvent `json:"notes"`
}

type jsonEvent struct {
	Pitch    uint8 `json:"pitch"`
	Velocity uint8 `json:"velocity"`
	Start    int64 `json:"start"`
	Duration int64 `json:"duration"`
}

// WriteJSON dumps the arrangement, sections and all note events as
// indented JSON.
func (a *Arrangement) WriteJSON(w io.Writer) error {
	out := jsonArrangement{
		Style:    a.Style,
		Tempo:    a.Tempo,
		Measures: a.Measures,
		Seed:     a.Seed,
		Key:      a.Harmony.Key,
		Mood:     a.Harmony.Mood,
		Warning:  a.TempoWarning,
	}
	for _, s := range a.Sections {
		out.Sections = append(out.Sections, jsonSection{
			Type:      string(s.Type),
			Start:     s.Start,
			Length:    s.Length,
			Intensity: s.Intensity,
			IsBreak:   s.IsBreak,
			HasFill:   s.HasFill,
		})
	}
	for i, tl := range a.Timelines {
		t := music.Track(i)
		jt := jsonTrack{Name: t.String(), Channel: t.Channel()}
		for _, e := range tl {
			jt.Notes = append(jt.Notes, jsonEvent{
				Pitch:    e.Pitch,
				Velocity: e.Velocity,
				Start:    e.Start,
				Duration: e.Duration,
			})
		}
		out.Tracks = append(out.Tracks, jt)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
