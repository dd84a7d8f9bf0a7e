// Package midifile renders arrangements to Standard MIDI Files.
package midifile

import (
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/yrbane/acidgrid/engine"
	"github.com/yrbane/acidgrid/music"
)

// General MIDI programs per track. The rhythm track rides the
// percussion channel, so its program is irrelevant.
var trackPrograms = map[music.Track]uint8{
	music.TrackRhythm:   0,
	music.TrackBassline: 38, // Synth Bass 1
	music.TrackSubBass:  39, // Synth Bass 2
	music.TrackAccomp:   90, // Pad 3 (polysynth)
	music.TrackLead:     81, // Saw Lead
}

// Write renders the arrangement as a format-1 SMF at 480 ticks per
// quarter, one MIDI track per instrument plus a tempo track.
func Write(arr *engine.Arrangement, path string) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(music.TicksPerBeat)

	var meta smf.Track
	meta.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("acidgrid %s", arr.Style)))
	meta.Add(0, smf.MetaTempo(float64(arr.Tempo)))
	meta.Add(0, smf.MetaMeter(4, 4))
	meta.Close(0)
	if err := s.Add(meta); err != nil {
		return err
	}

	for i, tl := range arr.Timelines {
		t := music.Track(i)
		if err := s.Add(instrumentTrack(t, tl)); err != nil {
			return err
		}
	}

	return s.WriteFile(path)
}

// timedMsg is a NoteOn or NoteOff pinned to an absolute tick, built
// before conversion to SMF delta times.
type timedMsg struct {
	tick int64
	off  bool // offs sort before ons at the same tick
	msg  midi.Message
}

func instrumentTrack(t music.Track, tl engine.Timeline) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaInstrument(t.String()))
	tr.Add(0, midi.ProgramChange(t.Channel(), trackPrograms[t]))

	msgs := make([]timedMsg, 0, len(tl)*2)
	for _, e := range tl {
		msgs = append(msgs, timedMsg{
			tick: e.Start,
			msg:  midi.NoteOn(e.Channel, e.Pitch, e.Velocity),
		})
		msgs = append(msgs, timedMsg{
			tick: e.End(),
			off:  true,
			msg:  midi.NoteOffVelocity(e.Channel, e.Pitch, releaseVelocity(t, e.Velocity)),
		})
	}
	sort.SliceStable(msgs, func(a, b int) bool {
		if msgs[a].tick != msgs[b].tick {
			return msgs[a].tick < msgs[b].tick
		}
		return msgs[a].off && !msgs[b].off
	})

	var last int64
	for _, m := range msgs {
		tr.Add(uint32(m.tick-last), m.msg)
		last = m.tick
	}
	tr.Close(0)
	return tr
}

// releaseVelocity shapes the note-off so soft synth envelopes get a
// natural tail. The bass layers release slowly, percussion hard.
func releaseVelocity(t music.Track, onVel uint8) uint8 {
	switch t {
	case music.TrackSubBass, music.TrackBassline:
		return uint8(60 + int(onVel)*20/127)
	case music.TrackRhythm:
		return 0
	default:
		return uint8(40 + int(onVel)*30/127)
	}
}
