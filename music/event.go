package music

// Timing resolution. 480 ticks per quarter note is the standard MIDI
// resolution; everything is generated on a 16th-note step grid.
const (
	TicksPerBeat    = 480
	BeatsPerMeasure = 4
	StepsPerBeat    = 4
	StepsPerMeasure = BeatsPerMeasure * StepsPerBeat
	TicksPerStep    = TicksPerBeat / StepsPerBeat
	TicksPerMeasure = TicksPerBeat * BeatsPerMeasure
)

// Track identifies one of the five instrument timelines.
type Track uint8

const (
	TrackRhythm Track = iota
	TrackBassline
	TrackSubBass
	TrackAccomp
	TrackLead
	NumTracks = 5
)

// String returns the display name of the track.
func (t Track) String() string {
	switch t {
	case TrackRhythm:
		return "Rhythm"
	case TrackBassline:
		return "Bassline"
	case TrackSubBass:
		return "Sub Bass"
	case TrackAccomp:
		return "Accompaniment"
	case TrackLead:
		return "Lead"
	}
	return "Unknown"
}

// Channel returns the MIDI output channel for the track (0-indexed).
// Melodic tracks sit on channels 1-4, rhythm on the percussion channel 10.
func (t Track) Channel() uint8 {
	switch t {
	case TrackRhythm:
		return 9
	case TrackBassline:
		return 0
	case TrackSubBass:
		return 1
	case TrackAccomp:
		return 2
	case TrackLead:
		return 3
	}
	return 0
}

// NoteEvent is a single timed note. Start is in absolute ticks once an
// arrangement is assembled; generators emit section-relative starts.
type NoteEvent struct {
	Track    Track
	Channel  uint8
	Pitch    uint8 // 0-127
	Velocity uint8 // 1-127
	Start    int64 // ticks, >= 0
	Duration int64 // ticks, > 0
}

// End returns the release tick of the note.
func (e NoteEvent) End() int64 {
	return e.Start + e.Duration
}

// ClampPitch bounds an arbitrary pitch computation to the MIDI range.
func ClampPitch(p int) uint8 {
	if p < 0 {
		return 0
	}
	if p > 127 {
		return 127
	}
	return uint8(p)
}

// ClampVelocity bounds a velocity computation to the playable 1-127 range.
func ClampVelocity(v int) uint8 {
	if v < 1 {
		return 1
	}
	if v > 127 {
		return 127
	}
	return uint8(v)
}
