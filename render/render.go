// Package render converts symbolic parts into absolute-time note
// events. Each track keeps one running time cursor; melodies advance
// it per note, chords advance it once for all their notes.
package render

import (
	"fmt"
	"strings"

	"github.com/calyptra/aleamidi/constants"
	"github.com/calyptra/aleamidi/model"
	"github.com/calyptra/aleamidi/theory"
)

// NoteEvent is one performed note with absolute start/end times in
// seconds. Velocity 0 denotes a rest occupying the interval.
type NoteEvent struct {
	Pitch    uint8
	Velocity uint8
	Start    float64
	End      float64
}

// Track is a rendered part: an ordered event stream bound to one GM
// program.
type Track struct {
	Name       string
	Instrument string
	Program    uint8
	Events     []NoteEvent
}

// pitchOf resolves a note name to its MIDI number. Names outside the
// chromatic table fail hard; they are never clamped or dropped.
func pitchOf(note string) (uint8, error) {
	idx, err := theory.NoteIndex(note)
	if err != nil {
		return 0, err
	}
	return uint8(idx + constants.MinMidiNote), nil
}

func velocityOf(dynamic int) (uint8, error) {
	if dynamic < 0 || dynamic > 127 {
		return 0, fmt.Errorf("velocity %d outside 0-127", dynamic)
	}
	return uint8(dynamic), nil
}

// Melody renders a melody strictly sequentially from the given start
// time. Returns the events and the cursor position after the last
// note.
func Melody(mel *model.Melody, start float64) ([]NoteEvent, float64, error) {
	if len(mel.Notes) != len(mel.Rhythms) || len(mel.Notes) != len(mel.Dynamics) {
		return nil, 0, fmt.Errorf("melody sequences out of sync: %d notes, %d rhythms, %d dynamics",
			len(mel.Notes), len(mel.Rhythms), len(mel.Dynamics))
	}

	events := make([]NoteEvent, 0, len(mel.Notes))
	current := start
	for i, note := range mel.Notes {
		pitch, err := pitchOf(note)
		if err != nil {
			return nil, 0, err
		}
		vel, err := velocityOf(mel.Dynamics[i])
		if err != nil {
			return nil, 0, err
		}
		end := current + mel.Rhythms[i]
		events = append(events, NoteEvent{Pitch: pitch, Velocity: vel, Start: current, End: end})
		current = end
	}
	return events, current, nil
}

// Chord renders a chord: every member note shares one interval and the
// cursor advances by the chord's rhythm exactly once.
func Chord(c *model.Chord, start float64) ([]NoteEvent, float64, error) {
	vel, err := velocityOf(c.Dynamic)
	if err != nil {
		return nil, 0, err
	}

	end := start + c.Rhythm
	events := make([]NoteEvent, 0, len(c.Notes))
	for _, note := range c.Notes {
		pitch, err := pitchOf(note)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, NoteEvent{Pitch: pitch, Velocity: vel, Start: start, End: end})
	}
	return events, end, nil
}

// Segments renders an ordered mixed sequence sharing one track: the
// cursor threads across segments so start times stay monotonic
// non-decreasing.
func Segments(segs []model.Segment, start float64) ([]NoteEvent, float64, error) {
	var events []NoteEvent
	current := start
	for _, seg := range segs {
		var (
			evts []NoteEvent
			err  error
		)
		switch s := seg.(type) {
		case *model.Melody:
			evts, current, err = Melody(s, current)
		case *model.Chord:
			evts, current, err = Chord(s, current)
		}
		if err != nil {
			return nil, 0, err
		}
		events = append(events, evts...)
	}
	return events, current, nil
}

// Part renders a named part into a track starting at time zero.
func Part(p model.Part) (Track, error) {
	program, err := InstrumentProgram(p.Instrument())
	if err != nil {
		return Track{}, err
	}
	events, _, err := Segments(p.Segments, 0)
	if err != nil {
		return Track{}, fmt.Errorf("part %q: %w", p.Name, err)
	}
	return Track{
		Name:       p.Name,
		Instrument: p.Instrument(),
		Program:    program,
		Events:     events,
	}, nil
}

// Composition renders every part in insertion order. A composition
// with no parts cannot be rendered.
func Composition(comp *model.Composition) ([]Track, error) {
	parts := comp.Parts()
	if len(parts) == 0 {
		return nil, model.ErrNoParts
	}

	tracks := make([]Track, 0, len(parts))
	for _, p := range parts {
		t, err := Part(p)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// InstrumentProgram maps an instrument name to its GM program number.
// Matching ignores case and punctuation.
func InstrumentProgram(name string) (uint8, error) {
	want := normalizeName(name)
	for i, inst := range constants.Instruments {
		if normalizeName(inst) == want {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("unknown instrument: %q", name)
}

func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
