package model

import "errors"

// Segment is one renderable unit on a track: a *Melody or a *Chord.
// The interface is closed; rendering type-switches over it are
// exhaustive.
type Segment interface {
	isSegment()
}

// Part is a named track: one or more segments played back to back on
// a single timeline.
type Part struct {
	Name     string
	Segments []Segment
}

// Instrument returns the instrument of the part's first segment.
func (p Part) Instrument() string {
	if len(p.Segments) == 0 {
		return ""
	}
	switch s := p.Segments[0].(type) {
	case *Melody:
		return s.Instrument
	case *Chord:
		return s.Instrument
	}
	return ""
}

// ErrNoParts is returned when an empty composition is exported.
var ErrNoParts = errors.New("composition has no parts")

// Composition is a titled collection of parts. Part order is
// insertion order and becomes track order on export.
type Composition struct {
	Title    string
	Composer string
	Date     string
	Tempo    float64
	Ensemble string

	MidiFileName string
	TxtFileName  string

	parts []Part
}

// AddPart appends a named part built from the given segments.
func (c *Composition) AddPart(name string, segs ...Segment) {
	c.parts = append(c.parts, Part{Name: name, Segments: segs})
}

// Parts returns the parts in insertion order.
func (c *Composition) Parts() []Part { return c.parts }
