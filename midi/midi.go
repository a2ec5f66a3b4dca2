// Package midi is the boundary to the SMF file format: writing
// rendered compositions out and reading existing files back in for
// inspection. Byte-level encoding is delegated to gomidi.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/calyptra/aleamidi/model"
	"github.com/calyptra/aleamidi/render"
)

// ticksPerQuarter is the SMF resolution used for exported files.
const ticksPerQuarter = 960

// ReadFile parses an SMF file from disk.
func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the gomidi reader panics on some malformed files
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

// Export renders a composition and writes it to path as a format-1
// SMF: a conductor track carrying tempo and titling, then one track
// per part in insertion order. A composition with no parts is an
// error and no file is created.
func Export(comp *model.Composition, path string) error {
	tracks, err := render.Composition(comp)
	if err != nil {
		return err
	}
	data, err := Encode(tracks, comp.Tempo, comp.Title, comp.Composer)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode serializes rendered tracks into SMF bytes.
func Encode(tracks []render.Track, tempo float64, title, composer string) ([]byte, error) {
	clock := smf.MetricTicks(ticksPerQuarter)
	s := smf.New()
	s.TimeFormat = clock

	var conductor smf.Track
	conductor.Add(0, smf.MetaTrackSequenceName(title))
	if composer != "" {
		conductor.Add(0, smf.MetaCopyright(composer))
	}
	conductor.Add(0, smf.MetaTempo(tempo))
	conductor.Close(0)
	s.Add(conductor)

	for i, t := range tracks {
		tr, err := encodeTrack(t, channelFor(i), tempo, clock)
		if err != nil {
			return nil, err
		}
		s.Add(tr)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// channelFor assigns channels sequentially, skipping the GM percussion
// channel.
func channelFor(trackIdx int) uint8 {
	ch := trackIdx % 15
	if ch >= 9 {
		ch++
	}
	return uint8(ch)
}

// moment is one on or off boundary of a rendered event, in seconds.
type moment struct {
	at    float64
	off   bool
	pitch uint8
	vel   uint8
}

func encodeTrack(t render.Track, channel uint8, tempo float64, clock smf.MetricTicks) (smf.Track, error) {
	var tr smf.Track
	tr.Add(0, smf.MetaInstrument(t.Instrument))
	tr.Add(0, smf.MetaTrackSequenceName(t.Name))
	tr.Add(0, midi.ProgramChange(channel, t.Program))

	moments := make([]moment, 0, 2*len(t.Events))
	for _, e := range t.Events {
		if e.End < e.Start {
			return nil, fmt.Errorf("event on %q ends before it starts: %v < %v", t.Name, e.End, e.Start)
		}
		moments = append(moments, moment{at: e.Start, pitch: e.Pitch, vel: e.Velocity})
		moments = append(moments, moment{at: e.End, off: true, pitch: e.Pitch})
	}

	// offs sort before ons at the same instant so a re-attacked pitch
	// is released before it restarts
	sort.SliceStable(moments, func(i, j int) bool {
		if moments[i].at != moments[j].at {
			return moments[i].at < moments[j].at
		}
		return moments[i].off && !moments[j].off
	})

	var prevTicks uint32
	for _, m := range moments {
		abs := clock.Ticks(tempo, time.Duration(m.at*float64(time.Second)))
		delta := abs - prevTicks
		prevTicks = abs
		if m.off {
			tr.Add(delta, midi.NoteOff(channel, m.pitch))
		} else {
			tr.Add(delta, midi.NoteOn(channel, m.pitch, m.vel))
		}
	}
	tr.Close(0)
	return tr, nil
}
