// Package bar implements the fixed-capacity measure: a time-accounting
// container that consumes a melody's symbolic stream until the measure
// is exactly full, splitting the boundary note across the bar line.
package bar

import (
	"fmt"

	"github.com/calyptra/aleamidi/constants"
	"github.com/calyptra/aleamidi/model"
	"github.com/calyptra/aleamidi/timing"
	"github.com/calyptra/aleamidi/util"
)

// Meter is a (beats-per-bar, beat-unit) pair.
type Meter struct {
	Num int
	Den int
}

// Valid reports whether the meter is rational: positive numerator and
// a denominator from the allowed beat-duration set.
func (m Meter) Valid() bool {
	if m.Num <= 0 {
		return false
	}
	for _, b := range constants.Beats {
		if m.Den == b {
			return true
		}
	}
	return false
}

// beatDuration is the symbolic duration of one denominator unit:
// quarter = 1.0, so a unit of n is 4/n.
func (m Meter) beatDuration() float64 {
	return 4.0 / float64(m.Den)
}

// Bar is a single measure. Length is fixed at construction and never
// recomputed; CurrentBeat tracks time already committed.
type Bar struct {
	Meter      Meter
	Tempo      float64
	Instrument string
	Length     float64

	CurrentBeat float64
	Full        bool

	Notes    []string
	Rhythms  []float64
	Dynamics []int
}

// New constructs a bar for the given meter and tempo. An empty
// instrument defaults to piano. Invalid meters, tempos outside the
// accepted bound, and unknown instruments fail immediately.
func New(meter Meter, tempo float64, instrument string) (*Bar, error) {
	if !meter.Valid() {
		return nil, fmt.Errorf("invalid meter: %d/%d", meter.Num, meter.Den)
	}
	if tempo < constants.MinTempo || tempo > constants.MaxTempo {
		return nil, fmt.Errorf("tempo must be between %v and %v, got %v",
			constants.MinTempo, constants.MaxTempo, tempo)
	}
	if instrument == "" {
		instrument = constants.Instruments[0]
	} else if !knownInstrument(instrument) {
		return nil, fmt.Errorf("unsupported instrument: %q", instrument)
	}

	return &Bar{
		Meter:      meter,
		Tempo:      tempo,
		Instrument: instrument,
		Length:     float64(meter.Num) * timing.ScaleToTempo(tempo, meter.beatDuration(), false),
	}, nil
}

func knownInstrument(name string) bool {
	for _, i := range constants.Instruments {
		if i == name {
			return true
		}
	}
	return false
}

// SpaceLeft returns the uncommitted time remaining in the bar.
func (b *Bar) SpaceLeft() float64 {
	return b.Length - b.CurrentBeat
}

// Duration returns the time committed so far. Equals Length only once
// the bar is full.
func (b *Bar) Duration() float64 {
	return util.Sum(b.Rhythms)
}

// Clear resets every field to its zero value, including Length. The
// bar must be reconstructed before reuse.
func (b *Bar) Clear() {
	*b = Bar{}
}

// AddNotes consumes (note, rhythm, dynamic) triples from the front of
// the melody until the bar is exactly full or the melody is exhausted.
// The input melody is never mutated; the returned remainder holds
// whatever was not committed.
//
// When a rhythm crosses the bar line, the note is committed with its
// rhythm reduced by the overflow so the bar sums to Length exactly,
// and the remainder re-attacks the same pitch with the overflow as its
// rhythm. MIDI does not tie across bar lines, so a re-attack is the
// intended rendering.
func (b *Bar) AddNotes(mel *model.Melody) (*model.Melody, error) {
	if len(mel.Notes) != len(mel.Rhythms) || len(mel.Notes) != len(mel.Dynamics) {
		return nil, fmt.Errorf("melody sequences out of sync: %d notes, %d rhythms, %d dynamics",
			len(mel.Notes), len(mel.Rhythms), len(mel.Dynamics))
	}

	b.Tempo = mel.Tempo
	b.Instrument = mel.Instrument

	i := 0
	for ; i < mel.Len() && !b.Full; i++ {
		b.CurrentBeat += mel.Rhythms[i]

		if b.CurrentBeat < b.Length {
			b.Notes = append(b.Notes, mel.Notes[i])
			b.Rhythms = append(b.Rhythms, mel.Rhythms[i])
			b.Dynamics = append(b.Dynamics, mel.Dynamics[i])
			continue
		}

		overflow := b.CurrentBeat - b.Length
		b.Notes = append(b.Notes, mel.Notes[i])
		b.Rhythms = append(b.Rhythms, mel.Rhythms[i]-overflow)
		b.Dynamics = append(b.Dynamics, mel.Dynamics[i])
		b.CurrentBeat = b.Length
		b.Full = true

		if overflow == 0 {
			return remainderFrom(mel, i+1), nil
		}
		// the split note stays in the remainder carrying the overflow
		remainder := remainderFrom(mel, i)
		remainder.Rhythms[0] = overflow
		return remainder, nil
	}

	return remainderFrom(mel, i), nil
}

// remainderFrom builds a fresh melody from index i onward, keeping
// tempo, instrument, and provenance.
func remainderFrom(mel *model.Melody, i int) *model.Melody {
	rem := model.NewMelody(mel.Tempo, mel.Instrument)
	rem.Notes = append([]string(nil), mel.Notes[i:]...)
	rem.Rhythms = append([]float64(nil), mel.Rhythms[i:]...)
	rem.Dynamics = append([]int(nil), mel.Dynamics[i:]...)
	rem.Info = append([]string(nil), mel.Info...)
	rem.PCS = append([]int(nil), mel.PCS...)
	rem.SourceData = append([]int(nil), mel.SourceData...)
	rem.SourceNotes = append([]string(nil), mel.SourceNotes...)
	return rem
}
