// Package constants holds the read-only reference data every other
// package draws from: the chromatic note table, scale and set tables,
// rhythm/dynamic/tempo palettes, the GM instrument list, and the
// numeric bounds used by generation.
package constants

// Rest is the dynamic value denoting silence.
const Rest = 0

// BaseTempo is the reference tempo all symbolic rhythms are authored
// at: quarter note = 1.0 time-unit at 60 BPM.
const BaseTempo = 60.0

// Tempo bounds accepted on explicit construction paths.
const (
	MinTempo = 40.0
	MaxTempo = 240.0
)

// MIDI note numbers covered by the 88-key chromatic table (A0..C8).
const (
	MinMidiNote = 21
	MaxMidiNote = 108
)

// Transposition distances in semitones.
const (
	MinTransposition = 1
	MaxTransposition = 11
)

// Default generation counts and sizes.
const (
	MinNotes      = 12
	MaxNotes      = 50
	MinRhythms    = 12
	MaxRhythms    = 50
	MinDynamics   = 12
	MaxDynamics   = 50
	MinChords     = 8
	MaxChords     = 16
	MinScales     = 3
	MaxScales     = 7
	MinScaleSize  = 5
	MaxScaleSize  = 8
	MinChordNotes = 2
	MaxChordNotes = 9
	MinOctave     = 2
	MaxOctave     = 5
)

// Octave window used when building multi-octave source scales.
const (
	GenerationOctaveStart = 2
	GenerationOctaveEnd   = 5
)

// SourceScaleLen is how many notes a full multi-octave source scale spans.
const SourceScaleLen = 28

// Beats holds the beat-unit denominators a meter may use.
var Beats = []int{1, 2, 4, 8, 16, 32}

// Rhythms is the symbolic duration palette, in quarter-note units at
// BaseTempo: whole down to thirty-second, with dotted values.
var Rhythms = []float64{4.0, 3.0, 2.0, 1.5, 1.0, 0.75, 0.5, 0.375, 0.25, 0.125}

// Dynamics is the velocity palette (ppp..fff). Rest (0) is never in
// the palette; it is injected separately when rests are allowed.
var Dynamics = []int{20, 28, 36, 44, 52, 60, 68, 76, 84, 92, 100, 108, 116, 124}

// Tempos is the standard metronome marking list, 40-208 BPM.
var Tempos = []float64{
	40, 42, 44, 46, 48, 50, 52, 54, 56, 58,
	60, 63, 66, 69, 72, 76, 80, 84, 88, 92,
	96, 100, 104, 108, 112, 116, 120, 126, 132, 138,
	144, 152, 160, 168, 176, 184, 192, 200, 208,
}

// Alphabet maps letters to index numbers for char-driven note mapping.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"
