package constants

import "fmt"

// PitchClasses are the twelve chromatic pitch-class names, sharp
// spelled, indexed by pitch-class integer (0 = C).
var PitchClasses = []string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Notes is the 88-key chromatic reference table, A0 through C8.
// Notes[i] corresponds to MIDI note number i + MinMidiNote.
var Notes = buildNotes()

func buildNotes() []string {
	var res []string
	for n := MinMidiNote; n <= MaxMidiNote; n++ {
		// MIDI 12 is C0, so octave = n/12 - 1
		res = append(res, fmt.Sprintf("%s%d", PitchClasses[n%12], n/12-1))
	}
	return res
}
