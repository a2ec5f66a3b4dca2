// Package report writes the plain-text companion summary for an
// exported composition.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/calyptra/aleamidi/model"
)

// Text builds a human-readable summary of a composition: titling,
// tempo, and per-part provenance.
func Text(comp *model.Composition) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", comp.Title)
	fmt.Fprintf(&b, "composed by %s\n", comp.Composer)
	if comp.Date != "" {
		fmt.Fprintf(&b, "%s\n", comp.Date)
	}
	fmt.Fprintf(&b, "tempo: %g bpm\n", comp.Tempo)
	if comp.Ensemble != "" {
		fmt.Fprintf(&b, "ensemble: %s\n", comp.Ensemble)
	}

	for _, part := range comp.Parts() {
		fmt.Fprintf(&b, "\n[%s]\n", part.Name)
		for _, seg := range part.Segments {
			switch s := seg.(type) {
			case *model.Melody:
				fmt.Fprintf(&b, "  melody: %d notes, duration %.3fs\n", s.Len(), s.Duration())
				for _, info := range s.Info {
					fmt.Fprintf(&b, "    source: %s\n", info)
				}
			case *model.Chord:
				fmt.Fprintf(&b, "  chord: %d notes, rhythm %.3f, dynamic %d\n",
					len(s.Notes), s.Rhythm, s.Dynamic)
			}
		}
	}
	return b.String()
}

// Write saves the summary next to the MIDI file.
func Write(comp *model.Composition, path string) error {
	return os.WriteFile(path, []byte(Text(comp)), 0644)
}
