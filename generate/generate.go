// Package generate is the stochastic engine. A Generate owns a single
// seedable random source; every random decision in a generation
// session flows through it, so the same seed always yields the same
// material.
package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/calyptra/aleamidi/constants"
	"github.com/calyptra/aleamidi/model"
	"github.com/calyptra/aleamidi/words"
)

// Untitled is the title used when the word-list source is unavailable.
const Untitled = "untitled"

// Generate produces scales, notes, rhythms, dynamics, chords, and full
// melodic lines. Not safe for concurrent use; each session owns its
// generator.
type Generate struct {
	rng    *rand.Rand
	titles words.Source
}

// New returns a generator seeded for reproducible output.
func New(seed int64) *Generate {
	return &Generate{
		rng:    rand.New(rand.NewSource(seed)),
		titles: words.NewRemote(""),
	}
}

// NewRandom returns a time-seeded generator.
func NewRandom() *Generate {
	return New(time.Now().UnixNano())
}

// SetTitleSource swaps the word source used for titles.
func (g *Generate) SetTitleSource(src words.Source) {
	g.titles = src
}

// Rand exposes the owned source for transforms that shuffle or slice.
func (g *Generate) Rand() *rand.Rand { return g.rng }

// between returns a uniform int in [a, b].
func (g *Generate) between(a, b int) int {
	return a + g.rng.Intn(b-a+1)
}

// coin returns true half the time.
func (g *Generate) coin() bool {
	return g.rng.Intn(2) == 0
}

func choice[T any](g *Generate, s []T) T {
	return s[g.rng.Intn(len(s))]
}

// NewTitle builds a title from 2-4 random words. If the word source
// fails the title degrades to Untitled; titling never aborts
// generation.
func (g *Generate) NewTitle() string {
	list, err := g.titles.Words()
	if err != nil {
		return Untitled
	}
	count := g.between(1, 3) + 1
	picked := make([]string, count)
	for i := range picked {
		picked[i] = choice(g, list)
	}
	return strings.Join(picked, " ")
}

// NewComposer invents a composer name.
func (g *Generate) NewComposer() string {
	return choice(g, words.FirstNames) + " " + choice(g, words.LastNames)
}

// NewTempo picks a tempo from the metronome list.
func (g *Generate) NewTempo() float64 {
	return choice(g, constants.Tempos)
}

// NewInstrument picks a pitched, non-percussive instrument.
func (g *Generate) NewInstrument() string {
	return constants.Instruments[g.between(0, constants.MelodicInstrumentEnd)]
}

// NewInstruments picks a list of pitched instruments.
func (g *Generate) NewInstruments(total int) []string {
	res := make([]string, total)
	for i := range res {
		res[i] = g.NewInstrument()
	}
	return res
}

// NewNote picks a random note between octaves 1 and 7.
func (g *Generate) NewNote() string {
	return fmt.Sprintf("%s%d", choice(g, constants.PitchClasses), g.between(1, 7))
}

// ChooseNote picks one note from a scale.
func (g *Generate) ChooseNote(scale []string) string {
	return choice(g, scale)
}

// ChooseNotes picks total notes from a scale with replacement.
func (g *Generate) ChooseNotes(scale []string, total int) []string {
	res := make([]string, total)
	for i := range res {
		res[i] = choice(g, scale)
	}
	return res
}

// InitComposition builds a composition shell. A zero tempo means
// "pick one"; an explicit tempo outside the accepted bound is an
// error. Empty title or composer are generated.
func (g *Generate) InitComposition(tempo float64, title, composer string) (*model.Composition, error) {
	comp := &model.Composition{}

	switch {
	case tempo == 0:
		comp.Tempo = g.NewTempo()
	case tempo < constants.MinTempo || tempo > constants.MaxTempo:
		return nil, fmt.Errorf("tempo must be between %v and %v, got %v",
			constants.MinTempo, constants.MaxTempo, tempo)
	default:
		comp.Tempo = tempo
	}

	if title == "" {
		title = g.NewTitle()
	}
	if composer == "" {
		composer = g.NewComposer()
	}

	comp.Title = title
	comp.Composer = composer
	comp.Date = time.Now().Format("02-Jan-06 15:04:05")
	comp.MidiFileName = title + ".mid"
	comp.TxtFileName = title + ".txt"
	return comp, nil
}
