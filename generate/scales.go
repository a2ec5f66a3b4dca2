package generate

import (
	"fmt"
	"sort"

	"github.com/calyptra/aleamidi/constants"
	"github.com/calyptra/aleamidi/theory"
)

// PickScale selects a named scale, optionally transposed by a random
// interval in [1,11] semitones (no octave reduction; reduction happens
// when the pitch classes are rendered to names).
// Returns the scale name, its root-position pitch classes, and the
// resulting note names.
func (g *Generate) PickScale(transpose bool, octave int) (string, []int, []string, error) {
	name := choice(g, scaleNames())
	pcs := constants.Scales[name]

	out := pcs
	if transpose {
		out = theory.Transpose(pcs, g.between(1, 11), false)
	}
	notes, err := theory.ToNames(out, octave)
	if err != nil {
		return "", nil, nil, err
	}
	return name, pcs, notes, nil
}

// PickSet selects a named pitch-class set, optionally transposed.
// Returns the Forte number, the prime-form pitch classes, and the
// resulting note names.
func (g *Generate) PickSet(transpose bool, octave int) (string, []int, []string, error) {
	forte := choice(g, setNames())
	pcs := constants.Sets[forte]

	out := pcs
	if transpose {
		out = theory.Transpose(pcs, g.between(1, 11), false)
	}
	notes, err := theory.ToNames(out, octave)
	if err != nil {
		return "", nil, nil, err
	}
	return forte, pcs, notes, nil
}

// NewScale invents a 5-8 note scale from distinct random pitch
// classes, optionally transposed.
func (g *Generate) NewScale(transpose bool, octave int) ([]string, []int, error) {
	total := g.between(constants.MinScaleSize, constants.MaxScaleSize)

	var pcs []int
	seen := make(map[int]bool)
	for len(pcs) < total {
		n := g.between(0, 11)
		if !seen[n] {
			seen[n] = true
			pcs = append(pcs, n)
		}
	}
	sort.Ints(pcs)

	if transpose {
		pcs = theory.Transpose(pcs, g.between(1, 11), false)
	}
	notes, err := theory.ToNames(pcs, octave)
	if err != nil {
		return nil, nil, err
	}
	return notes, pcs, nil
}

// PickRoot draws a root collection at random: a named scale, a named
// set, or an invented scale. Returns the note names and a provenance
// string.
func (g *Generate) PickRoot(transpose bool, octave int) ([]string, string, error) {
	switch g.between(1, 3) {
	case 1:
		name, _, notes, err := g.PickScale(transpose, octave)
		if err != nil {
			return nil, "", err
		}
		return notes, fmt.Sprintf("%s %s", notes[0], name), nil
	case 2:
		forte, _, notes, err := g.PickSet(transpose, octave)
		if err != nil {
			return nil, "", err
		}
		if transpose {
			return notes, fmt.Sprintf("set %s transposed to %s", forte, notes[0]), nil
		}
		return notes, fmt.Sprintf("set %s un-transposed %s", forte, notes[0]), nil
	default:
		notes, pcs, err := g.NewScale(transpose, octave)
		if err != nil {
			return nil, "", err
		}
		return notes, fmt.Sprintf("invented scale: %v pcs: %v", notes, pcs), nil
	}
}

// SourceScale expands a root scale (names without octaves) into a
// fixed-length playable scale cycling octaves 2 through 5.
func (g *Generate) SourceScale(root []string) []string {
	scale := make([]string, 0, constants.SourceScaleLen)
	n := 0
	octave := constants.GenerationOctaveStart

	for len(scale) < constants.SourceScaleLen {
		scale = append(scale, fmt.Sprintf("%s%d", root[n], octave))
		n++
		if n == len(root) {
			octave++
			if octave > constants.GenerationOctaveEnd {
				octave = constants.GenerationOctaveStart
			}
			n = 0
		}
	}
	return scale
}

// SourceScales builds several source scales with their provenance. A
// non-positive total picks a default count.
func (g *Generate) SourceScales(total int) ([][]string, []string, error) {
	if total <= 0 {
		total = g.between(constants.MinScales, constants.MaxScales)
	}

	sources := make([][]string, 0, total)
	var info []string
	for i := 0; i < total; i++ {
		root, rootInfo, err := g.PickRoot(true, 0)
		if err != nil {
			return nil, nil, err
		}
		info = append(info, rootInfo)
		sources = append(sources, g.SourceScale(root))
	}
	return sources, info, nil
}

// NoteResult carries generated notes with their provenance and the
// source scale they were drawn from.
type NoteResult struct {
	Notes  []string
	Info   []string
	Source []string
}

// NewNotes generates melody notes. With data supplied, each value is
// used as an index into the source scale; otherwise notes are sampled
// uniformly with replacement. A nil root draws one at random.
func (g *Generate) NewNotes(data []int, root []string, total int) (NoteResult, error) {
	var res NoteResult
	if len(data) == 0 {
		data = nil
	}
	octave := g.between(constants.GenerationOctaveStart, 3)

	if root == nil {
		picked, info, err := g.PickRoot(true, 0)
		if err != nil {
			return res, err
		}
		root = picked
		res.Info = append(res.Info, info)
	}

	genTotal := total
	if data != nil {
		genTotal = maxInt(data) + 1
	} else if genTotal <= 0 {
		genTotal = g.between(constants.MinNotes-1, constants.MaxNotes-1)
	}

	scale, err := g.buildSourceScale(root, genTotal, octave, &res.Info)
	if err != nil {
		return res, err
	}
	res.Source = scale

	if data == nil {
		pickTotal := total
		if pickTotal <= 0 {
			pickTotal = g.between(3, len(scale))
		}
		res.Notes = g.ChooseNotes(scale, pickTotal)
	} else {
		res.Notes = make([]string, len(data))
		for i, idx := range data {
			res.Notes[i] = scale[idx]
		}
	}
	return res, nil
}

// buildSourceScale cycles the root upward in octave for genTotal
// notes. Whenever the octave climbs past the ceiling, a NEW root is
// drawn and the octave resets, so one source scale may change its
// underlying root mid-stream. That variety injection is deliberate.
func (g *Generate) buildSourceScale(root []string, genTotal, octave int, info *[]string) ([]string, error) {
	scale := make([]string, 0, genTotal)
	n := 0

	for len(scale) < genTotal {
		scale = append(scale, fmt.Sprintf("%s%d", root[n], octave))
		n++
		if n == len(root) {
			octave++
			if octave > constants.GenerationOctaveEnd {
				octave = g.between(constants.GenerationOctaveStart, 3)
				newRoot, rootInfo, err := g.PickRoot(true, 0)
				if err != nil {
					return nil, err
				}
				root = newRoot
				*info = append(*info, rootInfo)
			}
			n = 0
		}
	}
	return scale, nil
}

// DeriveScales builds one variant scale per pitch class of the input,
// each walking upward by random steps of 1-3 semitones.
func (g *Generate) DeriveScales(pcs []int) ([][]string, error) {
	variants := make([][]string, len(pcs))
	for i, pc := range pcs {
		var variant []int
		note := pc
		for len(variant) < len(pcs) {
			note += g.between(1, 3)
			variant = append(variant, note)
		}
		names, err := theory.ToNamesChromatic(variant)
		if err != nil {
			return nil, err
		}
		variants[i] = names
	}
	return variants, nil
}

// PickArpeggio returns the pitch classes outlining a one-octave
// arpeggio of the given quality.
func PickArpeggio(key string) ([]int, error) {
	pcs, ok := constants.Arpeggios[key]
	if !ok {
		return nil, fmt.Errorf("%q is not a valid arpeggio", key)
	}
	return pcs, nil
}

// New12ToneRow returns all twelve pitch classes in random order,
// without repetition.
func (g *Generate) New12ToneRow() []string {
	row := make([]string, 12)
	for i, p := range g.rng.Perm(12) {
		row[i] = constants.PitchClasses[p]
	}
	return row
}

// New12ToneIntervals returns the eleven non-zero transposition
// intervals in random order, without repetition.
func (g *Generate) New12ToneIntervals() []int {
	res := make([]int, 11)
	for i, p := range g.rng.Perm(11) {
		res[i] = p + 1
	}
	return res
}

func scaleNames() []string {
	return sortedKeys(constants.Scales)
}

func setNames() []string {
	return sortedKeys(constants.Sets)
}

// sortedKeys keeps name selection deterministic under a fixed seed;
// map iteration order would break reproducibility.
func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func maxInt(s []int) int {
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
