package generate

import (
	"github.com/calyptra/aleamidi/constants"
	"github.com/calyptra/aleamidi/timing"
	"github.com/calyptra/aleamidi/util"
)

// NewRhythm picks a single symbolic rhythm, unscaled.
func (g *Generate) NewRhythm() float64 {
	return choice(g, constants.Rhythms)
}

// NewRhythms generates a rhythm sequence of exactly the requested
// length. Each draw has a 50% chance of extending into a run capped by
// the repetition limit for the total; an in-progress run is truncated
// the instant the target is hit. A non-positive total picks a default
// count; a positive tempo other than the base scales the result to
// seconds. Source rhythms default to the palette.
func (g *Generate) NewRhythms(total int, tempo float64, source []float64) []float64 {
	if total <= 0 {
		total = g.between(constants.MinRhythms, constants.MaxRhythms)
	}
	if source == nil {
		source = constants.Rhythms
	}

	var rhythms []float64
	for len(rhythms) < total {
		r := choice(g, source)

		if g.coin() {
			limit := g.repetitionLimit(total)
			reps := g.between(1, limit)
			for i := 0; i < reps && len(rhythms) < total; i++ {
				rhythms = append(rhythms, r)
			}
		} else {
			rhythms = append(rhythms, r)
		}
	}

	if tempo > 0 && tempo != constants.BaseTempo {
		rhythms = timing.ScaleAllToTempo(tempo, rhythms, false)
	}
	return rhythms
}

// repetitionLimit derives the run cap from the target length. total is
// validated by the callers, so the band lookup cannot fail.
func (g *Generate) repetitionLimit(total int) int {
	limit, err := timing.RepetitionLimit(total)
	if err != nil {
		return 1
	}
	return limit
}

// NewDynamic picks a single velocity. With rests allowed, half the
// draws are rests.
func (g *Generate) NewDynamic(allowRests bool) int {
	if allowRests && g.coin() {
		return constants.Rest
	}
	return choice(g, constants.Dynamics)
}

// NewDynamics generates a velocity sequence of exactly the requested
// length with the same run-extension behavior as NewRhythms. Rest runs
// are capped at 2 regardless of the computed limit.
func (g *Generate) NewDynamics(total int, allowRests bool) []int {
	if total <= 0 {
		total = g.between(constants.MinDynamics, constants.MaxDynamics)
	}

	var dynamics []int
	for len(dynamics) < total {
		d := g.NewDynamic(allowRests)

		if g.coin() {
			limit := g.repetitionLimit(total)
			if d == constants.Rest {
				limit = util.Min(limit, 2)
			}
			reps := g.between(1, limit)
			for i := 0; i < reps && len(dynamics) < total; i++ {
				dynamics = append(dynamics, d)
			}
		} else {
			dynamics = append(dynamics, d)
		}
	}
	return dynamics
}
