// Package timing converts symbolic durations, authored at the
// reference tempo (quarter note = 1.0 at 60 BPM), into tempo-accurate
// seconds and back.
package timing

import (
	"fmt"
	"math"

	"github.com/calyptra/aleamidi/constants"
)

// round3 caps results at three decimal places so notated durations
// stay legible. Round-trip tests depend on this exact rounding.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// ScaleToTempo converts a symbolic duration to seconds at the given
// tempo by multiplying by 60/tempo. With revert set it divides
// instead, recovering the symbolic value.
func ScaleToTempo(tempo, dur float64, revert bool) float64 {
	diff := constants.BaseTempo / tempo
	if revert {
		return round3(dur / diff)
	}
	return round3(dur * diff)
}

// ScaleAllToTempo applies ScaleToTempo element-wise, returning a new
// slice.
func ScaleAllToTempo(tempo float64, durs []float64, revert bool) []float64 {
	res := make([]float64, len(durs))
	for i, d := range durs {
		res[i] = ScaleToTempo(tempo, d, revert)
	}
	return res
}

// RepetitionLimit returns the maximum run length a generated value may
// repeat for, as a fixed proportion of the total sequence length.
// Longer sequences tolerate proportionally shorter runs.
func RepetitionLimit(total int) (int, error) {
	if total < 1 {
		return 0, fmt.Errorf("total cannot be less than 1, got %d", total)
	}

	var limit int
	switch {
	case total <= 10:
		limit = 3
	case total <= 100:
		limit = int(math.Floor(float64(total) * 0.2))
	case total <= 300:
		limit = int(math.Floor(float64(total) * 0.075))
	case total <= 500:
		limit = int(math.Floor(float64(total) * 0.05))
	case total <= 700:
		limit = int(math.Floor(float64(total) * 0.035))
	case total <= 1000:
		limit = int(math.Floor(float64(total) * 0.02))
	default:
		limit = int(math.Floor(float64(total) * 0.001))
	}

	if limit < 1 {
		limit = 1
	}
	return limit, nil
}
