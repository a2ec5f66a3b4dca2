package midi

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

// Analysis summarizes a parsed SMF file.
type Analysis struct {
	TempoBPM    float64
	TotalNotes  int
	PitchCounts map[int]int // pitch class -> sounding note count
}

// Analyze walks every track of a parsed file, counting sounding notes
// per pitch class and picking up the first tempo marking.
func Analyze(s *smf.SMF) Analysis {
	res := Analysis{PitchCounts: make(map[int]int)}
	for pc := 0; pc < 12; pc++ {
		res.PitchCounts[pc] = 0
	}

	for _, track := range s.Tracks {
		for _, ev := range track {
			var bpm float64
			var channel, key, velocity uint8
			switch {
			case ev.Message.GetMetaTempo(&bpm):
				if res.TempoBPM == 0 {
					res.TempoBPM = bpm
				}
			case ev.Message.GetNoteOn(&channel, &key, &velocity):
				if velocity > 0 {
					res.PitchCounts[int(key)%12]++
					res.TotalNotes++
				}
			}
		}
	}
	return res
}
