package constants

// Scales maps mode/scale names to root-position pitch classes.
var Scales = map[string][]int{
	"Major":            {0, 2, 4, 5, 7, 9, 11},
	"Natural Minor":    {0, 2, 3, 5, 7, 8, 10},
	"Harmonic Minor":   {0, 2, 3, 5, 7, 8, 11},
	"Melodic Minor":    {0, 2, 3, 5, 7, 9, 11},
	"Dorian":           {0, 2, 3, 5, 7, 9, 10},
	"Phrygian":         {0, 1, 3, 5, 7, 8, 10},
	"Lydian":           {0, 2, 4, 6, 7, 9, 11},
	"Mixolydian":       {0, 2, 4, 5, 7, 9, 10},
	"Locrian":          {0, 1, 3, 5, 6, 8, 10},
	"Whole Tone":       {0, 2, 4, 6, 8, 10},
	"Major Pentatonic": {0, 2, 4, 7, 9},
	"Minor Pentatonic": {0, 3, 5, 7, 10},
	"Blues":            {0, 3, 5, 6, 7, 10},
	"Octatonic HW":     {0, 1, 3, 4, 6, 7, 9, 10},
	"Octatonic WH":     {0, 2, 3, 5, 6, 8, 9, 11},
	"Hungarian Minor":  {0, 2, 3, 6, 7, 8, 11},
	"Phrygian Dominant": {0, 1, 4, 5, 7, 8, 10},
}

// Sets maps Forte numbers to prime-form pitch-class sets.
var Sets = map[string][]int{
	"3-1":  {0, 1, 2},
	"3-2":  {0, 1, 3},
	"3-3":  {0, 1, 4},
	"3-4":  {0, 1, 5},
	"3-5":  {0, 1, 6},
	"3-6":  {0, 2, 4},
	"3-7":  {0, 2, 5},
	"3-8":  {0, 2, 6},
	"3-9":  {0, 2, 7},
	"3-10": {0, 3, 6},
	"3-11": {0, 3, 7},
	"3-12": {0, 4, 8},
	"4-1":  {0, 1, 2, 3},
	"4-3":  {0, 1, 3, 4},
	"4-9":  {0, 1, 6, 7},
	"4-19": {0, 1, 4, 8},
	"4-25": {0, 2, 6, 8},
	"4-28": {0, 3, 6, 9},
	"5-1":  {0, 1, 2, 3, 4},
	"5-15": {0, 1, 2, 6, 8},
	"5-33": {0, 2, 4, 6, 8},
	"5-35": {0, 2, 4, 7, 9},
	"6-20": {0, 1, 4, 5, 8, 9},
	"6-32": {0, 2, 4, 5, 7, 9},
	"6-35": {0, 2, 4, 6, 8, 10},
	"7-35": {0, 1, 3, 5, 6, 8, 10},
	"8-28": {0, 1, 3, 4, 6, 7, 9, 10},
}

// Arpeggios maps chord qualities to one-octave arpeggio pitch classes.
var Arpeggios = map[string][]int{
	"major":          {0, 4, 7},
	"minor":          {0, 3, 7},
	"diminished":     {0, 3, 6},
	"augmented":      {0, 4, 8},
	"major 7th":      {0, 4, 7, 11},
	"minor 7th":      {0, 3, 7, 10},
	"dominant 7th":   {0, 4, 7, 10},
	"half-dim 7th":   {0, 3, 6, 10},
	"diminished 7th": {0, 3, 6, 9},
}
