package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calyptra/aleamidi/constants"
	"github.com/calyptra/aleamidi/midi"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Parses a MIDI file and reports its tempo and pitch-class counts.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	s, err := midi.ReadFile(path)
	if err != nil {
		return err
	}

	analysis := midi.Analyze(s)
	fmt.Printf("tempo: %g bpm\n", analysis.TempoBPM)
	fmt.Printf("total notes: %d\n", analysis.TotalNotes)
	for pc := 0; pc < 12; pc++ {
		fmt.Printf("%-2s: %d\n", constants.PitchClasses[pc], analysis.PitchCounts[pc])
	}
	return nil
}
