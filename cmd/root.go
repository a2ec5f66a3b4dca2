package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aleamidi",
	Short: "Procedural MIDI composition",
	Long:  `aleamidi generates symbolic musical material and renders it to standard MIDI files.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
