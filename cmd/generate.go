package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calyptra/aleamidi/config"
	"github.com/calyptra/aleamidi/generate"
	"github.com/calyptra/aleamidi/logger"
	"github.com/calyptra/aleamidi/mapping"
	"github.com/calyptra/aleamidi/midi"
	"github.com/calyptra/aleamidi/report"
	"github.com/calyptra/aleamidi/words"
)

var (
	genSeed  int64
	genData  string
	genType  string
	genOut   string
	genTitle string
)

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 = time-based)")
	generateCmd.Flags().StringVar(&genData, "data", "", "raw data to map onto notes")
	generateCmd.Flags().StringVar(&genType, "data-type", "chars", "data interpretation: chars or hex")
	generateCmd.Flags().StringVar(&genOut, "out", "", "output directory (default from env)")
	generateCmd.Flags().StringVar(&genTitle, "title", "", "composition title (default generated)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a composition and writes a MIDI file",
	Long:  `Generates a mixed-duet composition and writes it out as a MIDI file with a text summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func runGenerate() error {
	log := logger.New()
	defer log.Sync()

	cfg := config.Load()
	outDir := genOut
	if outDir == "" {
		outDir = cfg.OutDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	g := generate.NewRandom()
	if genSeed != 0 {
		g = generate.New(genSeed)
	}
	if cfg.WordListURL != "" {
		g.SetTitleSource(words.NewRemote(cfg.WordListURL))
	}

	data, err := mapData(genData, genType)
	if err != nil {
		return err
	}

	comp, err := g.NewComposition(data)
	if err != nil {
		return err
	}
	if genTitle != "" {
		comp.Title = genTitle
		comp.MidiFileName = genTitle + ".mid"
		comp.TxtFileName = genTitle + ".txt"
	}

	midiPath := filepath.Join(outDir, comp.MidiFileName)
	if err := midi.Export(comp, midiPath); err != nil {
		return err
	}
	if err := report.Write(comp, filepath.Join(outDir, comp.TxtFileName)); err != nil {
		return err
	}

	log.Infow("composition written",
		"title", comp.Title,
		"composer", comp.Composer,
		"tempo", comp.Tempo,
		"parts", len(comp.Parts()),
		"file", midiPath,
	)
	return nil
}

func mapData(raw, dataType string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	switch dataType {
	case "chars":
		return mapping.FromChars(raw), nil
	case "hex":
		return mapping.FromHex(raw)
	default:
		return nil, fmt.Errorf("unsupported data type: %q", dataType)
	}
}
