// Package export implements the non-interactive export command.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MusikPolice/ofxcat-sub001/cmd/root"
	"github.com/MusikPolice/ofxcat-sub001/internal/cleaner"
	"github.com/MusikPolice/ofxcat-sub001/internal/engine"
	"github.com/MusikPolice/ofxcat-sub001/internal/export"
	"github.com/MusikPolice/ofxcat-sub001/internal/feed"
	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

var (
	inputFile  string
	outputFile string
)

// Cmd is the export command. It categorizes a statement file without
// prompting: exact and top fuzzy matches are applied automatically and
// everything else lands in UNKNOWN.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Categorize a statement file non-interactively and write CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("opening statement file: %w", err)
		}
		defer in.Close()

		var out io.Writer = cmd.OutOrStdout()
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return run(in, out)
	},
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "statement records CSV file")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output CSV file (default stdout)")
	_ = Cmd.MarkFlagRequired("input")
}

func run(in io.Reader, out io.Writer) error {
	records, err := feed.Read(in, root.Log)
	if err != nil {
		return err
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}

	eng := engine.New(cleaner.NewRegistry(), s, engine.AutoPrompter{}, root.Log, root.Cfg.Matching.Limit)
	categorized := make([]models.CategorizedTransaction, 0, len(records))
	for _, record := range records {
		ct, err := eng.Categorize(record)
		if err != nil {
			return err
		}
		categorized = append(categorized, ct)
	}
	if err := eng.Flush(); err != nil {
		return err
	}
	return export.Write(out, categorized)
}
