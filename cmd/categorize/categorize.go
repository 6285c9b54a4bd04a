// Package categorize implements the interactive categorization command.
package categorize

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MusikPolice/ofxcat-sub001/cmd/root"
	"github.com/MusikPolice/ofxcat-sub001/internal/cleaner"
	"github.com/MusikPolice/ofxcat-sub001/internal/engine"
	"github.com/MusikPolice/ofxcat-sub001/internal/feed"
	"github.com/MusikPolice/ofxcat-sub001/internal/logging"
	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

var inputFile string

// Cmd is the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Interactively categorize the transactions in a statement file",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("opening statement file: %w", err)
		}
		defer f.Close()
		return run(f, os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "statement records CSV file")
	_ = Cmd.MarkFlagRequired("input")
}

func run(statements io.Reader, in io.Reader, out io.Writer) error {
	records, err := feed.Read(statements, root.Log)
	if err != nil {
		return err
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}

	prompter := &terminalPrompter{in: bufio.NewScanner(in), out: out}
	eng := engine.New(cleaner.NewRegistry(), s, prompter, root.Log, root.Cfg.Matching.Limit)

	categorized := 0
	for _, record := range records {
		ct, err := eng.Categorize(record)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %s  %s -> %s\n",
			ct.Transaction.Date.Format("2006-01-02"),
			ct.Transaction.Amount.StringFixed(2),
			ct.Transaction.Description,
			ct.Category.Name)
		categorized++
	}

	if err := eng.Flush(); err != nil {
		return err
	}
	root.Log.Info("categorized transactions",
		logging.Field{Key: "count", Value: categorized})
	return nil
}

// terminalPrompter resolves ambiguous matches over stdin/stdout. It is the
// thinnest possible stand-in for the interactive prompt collaborator.
type terminalPrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *terminalPrompter) Choose(tx models.Transaction, candidates []*models.Category) (*models.Category, error) {
	fmt.Fprintf(p.out, "\n%s (%s)\n", tx.Description, tx.Amount.StringFixed(2))
	for i, c := range candidates {
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, c.Name)
	}
	fmt.Fprintf(p.out, "Pick a category, or press enter to create a new one: ")

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	answer := strings.TrimSpace(p.in.Text())
	if answer == "" {
		return nil, nil
	}
	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > len(candidates) {
		return nil, nil
	}
	return candidates[choice-1], nil
}

func (p *terminalPrompter) NewCategory(tx models.Transaction) (string, error) {
	fmt.Fprintf(p.out, "New category for %q: ", tx.Description)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}
