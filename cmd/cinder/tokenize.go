package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cinder/internal/diag"
	"cinder/internal/diagfmt"
	"cinder/internal/lexer"
	"cinder/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.cin",
	Short: "Tokenize a cinder source file",
	Long:  `Tokenize breaks down a cinder source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	bag := diag.NewBag(maxDiags)
	tokens := lexer.Tokenize(fs.Get(id), diag.BagReporter{Bag: bag})

	// Lexical diagnostics go to stderr; tokens still print.
	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     isTerminal(os.Stderr),
			ShowNotes: true,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, fs)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens, fs)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
