package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/leandoc/pkg/config"
	"github.com/yaklabco/leandoc/pkg/ldast"
	"github.com/yaklabco/leandoc/pkg/lexer"
	"github.com/yaklabco/leandoc/pkg/parser"
)

type dumpFlags struct {
	tokens bool
	ast    bool
}

func newDumpCommand() *cobra.Command {
	flags := &dumpFlags{}

	cmd := &cobra.Command{
		Use:   "dump <input.adoc>",
		Short: "Dump the token stream or parse tree of a document",
		Long: `Dump the classified token stream or the parse tree of a LeanDoc
document. Both renderings are line oriented and stable, intended for
debugging documents and for golden tests.

Examples:
  leandoc dump doc.adoc           # Parse tree
  leandoc dump --ast doc.adoc     # Parse tree, explicitly
  leandoc dump --tokens doc.adoc  # One classified token per source line`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.tokens, "tokens", false, "print the classified token stream")
	cmd.Flags().BoolVar(&flags.ast, "ast", false, "print the parse tree (default)")
	cmd.MarkFlagsMutuallyExclusive("tokens", "ast")

	return cmd
}

func runDump(cmd *cobra.Command, inputPath string, flags *dumpFlags) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Join(ErrFileAccess, fmt.Errorf("read input: %w", err))
	}

	input := string(data)

	if flags.tokens {
		lexer.Dump(cmd.OutOrStdout(), input)
		return nil
	}

	doc, err := parser.New().Parse(input)
	if err != nil {
		colorValue, flagErr := cmd.Flags().GetString("color")
		if flagErr != nil {
			colorValue = "auto"
		}
		renderSourceError(cmd, inputPath, input, err, config.ColorMode(colorValue))
		return ErrConversionFailed
	}

	ldast.Dump(cmd.OutOrStdout(), doc)

	return nil
}
