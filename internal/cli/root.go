// Package cli provides the Cobra command structure for leandoc.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/leandoc/internal/configloader"
	"github.com/yaklabco/leandoc/internal/logging"
	"github.com/yaklabco/leandoc/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root leandoc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "leandoc",
		Short: "Convert LeanDoc markup to Typst",
		Long: `leandoc converts LeanDoc documents, a line-oriented AsciiDoc-style
markup, into Typst markup.

Every input line is classified as exactly one structural kind, so documents
parse in a single pass with bounded lookahead. The resulting tree is rendered
as Typst source, or inspected directly with the dump command.` + environmentHelp(),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(config.ColorMode(color), os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// environmentHelp renders the supported environment variables as an extra
// section of the root help text.
func environmentHelp() string {
	vars := configloader.ListEnvVars()

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("\n\nEnvironment variables:\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "  %-24s %s\n", name, vars[name])
	}

	return strings.TrimRight(sb.String(), "\n")
}
