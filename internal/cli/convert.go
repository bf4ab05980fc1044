package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/leandoc/internal/configloader"
	"github.com/yaklabco/leandoc/internal/logging"
	"github.com/yaklabco/leandoc/internal/ui/pretty"
	"github.com/yaklabco/leandoc/pkg/config"
	"github.com/yaklabco/leandoc/pkg/fsutil"
	"github.com/yaklabco/leandoc/pkg/parser"
	"github.com/yaklabco/leandoc/pkg/typst"
)

// outputFilePermissions is the file mode for generated Typst files.
const outputFilePermissions = 0644

type convertFlags struct {
	output       string
	template     string
	templateFile string
	noRaw        bool
	detectLang   bool
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <input.adoc>",
		Short: "Convert a LeanDoc document to Typst",
		Long:  convertLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], flags)
		},
	}

	addConvertFlags(cmd, flags)

	return cmd
}

const convertLongDescription = `Convert a LeanDoc document to Typst markup.

The input file is parsed into a document tree and rendered as Typst source.
Output goes to stdout unless --output names a file.

Examples:
  leandoc convert doc.adoc                    # Typst source on stdout
  leandoc convert doc.adoc -o doc.typ         # Write to a file
  leandoc convert doc.adoc --template report  # Numbered-heading prelude
  leandoc convert doc.adoc --template-file my.typ
  leandoc convert doc.adoc --no-raw           # Reject passthrough content`

func runConvert(cmd *cobra.Command, inputPath string, flags *convertFlags) error {
	logger := logging.Default()

	// Map flags to typed config values. Only values explicitly provided
	// on the command line take part in the merge.
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("template") {
		cliCfg.Template = config.Template(flags.template)
	}
	if cmd.Flags().Changed("template-file") {
		cliCfg.TemplateFile = flags.templateFile
	}
	if cmd.Flags().Changed("no-raw") {
		raw := !flags.noRaw
		cliCfg.RawPassthrough = &raw
	}
	cliCfg.DetectLang = flags.detectLang
	cliCfg.Output = flags.output

	// Fold the root command's persistent flags into the merge.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cliCfg.Debug, err = cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("get debug flag: %w", err)
	}

	if cmd.Flags().Changed("color") {
		colorValue, err := cmd.Flags().GetString("color")
		if err != nil {
			return fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(colorValue)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(ErrConfigLoad, err)
	}

	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if cfg.Debug {
		logging.SetLevel("debug")
	} else {
		logging.SetLevel(string(cfg.LogLevel))
	}

	logger.Debug("configuration resolved",
		logging.FieldTemplate, cfg.Template,
		logging.FieldTemplateFile, cfg.TemplateFile,
		logging.FieldOutput, cfg.Output,
	)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Join(ErrFileAccess, fmt.Errorf("read input: %w", err))
	}

	input := string(data)

	logger.Debug("read input", logging.FieldInput, inputPath, logging.FieldBytes, len(data))

	doc, err := parser.New().Parse(input)
	if err != nil {
		renderSourceError(cmd, inputPath, input, err, cfg.Color)
		return ErrConversionFailed
	}

	gen := typst.New(typst.Options{
		Template:            string(cfg.Template),
		TemplateFile:        cfg.TemplateFile,
		AllowRawPassthrough: cfg.RawEnabled(),
		DetectListingLang:   cfg.DetectLang,
		HeadingShift:        cfg.HeadingShift,
	})

	var buf bytes.Buffer
	if err := gen.Generate(doc, &buf); err != nil {
		renderSourceError(cmd, inputPath, input, err, cfg.Color)
		return ErrConversionFailed
	}

	if cfg.Output == "" {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return errors.Join(ErrFileAccess, fmt.Errorf("write output: %w", err))
		}
		return nil
	}

	changed, err := fsutil.WriteAtomicIfChanged(ctx, cfg.Output, buf.Bytes(), outputFilePermissions)
	if err != nil {
		return errors.Join(ErrFileAccess, fmt.Errorf("write output: %w", err))
	}

	if changed {
		logger.Debug("wrote output", logging.FieldOutput, cfg.Output, logging.FieldBytes, buf.Len())
	} else {
		logger.Debug("output unchanged", logging.FieldOutput, cfg.Output)
	}

	return nil
}

func addConvertFlags(cmd *cobra.Command, flags *convertFlags) {
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().StringVar(&flags.template, "template", "plain", "built-in Typst prelude: plain or report")
	cmd.Flags().StringVar(&flags.templateFile, "template-file", "",
		"Typst file to import instead of a built-in prelude")
	cmd.Flags().BoolVar(&flags.noRaw, "no-raw", false,
		"reject passthrough blocks, inline passthrough, and stem content")
	cmd.Flags().BoolVar(&flags.detectLang, "detect-lang", false, "detect listing languages from content")
}

// renderSourceError writes a parse or generate diagnostic to stderr with
// the offending source line and a caret when a column is known.
func renderSourceError(cmd *cobra.Command, path, input string, err error, mode config.ColorMode) {
	serr := pretty.SourceError{Path: path, Kind: "convert error", Message: err.Error()}

	var parseErr *parser.ParseError
	var genErr *typst.Error

	switch {
	case errors.As(err, &parseErr):
		serr.Kind = "parse error"
		serr.Message = parseErr.Message
		serr.Line = parseErr.Line
		serr.Column = parseErr.Column
	case errors.As(err, &genErr):
		serr.Kind = "generate error"
		serr.Message = genErr.Message
		serr.Line = genErr.Line
	}

	serr.SourceLine = sourceLineAt(input, serr.Line)

	errWriter := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(mode, errWriter))
	fmt.Fprint(errWriter, styles.FormatSourceError(serr, pretty.TerminalWidth(errWriter)))
}

// sourceLineAt returns the 1-based line of input, or "" when line is out
// of range.
func sourceLineAt(input string, line int) string {
	if line <= 0 {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if line > len(lines) {
		return ""
	}

	return lines[line-1]
}
