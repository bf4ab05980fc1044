package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/leandoc/internal/logging"
	"github.com/yaklabco/leandoc/pkg/config"
	"github.com/yaklabco/leandoc/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new leandoc configuration file",
		Long: `Create a new ` + config.DefaultFileName + ` configuration file in the current
directory with commented defaults. The file can be customized to pick a
Typst template, control raw passthrough, and tune logging.

Examples:
  leandoc init                       Create ` + config.DefaultFileName + `
  leandoc init --output custom.yaml  Write to a custom file path
  leandoc init --force               Overwrite an existing file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: "+config.DefaultFileName+")")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Determine output path
	outputPath := flags.output
	if outputPath == "" {
		outputPath = config.DefaultFileName
	}

	// Make path absolute
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return errors.Join(ErrFileAccess, fmt.Errorf("resolve path: %w", err))
	}

	// Check if file exists
	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return errors.Join(ErrFileAccess,
				fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	// Write file
	if err := fsutil.WriteAtomic(ctx, absPath, config.Starter(), configFilePermissions); err != nil {
		return errors.Join(ErrFileAccess, fmt.Errorf("write file: %w", err))
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'leandoc convert --help' to see the matching flags")

	return nil
}
