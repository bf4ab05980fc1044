package cli

import "errors"

// Exit codes for leandoc.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConvertError indicates the document failed to parse or generate.
	ExitConvertError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors that classify command failures. Every error a command
// returns is wrapped with one of these; ExitCodeFromError keys on them.
var (
	// ErrConversionFailed is returned when parsing or generation failed.
	// The diagnostic has already been written to stderr.
	ErrConversionFailed = errors.New("conversion failed")

	// ErrConfigLoad is returned when configuration loading or validation
	// failed.
	ErrConfigLoad = errors.New("failed to load configuration")

	// ErrFileAccess is returned when an input or output file could not be
	// read or written.
	ErrFileAccess = errors.New("file access failed")
)

// ExitCodeFromError maps a command error to the process exit code.
// Errors without a classifying sentinel come from Cobra itself (flag
// parsing, unknown commands, argument validation) and count as usage
// errors.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConversionFailed):
		return ExitConvertError
	case errors.Is(err, ErrConfigLoad):
		return ExitConfigError
	case errors.Is(err, ErrFileAccess):
		return ExitIOError
	default:
		return ExitInvalidUsage
	}
}
