// Package config defines the leandoc configuration model shared by the
// CLI, the config file loader, and the Typst generator wiring.
package config

// Template names a built-in Typst prelude.
type Template string

// Built-in templates.
const (
	TemplatePlain  Template = "plain"
	TemplateReport Template = "report"
)

// IsValid returns true if the template names a built-in prelude.
func (t Template) IsValid() bool {
	switch t {
	case TemplatePlain, TemplateReport:
		return true
	default:
		return false
	}
}

// ColorMode controls ANSI color in diagnostic output.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the mode is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// LogLevel selects logger verbosity.
type LogLevel string

// Log levels, least to most severe.
const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid returns true if the level is a known log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	default:
		return false
	}
}

// Config holds the settings for a leandoc run.
type Config struct {
	// Template selects a built-in Typst prelude.
	Template Template `yaml:"template"`

	// TemplateFile is a Typst file imported instead of a built-in
	// prelude. Takes precedence over Template when set.
	TemplateFile string `yaml:"template_file,omitempty"`

	// RawPassthrough allows passthrough and stem content to reach the
	// Typst output verbatim. Nil means enabled.
	RawPassthrough *bool `yaml:"raw_passthrough,omitempty"`

	// DetectLang enables language detection for listing blocks that
	// carry no explicit language attribute.
	DetectLang bool `yaml:"detect_lang"`

	// HeadingShift is added to every section level before rendering.
	HeadingShift int `yaml:"heading_shift"`

	// LogLevel selects logger verbosity: debug, info, warn, or error.
	LogLevel LogLevel `yaml:"log_level"`

	// Color controls ANSI color in diagnostics: auto, always, or never.
	Color ColorMode `yaml:"color"`

	// CLI-only options, set from flags and never read from config files.

	// Output is the destination path for generated Typst.
	Output string `yaml:"-"`

	// Debug forces debug-level logging.
	Debug bool `yaml:"-"`
}

// Default returns a configuration with leandoc's default settings.
func Default() *Config {
	raw := true
	return &Config{
		Template:       TemplatePlain,
		RawPassthrough: &raw,
		LogLevel:       LogInfo,
		Color:          ColorAuto,
	}
}

// RawEnabled reports whether raw passthrough is on, applying the default
// when the field is unset.
func (c *Config) RawEnabled() bool {
	if c.RawPassthrough == nil {
		return true
	}
	return *c.RawPassthrough
}
