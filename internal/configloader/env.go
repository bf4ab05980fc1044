package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/leandoc/pkg/config"
)

// envVarPrefix is the prefix for all leandoc environment variables.
const envVarPrefix = "LEANDOC_"

// EnvConfigPath names the environment variable holding a config file
// path. It participates in discovery, not in field overrides.
const EnvConfigPath = envVarPrefix + "CONFIG"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping ties an environment variable suffix to a config field.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to
// config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"TEMPLATE":        {field: "template", typ: envTypeString},
	"TEMPLATE_FILE":   {field: "template_file", typ: envTypeString},
	"RAW_PASSTHROUGH": {field: "raw_passthrough", typ: envTypeBool},
	"DETECT_LANG":     {field: "detect_lang", typ: envTypeBool},
	"HEADING_SHIFT":   {field: "heading_shift", typ: envTypeInt},
	"LOG_LEVEL":       {field: "log_level", typ: envTypeString},
	"COLOR":           {field: "color", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with LEANDOC_
// (e.g. LEANDOC_TEMPLATE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "template":
		cfg.Template = config.Template(value)
	case "template_file":
		cfg.TemplateFile = value
	case "log_level":
		cfg.LogLevel = config.LogLevel(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "raw_passthrough":
		cfg.RawPassthrough = &value
	case "detect_lang":
		cfg.DetectLang = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "heading_shift":
		cfg.HeadingShift = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their
// descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		EnvConfigPath:             "Path to a config file",
		"LEANDOC_TEMPLATE":        "Built-in Typst prelude: plain or report",
		"LEANDOC_TEMPLATE_FILE":   "Typst file imported instead of a built-in prelude",
		"LEANDOC_RAW_PASSTHROUGH": "Allow raw passthrough: true or false",
		"LEANDOC_DETECT_LANG":     "Detect listing languages: true or false",
		"LEANDOC_HEADING_SHIFT":   "Shift added to section levels",
		"LEANDOC_LOG_LEVEL":       "Logger verbosity: debug, info, warn, or error",
		"LEANDOC_COLOR":           "ANSI color in diagnostics: auto, always, or never",
	}
}
