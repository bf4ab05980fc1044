package configloader

import "github.com/yaklabco/leandoc/pkg/config"

// merge combines two configurations, with override taking precedence
// over base. The merge follows these rules:
//   - Strings and enums: override wins when non-empty
//   - RawPassthrough: override wins when non-nil
//   - Plain booleans: override wins when true (a flag can set them,
//     a lower-precedence source cannot unset them)
//   - HeadingShift: override wins when non-zero
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Template != "" {
		result.Template = override.Template
	}
	if override.TemplateFile != "" {
		result.TemplateFile = override.TemplateFile
	}
	if override.RawPassthrough != nil {
		raw := *override.RawPassthrough
		result.RawPassthrough = &raw
	}
	if override.DetectLang {
		result.DetectLang = override.DetectLang
	}
	if override.HeadingShift != 0 {
		result.HeadingShift = override.HeadingShift
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	// CLI-only fields
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Debug {
		result.Debug = override.Debug
	}

	return result
}
