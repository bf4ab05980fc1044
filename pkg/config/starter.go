package config

// DefaultFileName is the config file name `leandoc init` writes and the
// loader discovers first.
const DefaultFileName = ".leandoc.yaml"

// starterTemplate is the commented starter config written by `leandoc init`.
const starterTemplate = `# leandoc configuration
# See: https://github.com/yaklabco/leandoc

# Built-in Typst prelude: plain or report
template: plain

# Import a Typst file instead of a built-in prelude
# template_file: templates/thesis.typ

# Emit passthrough and stem content verbatim
# raw_passthrough: true

# Detect the language of unlabeled listing blocks
# detect_lang: false

# Added to every section level before rendering
# heading_shift: 0

# Logger verbosity: debug, info, warn, or error
# log_level: info

# ANSI color in diagnostics: auto, always, or never
# color: auto
`

// Starter returns the starter configuration file content.
func Starter() []byte {
	return []byte(starterTemplate)
}
