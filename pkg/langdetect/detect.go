// Package langdetect guesses the language of listing block bodies so
// generated output can carry a language tag. Detection combines shebang
// and pattern probes with go-enry's classifier and falls back to "text".
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fence tags for the languages the probes can name directly.
const (
	langGo         = "go"
	langPython     = "python"
	langJavaScript = "javascript"
	langJSON       = "json"
	langYAML       = "yaml"
	langHTML       = "html"
	langSQL        = "sql"
	langRust       = "rust"
	langDockerfile = "dockerfile"
	langBash       = "bash"
	langText       = "text"
)

// classifierCandidates bounds the enry classifier to languages that
// realistically show up in listings.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns the fence tag for body, or "text" when nothing
// identifies it with confidence.
func Detect(body []byte) string {
	if len(body) == 0 {
		return langText
	}

	// A shebang names the language outright.
	if lang, ok := enry.GetLanguageByShebang(body); ok {
		return normalize(lang)
	}

	if lang := probe(body); lang != "" {
		return lang
	}

	// The classifier result is only trusted when enry marks it safe.
	if lang, ok := enry.GetLanguageByClassifier(body, classifierCandidates); ok && lang != "" {
		return normalize(lang)
	}
	return langText
}

// snippet carries the body representations the probes share.
type snippet struct {
	raw     []byte
	trimmed []byte
	text    string
}

// probe checks highly indicative per-language patterns before paying for
// the classifier. The first match wins, so the more specific probes come
// first.
func probe(body []byte) string {
	sn := snippet{raw: body, trimmed: bytes.TrimSpace(body), text: string(body)}
	switch {
	case sn.looksGo():
		return langGo
	case sn.looksPython():
		return langPython
	case sn.looksHTML():
		return langHTML
	case sn.looksJSON():
		return langJSON
	case sn.looksDockerfile():
		return langDockerfile
	case sn.looksSQL():
		return langSQL
	case sn.looksRust():
		return langRust
	case sn.looksJavaScript():
		return langJavaScript
	case sn.looksYAML():
		return langYAML
	}
	return ""
}

func (s snippet) looksGo() bool {
	return bytes.HasPrefix(s.trimmed, []byte("package "))
}

func (s snippet) looksPython() bool {
	if strings.Contains(s.text, "def ") && strings.Contains(s.text, "):") {
		return true
	}
	// Import statements, but not Go's grouped form.
	if strings.Contains(s.text, "import ") && !strings.Contains(s.text, "import (") {
		if strings.Contains(s.text, "from ") || strings.HasPrefix(strings.TrimSpace(s.text), "import ") {
			return true
		}
	}
	return strings.Contains(s.text, "__name__") || strings.Contains(s.text, "__main__")
}

func (s snippet) looksHTML() bool {
	lower := bytes.ToLower(s.trimmed)
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>"))
}

func (s snippet) looksJSON() bool {
	return (bytes.HasPrefix(s.trimmed, []byte("{")) || bytes.HasPrefix(s.trimmed, []byte("["))) &&
		bytes.Contains(s.trimmed, []byte(`"`))
}

func (s snippet) looksDockerfile() bool {
	return bytes.HasPrefix(s.trimmed, []byte("FROM ")) ||
		(bytes.Contains(s.raw, []byte("\nFROM ")) && bytes.Contains(s.raw, []byte("\nRUN "))) ||
		(bytes.Contains(s.raw, []byte("WORKDIR ")) && bytes.Contains(s.raw, []byte("COPY ")))
}

func (s snippet) looksSQL() bool {
	upper := strings.TrimSpace(strings.ToUpper(s.text))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

func (s snippet) looksRust() bool {
	return strings.Contains(s.text, "fn main()") ||
		strings.Contains(s.text, "println!") ||
		strings.Contains(s.text, "let mut ")
}

func (s snippet) looksJavaScript() bool {
	return strings.Contains(s.text, "=>") ||
		strings.Contains(s.text, "const ") ||
		strings.Contains(s.text, "let ") ||
		strings.Contains(s.text, "console.log")
}

// looksYAML counts key: value and list item lines; two or more make it
// YAML. Lines that carry parentheses or braces look like code and do not
// count.
func (s snippet) looksYAML() bool {
	keyCount := 0
	for _, line := range bytes.Split(s.raw, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			keyCount++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			keyCount++
		}
	}
	return keyCount >= 2
}

// normalize maps enry's language names onto fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
