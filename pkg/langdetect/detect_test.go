package langdetect_test

import (
	"testing"

	"github.com/yaklabco/leandoc/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "bash shebang",
			body: "#!/bin/bash\necho hello",
			want: "bash",
		},
		{
			name: "sh shebang",
			body: "#!/bin/sh\necho hello",
			want: "bash",
		},
		{
			name: "python shebang",
			body: "#!/usr/bin/env python3\nprint('hello')",
			want: "python",
		},
		{
			name: "go listing",
			body: "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}",
			want: "go",
		},
		{
			name: "python listing",
			body: "def greet():\n    pass\n\nif __name__ == '__main__':\n    greet()",
			want: "python",
		},
		{
			name: "javascript listing",
			body: "const x = () => { return 42; };\nconsole.log(x());",
			want: "javascript",
		},
		{
			name: "json object",
			body: `{"key": "value", "number": 123}`,
			want: "json",
		},
		{
			name: "yaml listing",
			body: "key: value\nother: 123\nlist:\n  - item1\n  - item2",
			want: "yaml",
		},
		{
			name: "rust listing",
			body: "fn main() {\n    println!(\"Hello, world!\");\n}",
			want: "rust",
		},
		{
			name: "sql query",
			body: "SELECT * FROM users WHERE id = 1;",
			want: "sql",
		},
		{
			name: "html document",
			body: "<!DOCTYPE html>\n<html>\n<head><title>T</title></head>\n<body></body>\n</html>",
			want: "html",
		},
		{
			name: "dockerfile",
			body: "FROM golang:1.25\nWORKDIR /app\nCOPY . .\nRUN go build",
			want: "dockerfile",
		},
		{
			name: "prose falls back to text",
			body: "just some words without any code patterns",
			want: "text",
		},
		{
			name: "empty body falls back to text",
			body: "",
			want: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.Detect([]byte(tt.body)); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetect_ShebangWins(t *testing.T) {
	t.Parallel()

	// Python-looking body under a bash shebang stays bash.
	body := []byte("#!/bin/bash\ndef foo():\n    pass")
	if got := langdetect.Detect(body); got != "bash" {
		t.Errorf("Detect() = %q, want %q", got, "bash")
	}
}

func TestDetect_TagsAreLowercase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "shell becomes bash",
			body: "#!/bin/sh\necho test",
			want: "bash",
		},
		{
			name: "go stays lowercase",
			body: "package main\n\nfunc main() {}",
			want: "go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.Detect([]byte(tt.body)); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
