package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/leandoc/internal/cli"
	"github.com/yaklabco/leandoc/pkg/config"
)

// testDocument is a minimal document with a title and an inline span.
const testDocument = "= Title\n\nHello *world*.\n"

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

// writeInput writes content into a fresh temp dir and returns the path.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with args and returns stdout, stderr and
// the execution error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvert_WritesTypstToStdout(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", testDocument)

	stdout, stderr, err := execute(t, "convert", "--color", "never", input)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "// LeanDoc -> Typst (plain)", "default template should be plain")
	assert.Contains(t, stdout, "#let admon")
	assert.Contains(t, stdout, "= Title")
	assert.Contains(t, stdout, "Hello *world*.")
}

func TestConvert_WritesOutputFile(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", testDocument)
	output := filepath.Join(t.TempDir(), "doc.typ")

	stdout, _, err := execute(t, "convert", "-o", output, input)
	require.NoError(t, err)

	assert.Empty(t, stdout, "nothing should reach stdout when --output is set")

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "= Title")
}

func TestConvert_TemplateReport(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", testDocument)

	stdout, _, err := execute(t, "convert", "--template", "report", input)
	require.NoError(t, err)

	assert.Contains(t, stdout, `#set heading(numbering: "1.")`)
}

func TestConvert_TemplateFileImport(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", testDocument)

	stdout, _, err := execute(t, "convert", "--template-file", "my.typ", input)
	require.NoError(t, err)

	assert.Contains(t, stdout, `#import "my.typ": *`)
	assert.NotContains(t, stdout, "#let admon", "an imported template replaces the built-in prelude")
}

func TestConvert_UnknownTemplateIsConfigError(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", testDocument)

	_, _, err := execute(t, "convert", "--template", "fancy", input)
	require.Error(t, err)

	assert.ErrorIs(t, err, cli.ErrConfigLoad)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))
}

func TestConvert_MissingInputFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent.adoc")

	_, _, err := execute(t, "convert", missing)
	require.Error(t, err)

	assert.ErrorIs(t, err, cli.ErrFileAccess)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(err))
}

func TestConvert_ParseErrorRendersDiagnostic(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", "para\n\n| naked row\n")

	_, stderr, err := execute(t, "convert", "--color", "never", input)
	require.Error(t, err)

	assert.ErrorIs(t, err, cli.ErrConversionFailed)
	assert.Equal(t, cli.ExitConvertError, cli.ExitCodeFromError(err))

	assert.Contains(t, stderr, ":3:1: parse error: unexpected table line")
	assert.Contains(t, stderr, "| naked row", "diagnostic should quote the offending line")
	assert.Contains(t, stderr, "^", "diagnostic should carry a caret for the column")
}

func TestConvert_NoRawRejectsPassthrough(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", "++++\n<raw/>\n++++\n")

	_, stderr, err := execute(t, "convert", "--color", "never", "--no-raw", input)
	require.Error(t, err)

	assert.ErrorIs(t, err, cli.ErrConversionFailed)
	assert.Contains(t, stderr, "generate error: Passthrough block disabled")
}

func TestConvert_RawPassthroughOnByDefault(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", "++++\n<raw/>\n++++\n")

	stdout, _, err := execute(t, "convert", input)
	require.NoError(t, err)

	assert.Contains(t, stdout, "<raw/>")
}

func TestDump_TokensGolden(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", "= T\n\n* item\n")

	stdout, _, err := execute(t, "dump", "--tokens", input)
	require.NoError(t, err)

	want := "1: Section level=1 rest=\"T\"\n" +
		"2: Blank\n" +
		"3: UnorderedItem level=1 rest=\"item\"\n" +
		"4: Blank\n" +
		"5: EOF\n"
	assert.Equal(t, want, stdout)
}

func TestDump_ASTIsDefault(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", "Hello there.\n")

	stdout, _, err := execute(t, "dump", input)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Document @1")
	assert.Contains(t, stdout, "Paragraph @1")
	assert.Contains(t, stdout, `"Hello there."`)
}

func TestDump_ParseErrorRendersDiagnostic(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", "| naked row\n")

	_, stderr, err := execute(t, "dump", "--color", "never", input)
	require.Error(t, err)

	assert.ErrorIs(t, err, cli.ErrConversionFailed)
	assert.Contains(t, stderr, ":1:1: parse error: unexpected table line")
}

func TestDump_TokensAndASTAreExclusive(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "doc.adoc", "x\n")

	_, _, err := execute(t, "dump", "--tokens", "--ast", input)
	require.Error(t, err)

	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
}

func TestInit_CreatesStarterConfig(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), config.DefaultFileName)

	_, _, err := execute(t, "init", "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err, "starter config must parse")
	assert.Equal(t, config.TemplatePlain, cfg.Template)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), config.DefaultFileName)
	require.NoError(t, os.WriteFile(output, []byte("template: report\n"), 0o644))

	_, _, err := execute(t, "init", "--output", output)
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrFileAccess)

	// The existing file is untouched.
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "template: report\n", string(data))
}

func TestInit_ForceOverwrites(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), config.DefaultFileName)
	require.NoError(t, os.WriteFile(output, []byte("template: report\n"), 0o644))

	_, _, err := execute(t, "init", "--output", output, "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# leandoc configuration")
}
