// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/trallarn/math-stencil/internal/app"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.RunAt(args, &out, &errBuf, func() time.Time {
		return time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	})
	return out.String(), errBuf.String(), code
}

func writeIfMissingOrUpdate(path string, got string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	if _, e := os.Stat(path); os.IsNotExist(e) {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	return false, nil
}

func TestEndToEndRaw(t *testing.T) {
	out, errS, code := run(t, "--nrows", "3", "--ncols", "2", "--seed", "1", "add")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	if !strings.HasPrefix(out, "Math tasks 2024-01-01\n\n\n") {
		t.Fatalf("bad header: %q", out)
	}
	body := strings.TrimPrefix(out, "Math tasks 2024-01-01\n\n\n")
	rows := strings.Split(strings.TrimSuffix(body, "\n\n"), "\n\n")
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d: %q", len(rows), body)
	}
	for _, r := range rows {
		if n := strings.Count(r, " = ____    "); n != 2 {
			t.Fatalf("want 2 cells per row, got %d in %q", n, r)
		}
	}
}

func TestSeededOutputIsReproducible(t *testing.T) {
	a, _, _ := run(t, "--seed", "99", "--format", "md", "div")
	b, _, _ := run(t, "--seed", "99", "--format", "md", "div")
	if a != b {
		t.Fatalf("same seed produced different worksheets")
	}
	c, _, _ := run(t, "--seed", "100", "--format", "md", "div")
	if a == c {
		t.Fatalf("different seeds produced identical worksheets")
	}
}

func TestMarkdownGolden(t *testing.T) {
	got, errS, code := run(t, "--title", "Einmaleins", "--nrows", "4", "--ncols", "3", "--seed", "1", "--format", "md", "times")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	path := filepath.Join("testdata", "times_md.golden")
	if created, err := writeIfMissingOrUpdate(path, got); err != nil {
		t.Fatalf("write golden: %v", err)
	} else if created {
		t.Logf("wrote %s", path)
		return
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if got != string(want) {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestMarkdownShape(t *testing.T) {
	out, _, code := run(t, "--title", "T", "--date", "2023-05-06", "--nrows", "1", "--ncols", "2", "--format", "md", "mult")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	lines := strings.Split(out, "\n")
	if lines[0] != "# T" || lines[2] != "Datum: 2023-05-06" || lines[4] != "| | |" || lines[5] != "|-|-|" {
		t.Fatalf("bad markdown:\n%s", out)
	}
	if strings.Count(lines[6], "|") != 3 {
		t.Fatalf("bad data row %q", lines[6])
	}
}

func TestInvalidTaskTypeNoOutput(t *testing.T) {
	out, errS, code := run(t, "--tasktype", "sub")
	if code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
	if out != "" {
		t.Fatalf("stdout must stay empty, got %q", out)
	}
	if !strings.Contains(errS, "invalid task type") {
		t.Fatalf("stderr should explain: %q", errS)
	}
}

func TestInvalidFormatNoOutput(t *testing.T) {
	out, errS, code := run(t, "add", "--format", "rtf")
	if code != 2 || out != "" || !strings.Contains(errS, "invalid format") {
		t.Fatalf("code=%d out=%q err=%q", code, out, errS)
	}
}

func TestShapeMismatchNoOutput(t *testing.T) {
	out, errS, code := run(t, "add", "--count", "10", "--ncols", "3")
	if code != 2 || out != "" || !strings.Contains(errS, "shape mismatch") {
		t.Fatalf("code=%d out=%q err=%q", code, out, errS)
	}
}

func TestInvalidBoundsNoOutput(t *testing.T) {
	out, errS, code := run(t, "mult", "--min", "5", "--max", "5")
	if code != 2 || out != "" || !strings.Contains(errS, "invalid bounds") {
		t.Fatalf("code=%d out=%q err=%q", code, out, errS)
	}
}

func TestExtremeValuesRejected(t *testing.T) {
	cases := []struct {
		args []string
		msg  string
	}{
		{[]string{"add", "--nrows", "4611686018427387904", "--ncols", "4"}, "too many tasks"},
		{[]string{"add", "--nrows", "100000000000000", "--ncols", "4"}, "too many tasks"},
		{[]string{"mult", "--min", "-9223372036854775808", "--max", "9223372036854775807"}, "invalid bounds"},
		{[]string{"div", "--min", "4000000000", "--max", "9000000000"}, "invalid bounds"},
	}
	for _, c := range cases {
		out, errS, code := run(t, c.args...)
		if code != 2 || out != "" || !strings.Contains(errS, c.msg) {
			t.Fatalf("%v: code=%d out=%q err=%q", c.args, code, out, errS)
		}
	}
}

func TestAdditionBoundsWarning(t *testing.T) {
	_, errS, code := run(t, "add", "--max", "100", "--nrows", "1")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(errS, "ignores --min/--max") {
		t.Fatalf("expected bounds warning, got %q", errS)
	}
	_, errS, _ = run(t, "add", "--max", "100", "--nrows", "1", "-q")
	if errS != "" {
		t.Fatalf("quiet should silence warnings, got %q", errS)
	}
}

func TestHTMLAndPDF(t *testing.T) {
	out, _, code := run(t, "div", "--nrows", "2", "--ncols", "2", "--format", "html")
	if code != 0 || !strings.Contains(out, "<table>") {
		t.Fatalf("html: code=%d out=%q", code, out)
	}
	out, _, code = run(t, "div", "--nrows", "2", "--ncols", "2", "--format", "pdf")
	if code != 0 || !strings.HasPrefix(out, "%PDF-") {
		t.Fatalf("pdf: code=%d", code)
	}
}

func TestConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sheet.toml")
	if err := os.WriteFile(p, []byte("title = \"Week 3\"\ntasktype = \"add\"\nnrows = 2\nncols = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, errS, code := run(t, "--config", p)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errS)
	}
	if !strings.HasPrefix(out, "Week 3 2024-01-01\n") || strings.Count(out, "= ____") != 2 {
		t.Fatalf("config not applied: %q", out)
	}
}

func TestVersionHelpExamples(t *testing.T) {
	out, _, code := run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "mathstencil version ") {
		t.Fatalf("version: %d %q", code, out)
	}
	out, _, code = run(t, "--help")
	if code != 0 || !strings.Contains(out, "--tasktype") {
		t.Fatalf("help: %d %q", code, out)
	}
	out, _, code = run(t)
	if code != 0 || !strings.Contains(out, "Usage:") {
		t.Fatalf("no args: %d %q", code, out)
	}
	out, _, code = run(t, "--examples")
	if code != 0 || !strings.Contains(out, "quickstart") {
		t.Fatalf("examples: %d %q", code, out)
	}
}
