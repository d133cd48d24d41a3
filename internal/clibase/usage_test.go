package clibase

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"
)

func TestUsageShowsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mathstencil", flag.ContinueOnError)
	fs.Int("nrows", 30, "")
	fs.String("format", "raw", "")
	var b bytes.Buffer
	fs.SetOutput(&b)
	UsageCommon(fs, "mathstencil", func(out io.Writer, def func(string) string) {
		_, _ = out.Write([]byte("extra-section\n"))
	})
	fs.Usage()
	s := b.String()
	for _, want := range []string{"Usage: mathstencil", "Number of rows [30]", "raw | md | html | pdf [raw]", "extra-section"} {
		if !strings.Contains(s, want) {
			t.Fatalf("usage missing %q:\n%s", want, s)
		}
	}
}

func TestPrintExamples(t *testing.T) {
	var b bytes.Buffer
	PrintExamples(&b, "mathstencil")
	s := b.String()
	if !strings.HasPrefix(s, "mathstencil quickstart\n") || !strings.Contains(s, "  mathstencil --format md --seed 1 times\n") {
		t.Fatalf("unexpected examples:\n%s", s)
	}
	if n := strings.Count(s, "  # "); n != len(worksheetExamples) {
		t.Fatalf("want %d examples, got %d", len(worksheetExamples), n)
	}
	PrintExamples(nil, "x") // must not panic
}
