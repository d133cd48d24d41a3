// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"github.com/trallarn/math-stencil/internal/version"
)

// UsageCommon installs the shared Usage() handler on fs.
// extra prints tool-specific sections after the synopsis.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – printable arithmetic worksheets\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] <add|mult|times|div>\n", name)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nWorksheet:")
		fmt.Fprintf(out, "      --title string      Header text [%s]\n", def("title"))
		fmt.Fprintf(out, "      --nrows int         Number of rows [%s]\n", def("nrows"))
		fmt.Fprintf(out, "      --ncols int         Number of columns [%s]\n", def("ncols"))
		fmt.Fprintf(out, "      --count int         Total problems, 0 = nrows*ncols; must divide by ncols [%s]\n", def("count"))

		fmt.Fprintln(out, "\nTasks:")
		fmt.Fprintln(out, "      --tasktype string   add | mult (multi) | times | div [*]")
		fmt.Fprintf(out, "      --min int           Lower operand bound (mult, div) [%s]\n", def("min"))
		fmt.Fprintf(out, "      --max int           Upper operand bound, exclusive (mult, div) [%s]\n", def("max"))
		fmt.Fprintln(out, "      --seed int          Fixed random seed for reproducible output")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --format string     raw | md | html | pdf [%s]\n", def("format"))
		fmt.Fprintln(out, "      --date YYYY-MM-DD   Header date [today]")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file       YAML or TOML defaults; flags win")
		fmt.Fprintf(out, "  -q, --quiet             Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose           Debug diagnostics on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples          Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version           Print version and exit")
		fmt.Fprintln(out, "  -h, --help              Show this help and exit")
	}
}
