// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/trallarn/math-stencil/internal/clibase"
	"github.com/trallarn/math-stencil/internal/cliutil"
	"github.com/trallarn/math-stencil/internal/config"
	"github.com/trallarn/math-stencil/internal/grid"
	"github.com/trallarn/math-stencil/internal/output"
	"github.com/trallarn/math-stencil/internal/runutil"
	"github.com/trallarn/math-stencil/internal/task"
	"github.com/trallarn/math-stencil/internal/writers"
)

// Defaults
const (
	DefaultTitle  = "Math tasks"
	DefaultRows   = 30
	DefaultCols   = 4
	DefaultMin    = 1
	DefaultMax    = 20
	DefaultFormat = output.FormatRaw
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Worksheet
	Title string
	NRows int
	NCols int
	Count int // 0 = NRows*NCols

	// Tasks
	Kind      task.Kind
	Min       int
	Max       int
	BoundsSet bool // --min or --max given (flag or config file)
	Seed      int64
	SeedSet   bool

	// Output
	Format string
	Date   time.Time // zero = today

	// Misc
	ConfigFile string
	Quiet      bool
	Verbose    bool
	Examples   bool
	Version    bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, nil)
	return fs
}

// raw string values that still need resolving after flags and config merge
type pending struct {
	taskType string
	date     string
}

// ParseArgs registers and parses all flags, returns an Options struct.
// A single positional argument is taken as the task type.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var p pending
	var help bool

	// Worksheet
	fs.StringVar(&opt.Title, "title", DefaultTitle, "worksheet header text")
	fs.IntVar(&opt.NRows, "nrows", DefaultRows, "number of rows")
	fs.IntVar(&opt.NCols, "ncols", DefaultCols, "number of columns")
	fs.IntVar(&opt.Count, "count", 0, "total problems (0 = nrows*ncols); must divide by ncols")

	// Tasks
	fs.StringVar(&p.taskType, "tasktype", "", "task type: add | mult | times | div [*]")
	fs.IntVar(&opt.Min, "min", DefaultMin, "lower operand bound (mult, div)")
	fs.IntVar(&opt.Max, "max", DefaultMax, "upper operand bound, exclusive (mult, div)")
	fs.Int64Var(&opt.Seed, "seed", 0, "fixed random seed for reproducible output")

	// Output
	fs.StringVar(&opt.Format, "format", DefaultFormat, "output format: raw | md | html | pdf")
	fs.StringVar(&p.date, "date", "", "header date YYYY-MM-DD (default today)")

	// Misc
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML or TOML file with defaults")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug diagnostics on stderr")
	fs.BoolVar(&opt.Examples, "examples", false, "print quickstart examples and exit")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")

	args, err := cliutil.Parse(fs, argv)
	if err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}

	set := args.Set
	switch pos := args.Positionals; {
	case len(pos) > 1:
		return opt, fmt.Errorf("unexpected arguments: %s", strings.Join(pos[1:], " "))
	case len(pos) == 1 && set["tasktype"]:
		return opt, errors.New("give the task type either as --tasktype or as an argument, not both")
	case len(pos) == 1:
		p.taskType = pos[0]
		set["tasktype"] = true
	}

	if opt.ConfigFile != "" {
		f, err := config.Load(opt.ConfigFile)
		if err != nil {
			return opt, err
		}
		applyFile(&opt, &p, f, set)
	}
	opt.BoundsSet = opt.BoundsSet || args.AnySet("min", "max")
	opt.SeedSet = opt.SeedSet || set["seed"]

	return opt, resolve(&opt, p)
}

// applyFile copies config values for every flag not given on the command line.
func applyFile(opt *Options, p *pending, f config.File, set map[string]bool) {
	if f.Title != nil && !set["title"] {
		opt.Title = *f.Title
	}
	if f.NRows != nil && !set["nrows"] {
		opt.NRows = *f.NRows
	}
	if f.NCols != nil && !set["ncols"] {
		opt.NCols = *f.NCols
	}
	if f.Count != nil && !set["count"] {
		opt.Count = *f.Count
	}
	if f.TaskType != nil && !set["tasktype"] {
		p.taskType = *f.TaskType
	}
	if f.Min != nil && !set["min"] {
		opt.Min = *f.Min
		opt.BoundsSet = true
	}
	if f.Max != nil && !set["max"] {
		opt.Max = *f.Max
		opt.BoundsSet = true
	}
	if f.Format != nil && !set["format"] {
		opt.Format = *f.Format
	}
	if f.Seed != nil && !set["seed"] {
		opt.Seed = *f.Seed
		opt.SeedSet = true
	}
	if f.Date != nil && !set["date"] {
		p.date = *f.Date
	}
}

// resolve validates the merged options and fills typed fields.
func resolve(opt *Options, p pending) error {
	if p.taskType == "" {
		return fmt.Errorf("%w: --tasktype is required (%s)", task.ErrInvalidTaskType, task.KindList())
	}
	kind, err := task.ParseKind(p.taskType)
	if err != nil {
		return err
	}
	opt.Kind = kind

	if !writers.Has(opt.Format) {
		return fmt.Errorf("%w %q (want %s)", writers.ErrInvalidFormat, opt.Format, strings.Join(writers.Formats(), " | "))
	}
	if p.date != "" {
		d, err := time.Parse(output.DateLayout, p.date)
		if err != nil {
			return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", p.date)
		}
		opt.Date = d
	}
	if opt.NCols < 1 {
		return fmt.Errorf("%w: --ncols must be ≥ 1", grid.ErrShapeMismatch)
	}
	if opt.Count < 0 {
		return errors.New("--count must be ≥ 0")
	}
	if opt.Count == 0 && opt.NRows < 1 {
		return errors.New("--nrows must be ≥ 1")
	}
	return runutil.ValidateTaskCount(opt.NRows, opt.NCols, opt.Count)
}
