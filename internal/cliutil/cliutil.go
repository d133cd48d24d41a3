// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"strings"
)

// Parsed is a command line after flag parsing.
type Parsed struct {
	Positionals []string
	Set         map[string]bool // flags given explicitly
}

// AnySet reports whether any of names was given explicitly.
func (p Parsed) AnySet(names ...string) bool {
	for _, n := range names {
		if p.Set[n] {
			return true
		}
	}
	return false
}

// Parse runs fs over argv with flags allowed on either side of the
// positionals, so `mathstencil mult --nrows 5` and `mathstencil --nrows 5 mult`
// agree. Everything after "--" is positional.
func Parse(fs *flag.FlagSet, argv []string) (Parsed, error) {
	flags, pos := split(fs, argv)
	if err := fs.Parse(flags); err != nil {
		return Parsed{}, err
	}
	p := Parsed{Positionals: append(pos, fs.Args()...), Set: map[string]bool{}}
	fs.Visit(func(f *flag.Flag) { p.Set[f.Name] = true })
	return p, nil
}

func split(fs *flag.FlagSet, argv []string) (flags, pos []string) {
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flags, append(pos, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			pos = append(pos, arg)
		case strings.Contains(arg, "="):
			flags = append(flags, arg)
		default:
			flags = append(flags, arg)
			if takesValue(fs, strings.TrimLeft(arg, "-")) && i+1 < len(argv) {
				i++
				flags = append(flags, argv[i])
			}
		}
	}
	return flags, pos
}

// takesValue is false for bool flags and for unknown names; fs.Parse
// reports the latter.
func takesValue(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return !ok || !bf.IsBoolFlag()
}
