// Package config reads worksheet defaults from a YAML or TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFileType = errors.New("unknown config file type")

// File mirrors the command-line flags. Nil fields were not set in the file.
type File struct {
	Title    *string `yaml:"title" toml:"title"`
	NRows    *int    `yaml:"nrows" toml:"nrows"`
	NCols    *int    `yaml:"ncols" toml:"ncols"`
	Count    *int    `yaml:"count" toml:"count"`
	TaskType *string `yaml:"tasktype" toml:"tasktype"`
	Min      *int    `yaml:"min" toml:"min"`
	Max      *int    `yaml:"max" toml:"max"`
	Format   *string `yaml:"format" toml:"format"`
	Seed     *int64  `yaml:"seed" toml:"seed"`
	Date     *string `yaml:"date" toml:"date"`
}

// Load reads path and decodes it by extension (.yaml, .yml, .toml).
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(b, filepath.Ext(path))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data as the format implied by ext. Unknown keys are errors.
func Parse(data []byte, ext string) (File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w %q (want .yaml, .yml or .toml)", ErrUnknownFileType, ext)
	}
	return f, nil
}
