// Package config loads the scicalc command configuration from CUE files.
package config

import (
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema is the closed schema every config file must satisfy.
const Schema = `
angle?:    "deg" | "rad"
decimal?:  "." | ","
db?:       string
logLevel?: "debug" | "info" | "warn" | "error"
logFile?:  string
journal?:  bool
`

// ErrValueNotFound is returned by Lookup for an absent path.
var ErrValueNotFound = errors.New("value not found")

// Config holds the settings of the scicalc command.
type Config struct {
	Angle    string
	Decimal  string
	DB       string
	LogLevel string
	LogFile  string
	Journal  bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Angle:    "deg",
		Decimal:  ".",
		DB:       "scicalc.db",
		LogLevel: "warn",
	}
}

// Loader reads a CUE document validated against Schema.
type Loader struct {
	value cue.Value
}

// NewLoader compiles src, named filename in error messages, and checks it
// against Schema.
func NewLoader(filename string, src []byte) (*Loader, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + Schema + "})")
	if err := schema.Err(); err != nil {
		return nil, err
	}

	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, err
	}
	if err := schema.Unify(value).Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &Loader{value: value}, nil
}

// Lookup decodes the value at path into target.
func (l *Loader) Lookup(path string, target any) error {
	value := l.value.LookupPath(cue.ParsePath(path))
	if !value.Exists() {
		return ErrValueNotFound
	}
	if err := value.Err(); err != nil {
		return err
	}
	return value.Decode(target)
}

// Apply overlays every value present in the document onto cfg.
func (l *Loader) Apply(cfg *Config) error {
	fields := []struct {
		path   string
		target any
	}{
		{"angle", &cfg.Angle},
		{"decimal", &cfg.Decimal},
		{"db", &cfg.DB},
		{"logLevel", &cfg.LogLevel},
		{"logFile", &cfg.LogFile},
		{"journal", &cfg.Journal},
	}
	for _, f := range fields {
		err := l.Lookup(f.path, f.target)
		if errors.Is(err, ErrValueNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", f.path, err)
		}
	}
	return nil
}

// Load returns Default overlaid with the file at path. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	l, err := NewLoader(path, content)
	if err != nil {
		return cfg, err
	}
	if err := l.Apply(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
