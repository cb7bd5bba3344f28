package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/arnodel/jsmnav/internal/debug"
)

const (
	// DefaultMaxDepth bounds nesting in the input unless configured otherwise.
	DefaultMaxDepth = 1024

	DefaultIndent = 2
)

var (
	ErrInvalidColor    = errors.New("invalid color mode")
	ErrInvalidDump     = errors.New("invalid dump mode")
	ErrInvalidMaxDepth = errors.New("max depth cannot be negative")
	ErrInvalidIndent   = errors.New("indent cannot be negative")
	ErrDumpWithQueries = errors.New("-dump cannot be combined with paths")
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Dump modes
const (
	DumpNone   = ""
	DumpTokens = "tokens"
	DumpTree   = "tree"
)

// Config represents the complete configuration for the jn tool.
type Config struct {
	// Input file, stdin if empty
	Input string

	// Tokenizer
	Strict   bool
	MaxDepth int // 0 = unlimited

	// Output
	PrintNames bool
	Dump       string
	Color      string
	Indent     int

	// Paths to resolve, from the config file first then the command line
	Queries []string
}

// fileConfig is the layout of a YAML config file.  Unset fields leave the
// defaults alone.
type fileConfig struct {
	Strict   *bool    `yaml:"strict"`
	MaxDepth *int     `yaml:"max_depth"`
	Names    *bool    `yaml:"names"`
	Dump     *string  `yaml:"dump"`
	Color    *string  `yaml:"color"`
	Indent   *int     `yaml:"indent"`
	Queries  []string `yaml:"queries"`
}

// Parse builds a Config from command line arguments (without the program
// name).  Usage and flag errors are written to output.
func Parse(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	var configFile string

	fs := flag.NewFlagSet("jn", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Input, "in", "", "read JSON from this file instead of stdin")
	fs.BoolVar(&cfg.Strict, "strict", false, "only accept strict JSON")
	fs.IntVar(&cfg.MaxDepth, "max-depth", DefaultMaxDepth, "maximum nesting depth of the input (0 for no limit)")
	fs.BoolVar(&cfg.PrintNames, "name", false, "print the token reached by each path instead of its value")
	fs.StringVar(&cfg.Dump, "dump", DumpNone, "print the tokens instead of resolving paths: tokens, tree")
	fs.StringVar(&cfg.Color, "color", ColorAuto, "colorize output: auto, always, never")
	fs.IntVar(&cfg.Indent, "indent", DefaultIndent, "indentation of -dump tree output")
	fs.StringVar(&configFile, "config", "", "YAML file with default settings and queries")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if configFile != "" {
		fc, err := loadFile(configFile)
		if err != nil {
			return nil, err
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) {
			set[f.Name] = true
		})
		cfg.apply(fc, set)
	}
	cfg.Queries = append(cfg.Queries, fs.Args()...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile reads a YAML config file.  Unknown keys are rejected.
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	debug.Printf("loaded config file %s", path)
	return &fc, nil
}

// apply copies the settings of fc that were not given as flags.
func (c *Config) apply(fc *fileConfig, set map[string]bool) {
	if fc.Strict != nil && !set["strict"] {
		c.Strict = *fc.Strict
	}
	if fc.MaxDepth != nil && !set["max-depth"] {
		c.MaxDepth = *fc.MaxDepth
	}
	if fc.Names != nil && !set["name"] {
		c.PrintNames = *fc.Names
	}
	if fc.Dump != nil && !set["dump"] {
		c.Dump = *fc.Dump
	}
	if fc.Color != nil && !set["color"] {
		c.Color = *fc.Color
	}
	if fc.Indent != nil && !set["indent"] {
		c.Indent = *fc.Indent
	}
	c.Queries = append(c.Queries, fc.Queries...)
}

// Validate checks that the settings have acceptable values.
func (c *Config) Validate() error {
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("%w: %q (use auto, always, or never)", ErrInvalidColor, c.Color)
	}
	if !slices.Contains([]string{DumpNone, DumpTokens, DumpTree}, c.Dump) {
		return fmt.Errorf("%w: %q (use tokens or tree)", ErrInvalidDump, c.Dump)
	}
	if c.Dump != DumpNone && len(c.Queries) > 0 {
		return ErrDumpWithQueries
	}
	if c.MaxDepth < 0 {
		return ErrInvalidMaxDepth
	}
	if c.Indent < 0 {
		return ErrInvalidIndent
	}
	return nil
}

// UseColor tells whether output should be colorized, given whether stdout is
// a terminal.
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

const usage = `jn - navigate tokenized JSON

USAGE:
  jn [options] [path...] < input.json

DESCRIPTION:
  jn tokenizes its input once, then prints the value reached by each path,
  one per line.  Values are printed as they appear in the input: strings
  without their quotes but with their escapes, objects and arrays verbatim.
  Without paths, every top level value is printed.

PATHS:
  Paul.Children[1]    key "Paul", then key "Children", then child 1
  [1].Age             child 1 (the second key of an object), then key "Age"
  ["a.b"]             key "a.b"

OPTIONS:
`
