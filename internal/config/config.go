// Package config parses the command line and optional configuration
// file into the settings a run needs.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/fennewald/nushell/internal/codec"
	"github.com/fennewald/nushell/internal/exit"
	"github.com/fennewald/nushell/internal/span"
)

var (
	ErrNoArguments  = errors.New("no arguments provided")
	ErrBadInFormat  = errors.New("input format must be auto, json, yaml or raw")
	ErrBadOutFormat = errors.New("output format must be text, json, yaml, raw or auto")
)

// Config represents the complete configuration for one invocation.
type Config struct {
	// Data formats
	In  codec.Format
	Out codec.Format

	// Throttle paces streamed output elements per second (0 = unlimited).
	Throttle float64

	LogLevel zerolog.Level

	// Command is the pipeline command to run, empty for a plain
	// format conversion pass.
	Command string
	Args    []string

	// Line is the joined invocation text diagnostics point into,
	// Head and ArgSpans the regions of the command and each argument
	// inside it.
	Line     string
	Head     span.Span
	ArgSpans []span.Span
}

// fileConfig mirrors the optional YAML configuration file.
type fileConfig struct {
	In       string   `yaml:"in"`
	Out      string   `yaml:"out"`
	Throttle *float64 `yaml:"throttle"`
	LogLevel string   `yaml:"log-level"`
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	switch c.In {
	case codec.FormatAuto, codec.FormatJSON, codec.FormatYAML, codec.FormatRaw:
	default:
		return fmt.Errorf("%w, got %q", ErrBadInFormat, c.In)
	}
	switch c.Out {
	case codec.FormatText, codec.FormatJSON, codec.FormatYAML, codec.FormatRaw, codec.FormatAuto:
	default:
		return fmt.Errorf("%w, got %q", ErrBadOutFormat, c.Out)
	}
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and an
// exit result instead.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.UsageErrorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage and error output since we handle
	// both ourselves.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		in         = fs.String("in", "auto", "Input format: auto, json, yaml or raw")
		out        = fs.String("out", "text", "Output format: text, json, yaml, raw or auto")
		throttle   = fs.Float64("throttle", 0, "Output elements per second (0 for unlimited)")
		logLevel   = fs.String("log-level", "error", "Log level: trace, debug, info, warn, error or disabled")
		configFile = fs.String("config", "", "Path to YAML configuration file")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.UsageErrorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	// Explicit flags win over configuration file entries.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *configFile != "" {
		file, err := loadConfigFile(*configFile)
		if err != nil {
			return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
		}
		if !set["in"] && file.In != "" {
			*in = file.In
		}
		if !set["out"] && file.Out != "" {
			*out = file.Out
		}
		if !set["throttle"] && file.Throttle != nil {
			*throttle = *file.Throttle
		}
		if !set["log-level"] && file.LogLevel != "" {
			*logLevel = file.LogLevel
		}
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		return nil, exit.UsageErrorf("Error: invalid log level %q\n\n%s", *logLevel, Usage())
	}

	cfg := &Config{
		In:       codec.Format(*in),
		Out:      codec.Format(*out),
		Throttle: *throttle,
		LogLevel: level,
	}
	cfg.invocation(fs.Args())

	if err := cfg.Validate(); err != nil {
		return nil, exit.UsageErrorf("Error: %v\n\n%s", err, Usage())
	}
	return cfg, nil
}

// invocation records the positional arguments together with their
// regions inside the joined invocation line.
func (c *Config) invocation(words []string) {
	c.Line = strings.Join(words, " ")
	if len(words) == 0 {
		c.Head = span.Unknown()
		return
	}

	c.Command = words[0]
	c.Head = span.New(0, len(words[0]))

	off := len(words[0]) + 1
	for _, w := range words[1:] {
		c.Args = append(c.Args, w)
		c.ArgSpans = append(c.ArgSpans, span.New(off, off+len(w)))
		off += len(w) + 1
	}
}

func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}
	return &file, nil
}

// Usage returns the command line help text.
func Usage() string {
	return `Usage: nu [options] [command [args...]]

Reads a document or stream on standard input, runs one pipeline
command over it and writes the result to standard output. Without a
command the input passes through, converted between formats.

Options:
  -in format        Input format: auto, json, yaml or raw (default auto)
  -out format       Output format: text, json, yaml, raw or auto (default text)
  -throttle n       Output elements per second, 0 for unlimited (default 0)
  -log-level level  Log level: trace, debug, info, warn, error or disabled (default error)
  -config file      Path to YAML configuration file
  -help             Show this help

Commands:
  collect           Materialize a stream into a value
  describe          Name the type of the input
  get               Extract the value at a cell path
  is-empty          Check for empty input or empty cells
  length            Count the elements of the input
  query             Select values with a JSONPath expression

Examples:
  echo '{"meal":"arepa","size":"small"}' | nu get meal
  cat menu.yaml | nu -out json
  printf '' | nu is-empty
`
}
