package main

import (
	"bytes"
	"flag"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const stackSizeArg = "stack-size="

// config collects run settings. Values come, in increasing precedence, from
// defaults, an optional YAML file, command line flags, and finally the first
// valid "stack-size=<bytes>" argument.
type config struct {
	StackSize int    `yaml:"stack_size"`
	Output    string `yaml:"output"`
	Tee       string `yaml:"tee"`
	MaxDepth  int    `yaml:"max_depth"`
	Trace     bool   `yaml:"trace"`
	Dump      bool   `yaml:"dump"`

	Source string `yaml:"-"`
}

func defaultConfig() config {
	return config{
		StackSize: DefaultStackSize,
		Output:    DefaultSnapshotPath,
		MaxDepth:  DefaultMaxDepth,
	}
}

// loadFile decodes YAML settings from r over any already in cfg; unknown
// keys are an error.
func (cfg *config) loadFile(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func parseConfig(name string, args []string, errOut io.Writer) (config, error) {
	cfg := defaultConfig()

	var configFile string
	var flagged config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		io.WriteString(errOut, "Usage: "+name+" [flags] <source-file> ["+stackSizeArg+"<bytes>]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&configFile, "config", "", "load settings from a YAML `file`")
	fs.StringVar(&flagged.Output, "o", cfg.Output, "`filename` to save the final stack into")
	fs.StringVar(&flagged.Tee, "tee", "", "also copy program output into `filename`")
	fs.IntVar(&flagged.MaxDepth, "max-depth", cfg.MaxDepth, "limit on nested word calls and conditionals")
	fs.BoolVar(&flagged.Trace, "trace", false, "enable trace logging")
	fs.BoolVar(&flagged.Dump, "dump", false, "dump the stack and dictionary upon exit")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return cfg, errors.Wrap(err, "config")
		}
		if err := cfg.loadFile(bytes.NewReader(data)); err != nil {
			return cfg, errors.Wrapf(err, "config %v", configFile)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = flagged.Output
		case "tee":
			cfg.Tee = flagged.Tee
		case "max-depth":
			cfg.MaxDepth = flagged.MaxDepth
		case "trace":
			cfg.Trace = flagged.Trace
		case "dump":
			cfg.Dump = flagged.Dump
		}
	})

	if cfg.MaxDepth <= 0 {
		return cfg, errors.Errorf("invalid max depth %v, must be positive", cfg.MaxDepth)
	}

	sized := false
	for _, arg := range fs.Args() {
		if strings.HasPrefix(arg, stackSizeArg) {
			if !sized {
				cfg.StackSize, sized = parseStackSize(arg[len(stackSizeArg):], cfg.StackSize)
			}
		} else if cfg.Source == "" {
			cfg.Source = arg
		}
	}
	if cfg.Source == "" {
		fs.Usage()
		return cfg, errors.New("must specify a source file")
	}

	return cfg, nil
}

// parseStackSize parses a byte count, returning prior and false if s is not
// an unsigned decimal. Sizes beyond the host int range are clamped; the stack
// only allocates as it grows.
func parseStackSize(s string, prior int) (int, bool) {
	size, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return prior, false
	}
	if size > math.MaxInt {
		return math.MaxInt, true
	}
	return int(size), true
}
