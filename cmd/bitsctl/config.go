package main

import (
	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/protocol"
	"github.com/spf13/pflag"
)

type flagValues struct {
	configPath string
	input      string
	metric     string
	extra      bool
	all        bool
	format     string
	tree       bool
	logLevel   string
	maxDepth   int
}

func bindFlags(fs *pflag.FlagSet) *flagValues {
	var v flagValues
	fs.StringVarP(&v.configPath, "config", "c", "", "TOML config file")
	fs.StringVarP(&v.input, "input", "i", "", "input file with one hex message per line")
	fs.StringVarP(&v.metric, "metric", "m", "", "versions | evaluate")
	fs.BoolVarP(&v.extra, "extra", "e", false, "shorthand for --metric evaluate")
	fs.BoolVarP(&v.all, "all", "a", false, "decode every line instead of the first")
	fs.StringVarP(&v.format, "format", "f", "", "text | json | yaml")
	fs.BoolVarP(&v.tree, "tree", "t", false, "include the decoded packet tree")
	fs.StringVar(&v.logLevel, "log-level", "", "trace | debug | info | warn | error | off")
	fs.IntVar(&v.maxDepth, "max-depth", 0, "maximum packet nesting depth (0 keeps the config value)")
	return &v
}

// resolveConfig loads --config when given, then applies flags that were
// set explicitly on the command line.
func resolveConfig(fs *pflag.FlagSet, v *flagValues) (config.Config, error) {
	cfg := config.Default()
	if v.configPath != "" {
		loaded, err := config.Load(v.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if fs.Changed("input") {
		cfg.Input = v.input
	}
	if fs.Changed("metric") {
		m, err := protocol.ParseMetric(v.metric)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Metric = m
	}
	if v.extra {
		cfg.Metric = protocol.MetricEvaluate
	}
	if fs.Changed("all") {
		cfg.All = v.all
	}
	if fs.Changed("format") {
		cfg.Format = v.format
	}
	if fs.Changed("tree") {
		cfg.Tree = v.tree
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = v.logLevel
	}
	if fs.Changed("max-depth") && v.maxDepth > 0 {
		cfg.Limits.MaxDepth = v.maxDepth
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
