package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/protocol"
	"github.com/danmuck/bitsctl/internal/protocol/packet"
)

// Config is the resolved setup shared by bitsctl and bitsd.
type Config struct {
	Metric        protocol.Metric
	Input         string
	CommentPrefix string
	Format        string
	All           bool
	Tree          bool
	LogLevel      string
	Limits        packet.Limits
	Service       ServiceConfig
}

type ServiceConfig struct {
	Name        string
	Addr        string
	CorsOrigins []string
}

type fileConfig struct {
	Metric        string            `toml:"metric"`
	Input         string            `toml:"input"`
	CommentPrefix string            `toml:"comment_prefix"`
	Format        string            `toml:"format"`
	All           bool              `toml:"all"`
	Tree          bool              `toml:"tree"`
	LogLevel      string            `toml:"log_level"`
	Limits        fileLimits        `toml:"limits"`
	Service       fileServiceConfig `toml:"service"`
}

type fileLimits struct {
	MaxHexDigits int `toml:"max_hex_digits"`
	MaxDepth     int `toml:"max_depth"`
}

type fileServiceConfig struct {
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
}

var formats = map[string]struct{}{"text": {}, "json": {}, "yaml": {}}

func Default() Config {
	return Config{
		Metric:        protocol.MetricVersions,
		Input:         "input/day16.in",
		CommentPrefix: "#",
		Format:        "text",
		LogLevel:      "info",
		Limits:        packet.DefaultLimits(),
		Service: ServiceConfig{
			Name:        "bitsd",
			Addr:        ":9160",
			CorsOrigins: []string{"http://localhost:3000"},
		},
	}
}

// Load overlays the keys defined in path onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("metric") {
		m, err := protocol.ParseMetric(raw.Metric)
		if err != nil {
			return Config{}, fmt.Errorf("parse metric: %w", err)
		}
		cfg.Metric = m
	}
	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("comment_prefix") {
		cfg.CommentPrefix = raw.CommentPrefix
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("all") {
		cfg.All = raw.All
	}
	if meta.IsDefined("tree") {
		cfg.Tree = raw.Tree
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("limits", "max_hex_digits") {
		cfg.Limits.MaxHexDigits = raw.Limits.MaxHexDigits
	}
	if meta.IsDefined("limits", "max_depth") {
		cfg.Limits.MaxDepth = raw.Limits.MaxDepth
	}
	if meta.IsDefined("service", "name") {
		cfg.Service.Name = strings.TrimSpace(raw.Service.Name)
	}
	if meta.IsDefined("service", "addr") {
		cfg.Service.Addr = strings.TrimSpace(raw.Service.Addr)
	}
	if meta.IsDefined("service", "cors_origins") {
		cfg.Service.CorsOrigins = normalizeOrigins(raw.Service.CorsOrigins)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if _, err := protocol.ParseMetric(string(cfg.Metric)); err != nil {
		return err
	}
	if _, ok := formats[cfg.Format]; !ok {
		return fmt.Errorf("unknown format %q (supported: text, json, yaml)", cfg.Format)
	}
	if cfg.LogLevel != "" {
		if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("unknown log level %q", cfg.LogLevel)
		}
	}
	if cfg.Limits.MaxHexDigits < 0 || cfg.Limits.MaxDepth < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if strings.TrimSpace(cfg.Service.Name) == "" {
		return fmt.Errorf("service config missing name")
	}
	if strings.TrimSpace(cfg.Service.Addr) == "" {
		return fmt.Errorf("service config missing addr")
	}
	return nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
