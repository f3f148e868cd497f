// bitsd serves the BITS decoder over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/danmuck/bitsctl/internal/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bitsd: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var configPath, addr string
	fs := pflag.NewFlagSet("bitsd", pflag.ContinueOnError)
	fs.StringVarP(&configPath, "config", "c", "", "TOML config file")
	fs.StringVar(&addr, "addr", "", "listen address (overrides [service].addr)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if fs.Changed("addr") {
		cfg.Service.Addr = addr
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	observability.InitLogger(cfg.Service.Name)
	if cfg.LogLevel != "" {
		if err := logging.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
	}
	log.Info().Str("config", configPath).Str("addr", cfg.Service.Addr).Msg("loaded bitsd config")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Service.Name, cfg.Service.Addr, cfg.Service.CorsOrigins, cfg.Limits)
	return srv.Serve(ctx)
}
