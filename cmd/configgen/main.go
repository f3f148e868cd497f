package main

import (
	"log"

	"github.com/danmuck/bitsctl/internal/config"
	"github.com/spf13/pflag"
)

func main() {
	output := pflag.String("output", "config.toml", "output path for config template")
	validate := pflag.Bool("validate", false, "validate an existing config file")
	input := pflag.String("input", "cmd/bitsctl/ex.config.toml", "config path for validation")
	force := pflag.Bool("force", false, "overwrite existing config file")
	pflag.Parse()

	if *validate {
		cfg, err := config.Load(*input)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated config at %s (metric=%s format=%s addr=%s)", *input, cfg.Metric, cfg.Format, cfg.Service.Addr)
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote config template to %s", *output)
}
