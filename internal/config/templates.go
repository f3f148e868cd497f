package config

import (
	"fmt"
	"os"
)

func Template() string {
	return configTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}

const configTemplate = `metric = "versions"
input = "input/day16.in"
comment_prefix = "#"
format = "text"
all = false
tree = false
log_level = "info"

[limits]
max_hex_digits = 65536
max_depth = 512

[service]
name = "bitsd"
addr = ":9160"
cors_origins = ["http://localhost:3000"]
`
