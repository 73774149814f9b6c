package common

import (
	"os"

	"github.com/bsthun/gut"
	"gopkg.in/yaml.v3"
)

// Config loads, parses and validates the application configuration file. The
// path comes from FIN_CONFIG_PATH or falls back to .local/config.yml.
func Config[T any]() *T {
	// * resolve path
	path := os.Getenv("FIN_CONFIG_PATH")
	if path == "" {
		path = ".local/config.yml"
	}

	// * declare struct
	config := new(T)

	// * read config
	yml, err := os.ReadFile(path)
	if err != nil {
		gut.Fatal("unable to read configuration file", err)
	}

	// * parse config
	if err := yaml.Unmarshal(yml, config); err != nil {
		gut.Fatal("unable to parse configuration file", err)
	}

	// * validate config
	if err := gut.Validate(config); err != nil {
		gut.Fatal("invalid configuration", err)
	}

	return config
}
