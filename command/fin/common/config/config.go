package config

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/bsthun/gut"
	"gopkg.in/yaml.v3"
)

// Project represents the fin.yml project manifest.
type Project struct {
	Module  string `yaml:"module" validate:"required"`
	Dialect string `yaml:"dialect" validate:"required"`
}

// New reads fin.yml from the given directory and parses it into T.
func New[T any](directory string) (*T, error) {
	// * construct config file path
	configPath := path.Join(directory, "fin.yml")

	// * read config file
	bytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", configPath, err)
	}

	// * process template replacements
	templated := Template(bytes)

	// * parse config
	config := new(T)
	if err := yaml.Unmarshal(templated, config); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", configPath, err)
	}

	return config, nil
}

// Load reads and validates the project manifest.
func Load(directory string) (*Project, error) {
	project, err := New[Project](directory)
	if err != nil {
		return nil, fmt.Errorf("not a fin project (run 'fin new' first): %w", err)
	}

	// * validate manifest
	if err := gut.Validate(project); err != nil {
		return nil, fmt.Errorf("invalid fin.yml: %w", err)
	}

	// * validate dialect
	switch project.Dialect {
	case "sqlite":
	default:
		return nil, fmt.Errorf("unsupported dialect: %s (supported: sqlite)", project.Dialect)
	}

	return project, nil
}

// Template substitutes {{ env.KEY || fallback }} expressions in manifest bytes.
func Template(bytes []byte) []byte {
	templateRegex := regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

	return templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		// * extract content inside braces
		content := strings.TrimSpace(string(match[2 : len(match)-2]))

		// * split by fallback separator
		parts := strings.Split(content, "||")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}

		// * take the first resolvable part
		for _, part := range parts {
			if strings.HasPrefix(part, "env.") {
				key := strings.TrimPrefix(part, "env.")
				if value := os.Getenv(key); value != "" {
					return []byte(value)
				}
			} else if part != "" {
				return []byte(part)
			}
		}

		return []byte("")
	})
}
