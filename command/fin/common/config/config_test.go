package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	directory := t.TempDir()
	if err := os.WriteFile(filepath.Join(directory, "fin.yml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
	return directory
}

func TestLoad(t *testing.T) {
	directory := writeManifest(t, "module: backend\ndialect: sqlite\n")

	project, err := Load(directory)
	if err != nil {
		t.Fatalf("Failed to load manifest: %v", err)
	}

	if project.Module != "backend" {
		t.Errorf("Expected module backend, got %q", project.Module)
	}
	if project.Dialect != "sqlite" {
		t.Errorf("Expected dialect sqlite, got %q", project.Dialect)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("Expected error for missing manifest")
	}
	if !strings.Contains(err.Error(), "not a fin project") {
		t.Errorf("Expected not a fin project error, got %v", err)
	}
}

func TestLoadUnsupportedDialect(t *testing.T) {
	directory := writeManifest(t, "module: backend\ndialect: mysql\n")

	_, err := Load(directory)
	if err == nil {
		t.Fatal("Expected error for unsupported dialect")
	}
	if !strings.Contains(err.Error(), "unsupported dialect") {
		t.Errorf("Expected unsupported dialect error, got %v", err)
	}
}

func TestTemplateEnv(t *testing.T) {
	t.Setenv("FIN_TEST_MODULE", "tuna")

	templated := Template([]byte("module: {{ env.FIN_TEST_MODULE || backend }}\n"))
	if string(templated) != "module: tuna\n" {
		t.Errorf("Expected env substitution, got %q", string(templated))
	}
}

func TestTemplateFallback(t *testing.T) {
	templated := Template([]byte("module: {{ env.FIN_UNSET_VARIABLE || backend }}\n"))
	if string(templated) != "module: backend\n" {
		t.Errorf("Expected fallback substitution, got %q", string(templated))
	}
}
