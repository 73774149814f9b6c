package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.reef.dev/open/fin/command/fin/app"
)

const entryPoint = `package main

import (
	"log"
	"net/http"

	"go.reef.dev/open/fin/compat/common"
	"go.reef.dev/open/fin/compat/response"
)

func main() {
	Connect()

	router := common.Router()
	router.Get("/", common.Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return response.Success(w, "blub blub, fin is listening")
	}))

	log.Printf("listening on %s", address)
	log.Fatal(http.ListenAndServe(address, router))
}
`

func scaffold(t *testing.T) string {
	t.Helper()

	directory := t.TempDir()
	if err := os.WriteFile(filepath.Join(directory, "fin.yml"), []byte("module: backend\ndialect: sqlite\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(directory, "app"), 0755); err != nil {
		t.Fatalf("Failed to create app directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(directory, "app", "main.go"), []byte(entryPoint), 0644); err != nil {
		t.Fatalf("Failed to write entry point: %v", err)
	}
	return directory
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}

func TestRunGeneratesFiles(t *testing.T) {
	directory := scaffold(t)

	if err := Run(&app.App{Directory: directory}, &Command{Name: "users"}); err != nil {
		t.Fatalf("Failed to generate resource: %v", err)
	}

	model := readFile(t, filepath.Join(directory, "app", "models", "users.go"))
	for _, expected := range []string{
		"type Users struct",
		"func (Users) TableName() string",
		`return "users"`,
		"Register(&Users{})",
	} {
		if !strings.Contains(model, expected) {
			t.Errorf("Expected model file to contain %q", expected)
		}
	}

	router := readFile(t, filepath.Join(directory, "app", "routers", "users.go"))
	for _, expected := range []string{
		"func NewUsersRouter(db *gorm.DB) *UsersRouter",
		`router.Get("/", common.Wrap(r.List))`,
		`router.Post("/", common.Wrap(r.Create))`,
		`router.Get("/{item_id}", common.Wrap(r.One))`,
		`router.Put("/{item_id}", common.Wrap(r.Update))`,
		`router.Delete("/{item_id}", common.Wrap(r.Delete))`,
		`"backend/app/models"`,
	} {
		if !strings.Contains(router, expected) {
			t.Errorf("Expected router file to contain %q", expected)
		}
	}

	entry := readFile(t, filepath.Join(directory, "app", "main.go"))
	if count := strings.Count(entry, `"backend/app/routers"`); count != 1 {
		t.Errorf("Expected one routers import, found %d", count)
	}
	if count := strings.Count(entry, `router.Mount("/users", routers.NewUsersRouter(db).Routes())`); count != 1 {
		t.Errorf("Expected one mount line, found %d", count)
	}
}

func TestRunTwiceKeepsEntryPointStable(t *testing.T) {
	directory := scaffold(t)
	options := &app.App{Directory: directory}

	if err := Run(options, &Command{Name: "users"}); err != nil {
		t.Fatalf("Failed to generate resource: %v", err)
	}
	first := readFile(t, filepath.Join(directory, "app", "main.go"))

	if err := Run(options, &Command{Name: "users"}); err != nil {
		t.Fatalf("Failed to regenerate resource: %v", err)
	}
	second := readFile(t, filepath.Join(directory, "app", "main.go"))

	if first != second {
		t.Errorf("Expected entry point to stay unchanged on regeneration")
	}
	if count := strings.Count(second, `router.Mount("/users"`); count != 1 {
		t.Errorf("Expected one mount line after regeneration, found %d", count)
	}
}

func TestRunSecondResource(t *testing.T) {
	directory := scaffold(t)
	options := &app.App{Directory: directory}

	if err := Run(options, &Command{Name: "users"}); err != nil {
		t.Fatalf("Failed to generate users: %v", err)
	}
	if err := Run(options, &Command{Name: "blog_posts"}); err != nil {
		t.Fatalf("Failed to generate blog_posts: %v", err)
	}

	router := readFile(t, filepath.Join(directory, "app", "routers", "blog_posts.go"))
	if !strings.Contains(router, "func NewBlogPostsRouter(db *gorm.DB) *BlogPostsRouter") {
		t.Errorf("Expected pascal case router constructor for blog_posts")
	}

	entry := readFile(t, filepath.Join(directory, "app", "main.go"))
	if count := strings.Count(entry, `"backend/app/routers"`); count != 1 {
		t.Errorf("Expected the routers import to stay shared, found %d", count)
	}
	if !strings.Contains(entry, `router.Mount("/blog_posts", routers.NewBlogPostsRouter(db).Routes())`) {
		t.Errorf("Expected blog_posts mount line in entry point")
	}
	if !strings.Contains(entry, `router.Mount("/users", routers.NewUsersRouter(db).Routes())`) {
		t.Errorf("Expected users mount line to survive")
	}
}

func TestRunInvalidName(t *testing.T) {
	directory := scaffold(t)

	err := Run(&app.App{Directory: directory}, &Command{Name: "users-2"})
	if err == nil {
		t.Fatalf("Expected invalid name to be rejected")
	}

	if _, err := os.Stat(filepath.Join(directory, "app", "models", "users-2.go")); !os.IsNotExist(err) {
		t.Errorf("Expected no files to be written for an invalid name")
	}
}

func TestRunLeadingUnderscoreName(t *testing.T) {
	// Underscore-prefixed source files are invisible to the Go toolchain, so
	// generating them would mount a router that never compiles.
	directory := scaffold(t)

	for _, name := range []string{"_", "_users", "9lives"} {
		if err := Run(&app.App{Directory: directory}, &Command{Name: name}); err == nil {
			t.Errorf("Expected name %q to be rejected", name)
		}
	}

	for _, file := range []string{
		filepath.Join("app", "models", "_.go"),
		filepath.Join("app", "models", "_users.go"),
		filepath.Join("app", "routers", "_users.go"),
	} {
		if _, err := os.Stat(filepath.Join(directory, file)); !os.IsNotExist(err) {
			t.Errorf("Expected %s not to be written", file)
		}
	}

	entry := readFile(t, filepath.Join(directory, "app", "main.go"))
	if entry != entryPoint {
		t.Errorf("Expected entry point to stay untouched after rejected names")
	}
}

func TestRunOutsideProject(t *testing.T) {
	directory := t.TempDir()

	err := Run(&app.App{Directory: directory}, &Command{Name: "users"})
	if err == nil {
		t.Fatalf("Expected missing manifest to be rejected")
	}
	if !strings.Contains(err.Error(), "not a fin project") {
		t.Errorf("Expected manifest hint in error, got %v", err)
	}
}

func TestRunMissingEntryPoint(t *testing.T) {
	directory := scaffold(t)
	if err := os.Remove(filepath.Join(directory, "app", "main.go")); err != nil {
		t.Fatalf("Failed to remove entry point: %v", err)
	}

	if err := Run(&app.App{Directory: directory}, &Command{Name: "users"}); err != nil {
		t.Fatalf("Expected generation to succeed without an entry point: %v", err)
	}

	if _, err := os.Stat(filepath.Join(directory, "app", "models", "users.go")); err != nil {
		t.Errorf("Expected model file despite missing entry point: %v", err)
	}
	if _, err := os.Stat(filepath.Join(directory, "app", "routers", "users.go")); err != nil {
		t.Errorf("Expected router file despite missing entry point: %v", err)
	}
}
