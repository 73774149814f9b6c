package initialize

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.reef.dev/open/fin/command/fin/app"
	"go.reef.dev/open/fin/command/fin/template"
)

type Command struct {
	Path string `arg:"" optional:"" help:"Directory to initialize, defaults to the working directory."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

// Run scaffolds a new project in the target directory. Files that already
// exist are kept as they are, so running it twice is safe.
func Run(app *app.App, command *Command) error {
	// * resolve target directory
	directory := app.Directory
	if command.Path != "" {
		directory = command.Path
	}
	absolute, err := filepath.Abs(directory)
	if err != nil {
		return fmt.Errorf("unable to resolve %s: %w", directory, err)
	}

	// * derive module name from the directory base
	data := &template.Data{
		Module: filepath.Base(absolute),
	}

	// * ensure project root
	if err := os.MkdirAll(absolute, 0755); err != nil {
		return fmt.Errorf("unable to create %s: %w", absolute, err)
	}

	// * ensure skeleton
	for _, node := range Structure() {
		if err := EnsureNode(absolute, node, data); err != nil {
			return err
		}
	}

	// * print the resulting layout
	if err := PrintTree(os.Stdout, data.Module, Structure()); err != nil {
		return err
	}
	fmt.Print(logo)

	log.Printf("project %s initialized, run 'go mod tidy' in %s", data.Module, directory)
	return nil
}
