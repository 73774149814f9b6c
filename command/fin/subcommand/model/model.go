package model

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"go.reef.dev/open/fin/command/fin/app"
	"go.reef.dev/open/fin/command/fin/common/config"
	"go.reef.dev/open/fin/utility/form"
)

type Command struct {
	Name string `arg:"" help:"Name of the resource to generate."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

// namePattern requires a leading letter: a leading underscore or digit would
// produce model and router files the Go toolchain refuses to build.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Resource carries the naming forms used by the generated files.
type Resource struct {
	Module string
	Struct string
	Snake  string
}

// Run generates the model and router files for the resource and mounts the
// router in the entry point. Existing files with the same name are replaced
// with a fresh generation.
func Run(app *app.App, command *Command) error {
	// * validate the resource name before touching the filesystem
	if !namePattern.MatchString(command.Name) {
		return fmt.Errorf("invalid resource name %q, expected a letter followed by letters, digits or underscores", command.Name)
	}

	// * load the project manifest
	project, err := config.Load(app.Directory)
	if err != nil {
		return err
	}

	resource := &Resource{
		Module: project.Module,
		Struct: form.ToPascalCase(command.Name),
		Snake:  form.ToSnakeCase(command.Name),
	}

	// * write the model file
	modelDirectory := filepath.Join(app.Directory, "app", "models")
	if err := os.MkdirAll(modelDirectory, 0755); err != nil {
		return fmt.Errorf("unable to create %s: %w", modelDirectory, err)
	}
	modelPath := filepath.Join(modelDirectory, resource.Snake+".go")
	if err := os.WriteFile(modelPath, []byte(ModelTemplate(resource)), 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", modelPath, err)
	}
	log.Printf("created %s", modelPath)

	// * write the router file
	routerDirectory := filepath.Join(app.Directory, "app", "routers")
	if err := os.MkdirAll(routerDirectory, 0755); err != nil {
		return fmt.Errorf("unable to create %s: %w", routerDirectory, err)
	}
	routerPath := filepath.Join(routerDirectory, resource.Snake+".go")
	if err := os.WriteFile(routerPath, []byte(RouterTemplate(resource)), 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", routerPath, err)
	}
	log.Printf("created %s", routerPath)

	// * mount the router in the entry point
	if err := RegisterRouter(app.Directory, resource); err != nil {
		return err
	}

	log.Printf("resource %s ready, endpoints mounted at /%s", resource.Struct, resource.Snake)
	return nil
}
