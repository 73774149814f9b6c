package serve

import (
	"fmt"
	"log"
	"os"
	"os/exec"

	"go.reef.dev/open/fin/command/fin/app"
	"go.reef.dev/open/fin/command/fin/common/config"
)

type Command struct{}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

// Run starts the development server of the project by delegating to the Go
// toolchain, with the child process wired to the current terminal.
func Run(app *app.App, command *Command) error {
	project, err := config.Load(app.Directory)
	if err != nil {
		return err
	}

	log.Printf("starting development server for %s", project.Module)

	cmd := exec.Command("go", "run", "./app")
	cmd.Dir = app.Directory
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("development server exited: %w", err)
	}

	return nil
}
