package main

import (
	"github.com/alecthomas/kong"
	"go.reef.dev/open/fin/command/fin/app"
	"go.reef.dev/open/fin/command/fin/subcommand/endpoint"
	"go.reef.dev/open/fin/command/fin/subcommand/initialize"
	"go.reef.dev/open/fin/command/fin/subcommand/model"
	"go.reef.dev/open/fin/command/fin/subcommand/serve"
)

type Command struct {
	Verbose   bool   `help:"Enable verbose output." short:"v"`
	Directory string `help:"Project directory to operate in." short:"C" default:"."`

	New       *initialize.Command `cmd:"new" help:"Scaffold a new backend project."`
	Makemodel *model.Command      `cmd:"makemodel" help:"Generate a model and CRUD router for a resource."`
	List      *endpoint.Command   `cmd:"list" help:"List every endpoint registered by the routers."`
	Serve     *serve.Command      `cmd:"serve" help:"Run the development server of the project."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("fin"),
		kong.Description("Fin Command Line Interface"),
	)
	err := ctx.Run(&app.App{
		Verbose:   command.Verbose,
		Directory: command.Directory,
	})
	ctx.FatalIfErrorf(err)
}
