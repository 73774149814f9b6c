package app

// App carries the global command line options shared by every subcommand.
type App struct {
	Verbose   bool
	Directory string
}
