package endpoint

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.reef.dev/open/fin/command/fin/app"
)

type Command struct{}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

// Run prints the endpoint table for every router under app/routers.
func Run(app *app.App, command *Command) error {
	directory := filepath.Join(app.Directory, "app", "routers")

	if _, err := os.Stat(directory); err != nil {
		log.Printf("no routers directory found in %s, run 'fin new' first", app.Directory)
		return nil
	}

	routes, err := Scan(directory)
	if err != nil {
		return err
	}

	fmt.Print(EndpointTable(routes))
	return nil
}

// Scan collects the routes declared in the router files of the directory, in
// filename order, keeping the declaration order within each file.
func Scan(directory string) ([]Route, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", directory, err)
	}

	var routes []Route
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(directory, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", entry.Name(), err)
		}

		router := strings.TrimSuffix(entry.Name(), ".go")
		for _, match := range routeRegex.FindAllStringSubmatch(string(content), -1) {
			routes = append(routes, Route{
				Router: router,
				Method: strings.ToUpper(match[2]),
				Path:   match[3],
			})
		}
	}

	return routes, nil
}

// EndpointTable renders the routes as the aligned table printed by the list
// command.
func EndpointTable(routes []Route) string {
	var table strings.Builder

	table.WriteString(fmt.Sprintf("%-15s %-10s %s\n", "ROUTER", "METHOD", "PATH"))
	table.WriteString(strings.Repeat("-", 60) + "\n")

	for _, route := range routes {
		table.WriteString(fmt.Sprintf("%-15s %-10s %s\n", route.Router, route.Method, clip(route.Path, 40)))
	}

	table.WriteString(strings.Repeat("-", 60) + "\n")
	table.WriteString(fmt.Sprintf("Total: %d endpoints\n", len(routes)))

	return table.String()
}

// clip shortens long paths so the table stays readable.
func clip(path string, limit int) string {
	runes := []rune(path)
	if len(runes) <= limit {
		return path
	}
	return string(runes[:limit-3]) + "..."
}
