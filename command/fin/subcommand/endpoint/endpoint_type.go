package endpoint

import "regexp"

// Route represents one registered endpoint inside a generated router file.
type Route struct {
	Router string // Router name, taken from the file stem
	Method string // HTTP method (GET, POST, etc.)
	Path   string // Endpoint path relative to the mount point
}

var (
	// Route extraction regex: router.Method("/path", handler)
	routeRegex = regexp.MustCompile(`(\w+)\.(Get|Post|Put|Delete|Patch)\(\s*"([^"]*)"`)
)
