package model

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// RegisterRouter splices the router mount for the resource into app/main.go.
// The entry point is patched line by line, anchored on the import block and
// the router declaration, and both lines are guarded so repeated runs leave
// the file unchanged.
func RegisterRouter(directory string, resource *Resource) error {
	entry := filepath.Join(directory, "app", "main.go")

	content, err := os.ReadFile(entry)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("app/main.go not found, mount the router manually: routers.New%sRouter(db).Routes()", resource.Struct)
			return nil
		}
		return fmt.Errorf("unable to read %s: %w", entry, err)
	}

	text := string(content)
	original := text
	importPath := fmt.Sprintf("%q", resource.Module+"/app/routers")
	mountCall := fmt.Sprintf("router.Mount(%q, routers.New%sRouter(db).Routes())", "/"+resource.Snake, resource.Struct)

	// * add the routers import once, as its own import group below the
	//   compat imports, shared by every generated router
	if !strings.Contains(text, importPath) {
		anchors := []string{`"go.reef.dev/open/fin/compat/response"`, `"net/http"`, "import ("}
		text = insertAfter(text, anchors, "", "\t"+importPath)
	}

	// * mount the router once
	if !strings.Contains(text, mountCall) {
		text = insertAfter(text, []string{"router :="}, "\t"+mountCall)
	}

	if text == original {
		log.Printf("router /%s already registered in %s", resource.Snake, entry)
		return nil
	}

	if err := os.WriteFile(entry, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", entry, err)
	}

	log.Printf("patched %s", entry)
	return nil
}

// insertAfter splices lines below the first line containing one of the
// anchors, trying them in order. Without a matching anchor the lines are
// appended at the end of the file, on a fresh line.
func insertAfter(text string, anchors []string, lines ...string) string {
	split := strings.Split(text, "\n")
	for _, anchor := range anchors {
		for index, current := range split {
			if strings.Contains(current, anchor) {
				spliced := append([]string{}, split[:index+1]...)
				spliced = append(spliced, lines...)
				spliced = append(spliced, split[index+1:]...)
				return strings.Join(spliced, "\n")
			}
		}
	}

	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text + strings.Join(lines, "\n") + "\n"
}
