package initialize

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ddddddO/gtree"
	"github.com/lithammer/dedent"
	"go.reef.dev/open/fin/command/fin/template"
)

// Node describes one entry of the project skeleton. Directory nodes carry
// children, file nodes carry the template rendered on creation.
type Node struct {
	Name     string
	Template []byte
	Children []*Node
}

// Structure returns the project skeleton written by the initializer.
func Structure() []*Node {
	return []*Node{
		{Name: "fin.yml", Template: template.StructureManifest},
		{Name: "go.mod", Template: template.StructureGomod},
		{Name: "app", Children: []*Node{
			{Name: "main.go", Template: template.StructureMain},
			{Name: "database.go", Template: template.StructureDatabase},
			{Name: "dependencies.go", Template: template.StructureDependencies},
			{Name: "models", Children: []*Node{
				{Name: "models.go", Template: template.StructureModels},
			}},
			{Name: "routers", Children: []*Node{}},
			{Name: "internal", Children: []*Node{
				{Name: "admin.go", Template: template.StructureAdmin},
			}},
		}},
	}
}

// EnsureNode creates the node under base, leaving existing files untouched.
func EnsureNode(base string, node *Node, data *template.Data) error {
	target := filepath.Join(base, node.Name)

	// * directory node
	if node.Template == nil {
		if err := os.MkdirAll(target, 0755); err != nil {
			return fmt.Errorf("unable to create directory %s: %w", target, err)
		}
		for _, child := range node.Children {
			if err := EnsureNode(target, child, data); err != nil {
				return err
			}
		}
		return nil
	}

	// * keep existing files untouched
	if _, err := os.Stat(target); err == nil {
		log.Printf("skipped %s (already exists)", target)
		return nil
	}

	// * render and write file
	content, err := template.Render(node.Template, data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, content, 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", target, err)
	}

	log.Printf("created %s", target)
	return nil
}

// PrintTree renders the skeleton as a tree rooted at the project name.
func PrintTree(w io.Writer, name string, nodes []*Node) error {
	root := gtree.NewRoot(name)
	for _, node := range nodes {
		appendNode(root, node)
	}
	return gtree.OutputProgrammably(w, root)
}

func appendNode(parent *gtree.Node, node *Node) {
	current := parent.Add(node.Name)
	for _, child := range node.Children {
		appendNode(current, child)
	}
}

var logo = dedent.Dedent(`
	        ___
	   ><((((*>    fin
	      ~  ~  ~
`)
