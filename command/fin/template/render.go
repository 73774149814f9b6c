package template

import (
	"bytes"
	"fmt"
	texttemplate "text/template"
)

// Data carries the values substituted into structure templates.
type Data struct {
	Module string
}

// Render executes a structure template against the given data.
func Render(content []byte, data *Data) ([]byte, error) {
	parsed, err := texttemplate.New("structure").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("unable to parse template: %w", err)
	}

	var buffer bytes.Buffer
	if err := parsed.Execute(&buffer, data); err != nil {
		return nil, fmt.Errorf("unable to render template: %w", err)
	}

	return buffer.Bytes(), nil
}
