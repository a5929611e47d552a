// Package schemas embeds the JSON Schemas describing resume documents so
// validation works regardless of the working directory the CLI runs from.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// Get returns the raw contents of a schema file by name
// (e.g. "resume_document.schema.json").
func Get(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema %s not found: %w", name, err)
	}
	return string(data), nil
}

// MustGet returns a schema's contents, panicking if it is not embedded.
// Use for schemas that are required at initialization time.
func MustGet(name string) string {
	content, err := Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load schema: %v", err))
	}
	return content
}
