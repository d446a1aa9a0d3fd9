package format

import (
	"context"
	"path/filepath"
	"strings"
)

const (
	extensionSeparatorConstant = "."
)

// Formatter rewrites a file in place to satisfy style rules.
type Formatter interface {
	// Name identifies the external tool for diagnostics.
	Name() string
	// Extensions lists the extension tags the formatter handles.
	Extensions() []string
	// Format rewrites the file at filePath in write mode.
	Format(executionContext context.Context, filePath string) error
}

// CheckingFormatter additionally verifies compliance without modifying the file.
type CheckingFormatter interface {
	Formatter
	// Check reports a violation error when filePath fails the style or license check.
	Check(executionContext context.Context, filePath string) error
}

// ExtensionTag derives the dispatch key from a file path: the substring after
// the final dot of the base name, or the empty string when the base name
// carries no extension.
func ExtensionTag(filePath string) string {
	baseName := filepath.Base(filePath)
	separatorIndex := strings.LastIndex(baseName, extensionSeparatorConstant)
	if separatorIndex < 0 || separatorIndex == len(baseName)-1 {
		return ""
	}
	return baseName[separatorIndex+1:]
}

// Registry maps extension tags to the formatter responsible for them.
type Registry struct {
	formattersByExtension map[string]Formatter
}

// NewRegistry indexes the provided formatters by their extension tags.
func NewRegistry(formatters ...Formatter) *Registry {
	formattersByExtension := make(map[string]Formatter)
	for _, registeredFormatter := range formatters {
		if registeredFormatter == nil {
			continue
		}
		for _, extensionTag := range registeredFormatter.Extensions() {
			normalizedTag := strings.TrimSpace(extensionTag)
			if len(normalizedTag) == 0 {
				continue
			}
			formattersByExtension[normalizedTag] = registeredFormatter
		}
	}
	return &Registry{formattersByExtension: formattersByExtension}
}

// Lookup resolves the formatter for an extension tag.
func (registry *Registry) Lookup(extensionTag string) (Formatter, bool) {
	registeredFormatter, found := registry.formattersByExtension[extensionTag]
	return registeredFormatter, found
}
