// Package format dispatches staged files to external code formatters.
//
// It defines the Formatter capability interfaces, an extension-keyed
// Registry, the rustfmt and black implementations used by the pre-commit
// pipeline, and the pure option-flattening transformation rustfmt requires.
package format
