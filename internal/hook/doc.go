// Package hook implements the pre-commit pipeline: a dependency audit
// precondition followed by per-file formatter dispatch and re-staging of
// every staged file.
package hook
