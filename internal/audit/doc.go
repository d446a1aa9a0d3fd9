// Package audit runs the dependency vulnerability audit that gates the
// pre-commit pipeline.
//
// It exposes DependencyAuditor, a thin capability over the cargo audit
// subcommand executed through execshell, so the hook runner can treat the
// audit as a swappable collaborator.
package audit
