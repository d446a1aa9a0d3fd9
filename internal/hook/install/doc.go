// Package install manages the git pre-commit hook script that delegates to
// the precommit binary.
package install
