// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for confirming repository context, enumerating
// the staged file set, and re-staging files after formatters rewrite them.
package gitrepo
