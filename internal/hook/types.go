package hook

import (
	"context"

	"github.com/temirov/precommit/internal/format"
)

// CommandOptions captures the configurable parameters for a pipeline run.
type CommandOptions struct {
	RepositoryPath string
	SkipAudit      bool
}

// DependencyAuditRunner verifies the dependency tree before any file is touched.
type DependencyAuditRunner interface {
	Run(executionContext context.Context, repositoryPath string) error
}

// StagedFileManager enumerates and re-stages the files queued for the next commit.
type StagedFileManager interface {
	CheckIsRepository(executionContext context.Context, repositoryPath string) bool
	ListStagedFiles(executionContext context.Context, repositoryPath string) ([]string, error)
	StageFile(executionContext context.Context, repositoryPath string, filePath string) error
}

// FormatterRegistry resolves the formatter responsible for an extension tag.
type FormatterRegistry interface {
	Lookup(extensionTag string) (format.Formatter, bool)
}
