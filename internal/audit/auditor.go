package audit

import (
	"context"
	"errors"

	"github.com/temirov/precommit/internal/execshell"
)

const (
	auditSubcommandNameConstant     = "audit"
	executorRequiredMessageConstant = "dependency auditor requires a cargo executor"
)

// CargoExecutor describes the cargo execution dependency required by DependencyAuditor.
type CargoExecutor interface {
	ExecuteCargo(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// DependencyAuditor checks the dependency tree for known vulnerable crates.
type DependencyAuditor struct {
	executor CargoExecutor
}

// NewDependencyAuditor constructs a DependencyAuditor backed by the provided executor.
func NewDependencyAuditor(executor CargoExecutor) (*DependencyAuditor, error) {
	if executor == nil {
		return nil, errors.New(executorRequiredMessageConstant)
	}
	return &DependencyAuditor{executor: executor}, nil
}

// Run executes the audit against the repository at repositoryPath.
//
// A nil return means no vulnerable dependency was reported; any failure is
// returned unmodified so callers can propagate the auditor's exit status.
func (auditor *DependencyAuditor) Run(executionContext context.Context, repositoryPath string) error {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{auditSubcommandNameConstant},
		WorkingDirectory: repositoryPath,
	}

	_, executionError := auditor.executor.ExecuteCargo(executionContext, commandDetails)
	return executionError
}
