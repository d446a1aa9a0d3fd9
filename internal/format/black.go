package format

import (
	"context"
	"errors"

	"github.com/temirov/precommit/internal/execshell"
)

const (
	pythonFormatterNameConstant           = "black"
	pythonExtensionTagConstant            = "py"
	pythonExecutorRequiredMessageConstant = "python formatter requires a black executor"
)

// PythonFormatterExecutor describes the black execution dependency.
type PythonFormatterExecutor interface {
	ExecutePythonFormatter(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// PythonFormatter rewrites Python sources with black. The tool carries no
// separate verification mode, so the formatter only implements write mode.
type PythonFormatter struct {
	executor       PythonFormatterExecutor
	repositoryPath string
}

// NewPythonFormatter constructs a PythonFormatter for the repository at repositoryPath.
func NewPythonFormatter(executor PythonFormatterExecutor, repositoryPath string) (*PythonFormatter, error) {
	if executor == nil {
		return nil, errors.New(pythonExecutorRequiredMessageConstant)
	}
	return &PythonFormatter{executor: executor, repositoryPath: repositoryPath}, nil
}

// Name reports the external tool name.
func (formatter *PythonFormatter) Name() string {
	return pythonFormatterNameConstant
}

// Extensions reports the extension tags handled by black.
func (formatter *PythonFormatter) Extensions() []string {
	return []string{pythonExtensionTagConstant}
}

// Format rewrites the file in place.
func (formatter *PythonFormatter) Format(executionContext context.Context, filePath string) error {
	_, executionError := formatter.executor.ExecutePythonFormatter(executionContext, execshell.CommandDetails{
		Arguments:        []string{filePath},
		WorkingDirectory: formatter.repositoryPath,
	})
	return executionError
}
