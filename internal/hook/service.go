package hook

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/temirov/precommit/internal/format"
)

const (
	auditorRequiredMessageConstant     = "pipeline requires a dependency auditor unless the audit is skipped"
	gitManagerRequiredMessageConstant  = "pipeline requires a staged file manager"
	registryRequiredMessageConstant    = "pipeline requires a formatter registry"
	notRepositoryErrorTemplateConstant = "%s is not inside a git work tree"
)

// Service coordinates the pre-commit pipeline over staged files.
type Service struct {
	auditor      DependencyAuditRunner
	gitManager   StagedFileManager
	registry     FormatterRegistry
	outputWriter io.Writer
	errorWriter  io.Writer
}

// NewService constructs a Service using the provided dependencies.
func NewService(auditor DependencyAuditRunner, gitManager StagedFileManager, registry FormatterRegistry, outputWriter io.Writer, errorWriter io.Writer) *Service {
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	if errorWriter == nil {
		errorWriter = io.Discard
	}
	return &Service{
		auditor:      auditor,
		gitManager:   gitManager,
		registry:     registry,
		outputWriter: outputWriter,
		errorWriter:  errorWriter,
	}
}

// Run executes the pipeline: audit the dependency tree, confirm the
// repository context, then visit every staged file in enumeration order. Each
// file is announced, dispatched to its formatter when one is registered, and
// re-staged. The first failure stops the pipeline before any later file is
// touched.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	if service.gitManager == nil {
		return errors.New(gitManagerRequiredMessageConstant)
	}
	if service.registry == nil {
		return errors.New(registryRequiredMessageConstant)
	}

	if !options.SkipAudit {
		if service.auditor == nil {
			return errors.New(auditorRequiredMessageConstant)
		}
		if auditError := service.auditor.Run(executionContext, options.RepositoryPath); auditError != nil {
			return StepError{Stage: StageDependencyAudit, Cause: auditError}
		}
	}

	if !service.gitManager.CheckIsRepository(executionContext, options.RepositoryPath) {
		return StepError{Stage: StageStagedEnumeration, Cause: fmt.Errorf(notRepositoryErrorTemplateConstant, options.RepositoryPath)}
	}

	stagedFiles, enumerationError := service.gitManager.ListStagedFiles(executionContext, options.RepositoryPath)
	if enumerationError != nil {
		return StepError{Stage: StageStagedEnumeration, Cause: enumerationError}
	}

	for _, stagedFilePath := range stagedFiles {
		fmt.Fprintln(service.outputWriter, stagedFilePath)

		if processError := service.processFile(executionContext, stagedFilePath); processError != nil {
			return processError
		}

		if stageError := service.gitManager.StageFile(executionContext, options.RepositoryPath, stagedFilePath); stageError != nil {
			return StepError{Stage: StageRestage, FilePath: stagedFilePath, Cause: stageError}
		}
	}

	return nil
}

// processFile dispatches a single staged file to its registered formatter.
// Files without a registered extension tag pass through untouched.
func (service *Service) processFile(executionContext context.Context, filePath string) error {
	registeredFormatter, found := service.registry.Lookup(format.ExtensionTag(filePath))
	if !found {
		return nil
	}

	if checkingFormatter, supportsCheck := registeredFormatter.(format.CheckingFormatter); supportsCheck {
		if checkError := checkingFormatter.Check(executionContext, filePath); checkError != nil {
			return StepError{Stage: StageFormatCheck, FilePath: filePath, Cause: checkError}
		}
	}

	if formatError := registeredFormatter.Format(executionContext, filePath); formatError != nil {
		return StepError{Stage: StageFormatWrite, FilePath: filePath, Cause: formatError}
	}

	return nil
}
