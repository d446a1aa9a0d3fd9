package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/precommit/internal/execshell"
)

const (
	gitDiffSubcommandConstant       = "diff"
	gitCachedFlagConstant           = "--cached"
	gitNameOnlyFlagConstant         = "--name-only"
	gitDiffFilterFlagConstant       = "--diff-filter=ACMR"
	gitAddSubcommandConstant        = "add"
	gitPathspecSeparatorConstant    = "--"
	gitRevParseSubcommandConstant   = "rev-parse"
	gitWorkTreeFlagConstant         = "--is-inside-work-tree"
	insideWorkTreeOutputConstant    = "true"
	stagedListLineSeparatorConstant = "\n"
)

const (
	executorRequiredMessageConstant = "repository manager requires a git executor"
	pathRequiredMessageConstant     = "repository manager requires a file path"
)

// GitExecutor describes the git execution dependency required by RepositoryManager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager provides structured git operations over a shell executor.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager backed by the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, errors.New(executorRequiredMessageConstant)
	}
	return &RepositoryManager{executor: executor}, nil
}

// CheckIsRepository reports whether repositoryPath resides inside a git work tree.
func (manager *RepositoryManager) CheckIsRepository(executionContext context.Context, repositoryPath string) bool {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitWorkTreeFlagConstant},
		WorkingDirectory: repositoryPath,
	}

	executionResult, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(executionResult.StandardOutput), insideWorkTreeOutputConstant)
}

// ListStagedFiles returns the ordered set of paths staged for the next commit.
//
// Deleted paths are excluded so formatters and re-staging never touch a file
// that no longer exists in the work tree.
func (manager *RepositoryManager) ListStagedFiles(executionContext context.Context, repositoryPath string) ([]string, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitDiffSubcommandConstant, gitCachedFlagConstant, gitNameOnlyFlagConstant, gitDiffFilterFlagConstant},
		WorkingDirectory: repositoryPath,
	}

	executionResult, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return nil, executionError
	}

	outputText := strings.TrimSpace(executionResult.StandardOutput)
	if len(outputText) == 0 {
		return nil, nil
	}

	stagedLines := strings.Split(outputText, stagedListLineSeparatorConstant)
	stagedFiles := make([]string, 0, len(stagedLines))
	for _, stagedLine := range stagedLines {
		trimmedLine := strings.TrimSpace(stagedLine)
		if len(trimmedLine) == 0 {
			continue
		}
		stagedFiles = append(stagedFiles, trimmedLine)
	}

	return stagedFiles, nil
}

// StageFile re-adds the provided path to the index so formatter rewrites join the commit.
func (manager *RepositoryManager) StageFile(executionContext context.Context, repositoryPath string, filePath string) error {
	trimmedFilePath := strings.TrimSpace(filePath)
	if len(trimmedFilePath) == 0 {
		return errors.New(pathRequiredMessageConstant)
	}

	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitAddSubcommandConstant, gitPathspecSeparatorConstant, trimmedFilePath},
		WorkingDirectory: repositoryPath,
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	return executionError
}
