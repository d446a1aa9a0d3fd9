package execshell

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors reported during executor construction.
var (
	ErrLoggerNotConfigured        = errors.New("shell executor requires a logger")
	ErrCommandRunnerNotConfigured = errors.New("shell executor requires a command runner")
)

// CommandName identifies an external executable invoked by the executor.
type CommandName string

// External tools orchestrated by precommit.
const (
	CommandGit             CommandName = "git"
	CommandCargo           CommandName = "cargo"
	CommandRustFormatter   CommandName = "rustfmt"
	CommandPythonFormatter CommandName = "black"
)

// CommandDetails captures the invocation parameters for a shell command.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand couples an executable name with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of a completed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner executes shell commands and reports their results.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// CommandFailedError reports a command that completed with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the command failure including the tool's diagnostics.
func (failedError CommandFailedError) Error() string {
	formatter := CommandMessageFormatter{}
	return formatter.BuildFailureMessage(failedError.Command, failedError.Result)
}

// ExitCode exposes the failing command's exit status for propagation.
func (failedError CommandFailedError) ExitCode() int {
	return failedError.Result.ExitCode
}

// CommandExecutionError reports a command that could not be executed at all.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (executionError CommandExecutionError) Error() string {
	formatter := CommandMessageFormatter{}
	return formatter.BuildExecutionFailureMessage(executionError.Command, executionError.Cause)
}

// Unwrap exposes the underlying cause.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

// ShellExecutor coordinates external command execution with structured logging and lifecycle events.
type ShellExecutor struct {
	logger    *zap.Logger
	runner    CommandRunner
	observer  CommandEventObserver
	formatter CommandMessageFormatter
}

// NewShellExecutor constructs an executor backed by the supplied logger and runner.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner) (*ShellExecutor, error) {
	return NewShellExecutorWithObserver(logger, runner, nil)
}

// NewShellExecutorWithObserver constructs an executor that additionally notifies the provided observer.
func NewShellExecutorWithObserver(logger *zap.Logger, runner CommandRunner, observer CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	if observer == nil {
		observer = noopCommandEventObserver{}
	}

	return &ShellExecutor{
		logger:    logger,
		runner:    runner,
		observer:  observer,
		formatter: CommandMessageFormatter{},
	}, nil
}

// ExecuteGit runs the git executable with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

// ExecuteCargo runs the cargo executable with the provided details.
func (executor *ShellExecutor) ExecuteCargo(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandCargo, Details: details})
}

// ExecuteRustFormatter runs the rustfmt executable with the provided details.
func (executor *ShellExecutor) ExecuteRustFormatter(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandRustFormatter, Details: details})
}

// ExecutePythonFormatter runs the black executable with the provided details.
func (executor *ShellExecutor) ExecutePythonFormatter(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandPythonFormatter, Details: details})
}

// Execute runs an arbitrary shell command, logging lifecycle events and translating failures.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logger.Debug(executor.formatter.BuildStartedMessage(command))
	executor.observer.CommandStarted(command)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.observer.CommandExecutionFailed(command, runError)
		executor.logger.Error(executor.formatter.BuildExecutionFailureMessage(command, runError))
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.observer.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		executor.logger.Warn(executor.formatter.BuildFailureMessage(command, executionResult))
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Info(executor.formatter.BuildSuccessMessage(command))
	return executionResult, nil
}
