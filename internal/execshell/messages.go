package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitDiffSubcommandNameConstant     = "diff"
	gitCachedFlagConstant             = "--cached"
	gitAddSubcommandNameConstant      = "add"
	gitRevParseSubcommandNameConstant = "rev-parse"
	gitWorkTreeFlagConstant           = "--is-inside-work-tree"
	gitPathspecSeparatorConstant      = "--"
)

const (
	gitStagedListStartTemplateConstant            = "Listing staged files in %s"
	gitStagedListSuccessTemplateConstant          = "Listed staged files in %s"
	gitStagedListFailureTemplateConstant          = "Failed to list staged files in %s (exit code %d%s)"
	gitStagedListExecutionFailureTemplateConstant = "Unable to list staged files in %s: %s"
	gitWorkTreeStartTemplateConstant              = "Analyzing repository at %s"
	gitWorkTreeSuccessTemplateConstant            = "%s is a Git repository"
	gitWorkTreeFailureTemplateConstant            = "Could not confirm %s is a Git repository (exit code %d%s)"
	gitWorkTreeExecutionFailureTemplateConstant   = "Could not analyze %s: %s"
	gitAddStartTemplateConstant                   = "Staging %s in %s"
	gitAddSuccessTemplateConstant                 = "Staged %s in %s"
	gitAddFailureTemplateConstant                 = "Failed to stage %s in %s (exit code %d%s)"
	gitAddExecutionFailureTemplateConstant        = "Unable to stage %s in %s: %s"
)

const (
	cargoAuditSubcommandNameConstant = "audit"
)

const (
	cargoAuditStartTemplateConstant            = "Auditing dependencies in %s"
	cargoAuditSuccessTemplateConstant          = "Dependency audit passed in %s"
	cargoAuditFailureTemplateConstant          = "Dependency audit failed in %s (exit code %d%s)"
	cargoAuditExecutionFailureTemplateConstant = "Unable to audit dependencies in %s: %s"
)

const (
	rustFormatterCheckFlagConstant = "--check"
)

const (
	rustFormatterCheckStartTemplateConstant            = "Checking formatting of %s"
	rustFormatterCheckSuccessTemplateConstant          = "%s satisfies formatting and license checks"
	rustFormatterCheckFailureTemplateConstant          = "%s violates formatting or license requirements (exit code %d%s)"
	rustFormatterCheckExecutionFailureTemplateConstant = "Unable to check formatting of %s: %s"
	rustFormatterWriteStartTemplateConstant            = "Formatting %s"
	rustFormatterWriteSuccessTemplateConstant          = "Formatted %s"
	rustFormatterWriteFailureTemplateConstant          = "Failed to format %s (exit code %d%s)"
	rustFormatterWriteExecutionFailureTemplateConstant = "Unable to format %s: %s"
)

const (
	pythonFormatterStartTemplateConstant            = "Formatting %s"
	pythonFormatterSuccessTemplateConstant          = "Formatted %s"
	pythonFormatterFailureTemplateConstant          = "Failed to format %s (exit code %d%s)"
	pythonFormatterExecutionFailureTemplateConstant = "Unable to format %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandGit:
		return formatter.describeGitMessage(command, result, failure, stage)
	case CommandCargo:
		return formatter.describeCargoMessage(command, result, failure, stage)
	case CommandRustFormatter:
		return formatter.describeRustFormatterMessage(command, result, failure, stage)
	case CommandPythonFormatter:
		return formatter.describePythonFormatterMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	workingDirectory := formatter.describeWorkingDirectory(command)
	subcommand := strings.TrimSpace(arguments[0])

	switch subcommand {
	case gitDiffSubcommandNameConstant:
		if !containsArgument(arguments, gitCachedFlagConstant) {
			return formatter.buildGenericMessage(command, result, failure, stage)
		}
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitStagedListStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitStagedListSuccessTemplateConstant, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitStagedListFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitStagedListExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	case gitRevParseSubcommandNameConstant:
		if !containsArgument(arguments, gitWorkTreeFlagConstant) {
			return formatter.buildGenericMessage(command, result, failure, stage)
		}
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitWorkTreeStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitWorkTreeSuccessTemplateConstant, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitWorkTreeFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitWorkTreeExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	case gitAddSubcommandNameConstant:
		stagedPath := formatter.ensureValue(formatter.extractStagedPath(arguments))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitAddStartTemplateConstant, stagedPath, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitAddSuccessTemplateConstant, stagedPath, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitAddFailureTemplateConstant, stagedPath, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitAddExecutionFailureTemplateConstant, stagedPath, workingDirectory, formatter.describeFailure(failure))
		}
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeCargoMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) == 0 || strings.TrimSpace(arguments[0]) != cargoAuditSubcommandNameConstant {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(cargoAuditStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(cargoAuditSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(cargoAuditFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatDiagnosticsSuffix(result))
	case messageStageExecutionFailure:
		return fmt.Sprintf(cargoAuditExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeRustFormatterMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	targetPath := formatter.ensureValue(formatter.extractTrailingPath(arguments))

	if containsArgument(arguments, rustFormatterCheckFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(rustFormatterCheckStartTemplateConstant, targetPath)
		case messageStageSuccess:
			return fmt.Sprintf(rustFormatterCheckSuccessTemplateConstant, targetPath)
		case messageStageFailure:
			return fmt.Sprintf(rustFormatterCheckFailureTemplateConstant, targetPath, result.ExitCode, formatter.formatDiagnosticsSuffix(result))
		case messageStageExecutionFailure:
			return fmt.Sprintf(rustFormatterCheckExecutionFailureTemplateConstant, targetPath, formatter.describeFailure(failure))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(rustFormatterWriteStartTemplateConstant, targetPath)
	case messageStageSuccess:
		return fmt.Sprintf(rustFormatterWriteSuccessTemplateConstant, targetPath)
	case messageStageFailure:
		return fmt.Sprintf(rustFormatterWriteFailureTemplateConstant, targetPath, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(rustFormatterWriteExecutionFailureTemplateConstant, targetPath, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describePythonFormatterMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	targetPath := formatter.ensureValue(formatter.extractTrailingPath(command.Details.Arguments))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(pythonFormatterStartTemplateConstant, targetPath)
	case messageStageSuccess:
		return fmt.Sprintf(pythonFormatterSuccessTemplateConstant, targetPath)
	case messageStageFailure:
		return fmt.Sprintf(pythonFormatterFailureTemplateConstant, targetPath, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(pythonFormatterExecutionFailureTemplateConstant, targetPath, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return commandLabel
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	commandLabel := strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)

	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return commandLabel
	}
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory))
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

// formatDiagnosticsSuffix surfaces stdout as well, because cargo audit and
// rustfmt --check report their findings on standard output.
func (formatter CommandMessageFormatter) formatDiagnosticsSuffix(result ExecutionResult) string {
	diagnosticParts := make([]string, 0, 2)
	if trimmedOutput := strings.TrimSpace(result.StandardOutput); len(trimmedOutput) > 0 {
		diagnosticParts = append(diagnosticParts, trimmedOutput)
	}
	if trimmedError := strings.TrimSpace(result.StandardError); len(trimmedError) > 0 {
		diagnosticParts = append(diagnosticParts, trimmedError)
	}
	if len(diagnosticParts) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, strings.Join(diagnosticParts, commandArgumentsJoinSeparatorConstant))
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmedValue
}

// extractStagedPath returns the pathspec following the `--` separator of a git add invocation.
func (formatter CommandMessageFormatter) extractStagedPath(arguments []string) string {
	for argumentIndex, argument := range arguments {
		if argument == gitPathspecSeparatorConstant && argumentIndex+1 < len(arguments) {
			return arguments[argumentIndex+1]
		}
	}
	if len(arguments) > 1 {
		return arguments[len(arguments)-1]
	}
	return emptyStringConstant
}

// extractTrailingPath returns the final non-flag argument of a formatter invocation.
func (formatter CommandMessageFormatter) extractTrailingPath(arguments []string) string {
	for argumentIndex := len(arguments) - 1; argumentIndex >= 0; argumentIndex-- {
		candidate := strings.TrimSpace(arguments[argumentIndex])
		if len(candidate) == 0 {
			continue
		}
		if strings.HasPrefix(candidate, "-") {
			continue
		}
		return candidate
	}
	return emptyStringConstant
}

func containsArgument(arguments []string, flagValue string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == flagValue {
			return true
		}
	}
	return false
}
