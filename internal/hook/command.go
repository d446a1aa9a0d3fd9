package hook

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/precommit/internal/audit"
	"github.com/temirov/precommit/internal/execshell"
	"github.com/temirov/precommit/internal/format"
	"github.com/temirov/precommit/internal/gitrepo"
	"github.com/temirov/precommit/internal/utils"
)

const (
	commandUseConstant              = "run"
	commandShortDescriptionConstant = "Run the pre-commit pipeline against staged files"
	commandLongDescriptionConstant  = "run audits the dependency tree, formats staged Rust and Python sources, and re-stages every staged file before the commit is created."

	repositoryFlagNameConstant        = "repository"
	repositoryFlagDescriptionConstant = "Path to the repository whose staged files are processed"
	skipAuditFlagNameConstant         = "skip-audit"
	skipAuditFlagDescriptionConstant  = "Skip the dependency audit precondition"

	shellExecutorErrorTemplateConstant     = "unable to construct shell executor: %w"
	repositoryManagerErrorTemplateConstant = "unable to construct repository manager: %w"
	dependencyAuditorErrorTemplateConstant = "unable to construct dependency auditor: %w"
	rustFormatterErrorTemplateConstant     = "unable to construct rust formatter: %w"
	pythonFormatterErrorTemplateConstant   = "unable to construct python formatter: %w"

	pipelineStartingMessageConstant   = "starting pre-commit pipeline"
	repositoryLogFieldConstant        = "repository"
	configurationFileLogFieldConstant = "config_file"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the run cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider                LoggerProvider
	ConfigurationProvider         func() CommandConfiguration
	GitExecutor                   gitrepo.GitExecutor
	CargoExecutor                 audit.CargoExecutor
	RustFormatterExecutor         format.RustFormatterExecutor
	PythonFormatterExecutor       format.PythonFormatterExecutor
	OptionsFileReader             format.FileReader
	CommandEventsObserverProvider func() execshell.CommandEventObserver
}

// Build constructs the cobra command for the pre-commit pipeline.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(repositoryFlagNameConstant, "", repositoryFlagDescriptionConstant)
	command.Flags().Bool(skipAuditFlagNameConstant, false, skipAuditFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	repositoryPath := configuration.Repository
	if command.Flags().Changed(repositoryFlagNameConstant) {
		flagValue, _ := command.Flags().GetString(repositoryFlagNameConstant)
		repositoryPath = strings.TrimSpace(flagValue)
	}
	if len(arguments) > 0 {
		repositoryPath = strings.TrimSpace(arguments[0])
	}
	if len(repositoryPath) == 0 {
		repositoryPath = defaultRepositoryPathConstant
	}

	skipAudit := configuration.SkipAudit
	if command.Flags().Changed(skipAuditFlagNameConstant) {
		skipAudit, _ = command.Flags().GetBool(skipAuditFlagNameConstant)
	}

	logger := builder.resolveLogger()

	pipelineLogFields := []zap.Field{zap.String(repositoryLogFieldConstant, repositoryPath)}
	if configurationFilePath, configurationFilePathAvailable := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context()); configurationFilePathAvailable {
		pipelineLogFields = append(pipelineLogFields, zap.String(configurationFileLogFieldConstant, configurationFilePath))
	}
	logger.Debug(pipelineStartingMessageConstant, pipelineLogFields...)

	gitExecutor, cargoExecutor, rustExecutor, pythonExecutor, executorError := builder.resolveExecutors(logger)
	if executorError != nil {
		return fmt.Errorf(shellExecutorErrorTemplateConstant, executorError)
	}

	gitManager, managerError := gitrepo.NewRepositoryManager(gitExecutor)
	if managerError != nil {
		return fmt.Errorf(repositoryManagerErrorTemplateConstant, managerError)
	}

	dependencyAuditor, auditorError := audit.NewDependencyAuditor(cargoExecutor)
	if auditorError != nil {
		return fmt.Errorf(dependencyAuditorErrorTemplateConstant, auditorError)
	}

	optionsFileReader := builder.OptionsFileReader
	if optionsFileReader == nil {
		optionsFileReader = format.OSFileReader{}
	}

	rustFormatter, rustError := format.NewRustFormatter(rustExecutor, optionsFileReader, repositoryPath, configuration.RustfmtOptions)
	if rustError != nil {
		return fmt.Errorf(rustFormatterErrorTemplateConstant, rustError)
	}

	pythonFormatter, pythonError := format.NewPythonFormatter(pythonExecutor, repositoryPath)
	if pythonError != nil {
		return fmt.Errorf(pythonFormatterErrorTemplateConstant, pythonError)
	}

	registry := format.NewRegistry(rustFormatter, pythonFormatter)

	service := NewService(dependencyAuditor, gitManager, registry, utils.NewFlushingWriter(command.OutOrStdout()), utils.NewFlushingWriter(command.ErrOrStderr()))

	options := CommandOptions{
		RepositoryPath: repositoryPath,
		SkipAudit:      skipAudit,
	}

	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}

	provided := builder.ConfigurationProvider()
	return provided.Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// resolveExecutors supplies defaults for any tool executor the caller did not
// inject, sharing a single shell executor across the missing ones.
func (builder *CommandBuilder) resolveExecutors(logger *zap.Logger) (gitrepo.GitExecutor, audit.CargoExecutor, format.RustFormatterExecutor, format.PythonFormatterExecutor, error) {
	gitExecutor := builder.GitExecutor
	cargoExecutor := builder.CargoExecutor
	rustExecutor := builder.RustFormatterExecutor
	pythonExecutor := builder.PythonFormatterExecutor

	if gitExecutor != nil && cargoExecutor != nil && rustExecutor != nil && pythonExecutor != nil {
		return gitExecutor, cargoExecutor, rustExecutor, pythonExecutor, nil
	}

	var commandEventsObserver execshell.CommandEventObserver
	if builder.CommandEventsObserverProvider != nil {
		commandEventsObserver = builder.CommandEventsObserverProvider()
	}

	shellExecutor, shellError := execshell.NewShellExecutorWithObserver(logger, execshell.NewOSCommandRunner(), commandEventsObserver)
	if shellError != nil {
		return nil, nil, nil, nil, shellError
	}

	if gitExecutor == nil {
		gitExecutor = shellExecutor
	}
	if cargoExecutor == nil {
		cargoExecutor = shellExecutor
	}
	if rustExecutor == nil {
		rustExecutor = shellExecutor
	}
	if pythonExecutor == nil {
		pythonExecutor = shellExecutor
	}

	return gitExecutor, cargoExecutor, rustExecutor, pythonExecutor, nil
}
