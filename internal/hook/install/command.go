package install

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	installCommandUseConstant              = "install"
	installCommandShortDescriptionConstant = "Install the pre-commit hook into a repository"
	installCommandLongDescriptionConstant  = "install writes a pre-commit hook script that runs the precommit pipeline before every commit."

	uninstallCommandUseConstant              = "uninstall"
	uninstallCommandShortDescriptionConstant = "Remove the managed pre-commit hook from a repository"
	uninstallCommandLongDescriptionConstant  = "uninstall removes the pre-commit hook script previously written by install, leaving hooks from other tools untouched."

	repositoryFlagNameConstant        = "repository"
	repositoryFlagDescriptionConstant = "Path to the repository receiving the hook"
	forceFlagNameConstant             = "force"
	forceFlagDescriptionConstant      = "Overwrite an existing hook not managed by precommit"

	installedMessageTemplateConstant = "installed pre-commit hook at %s\n"
	removedMessageTemplateConstant   = "removed pre-commit hook at %s\n"
)

// CommandBuilder assembles the hook installation commands with configurable dependencies.
type CommandBuilder struct {
	FileSystem            FileSystem
	ConfigurationProvider func() CommandConfiguration
}

// BuildInstall constructs the cobra command that installs the hook.
func (builder *CommandBuilder) BuildInstall() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   installCommandUseConstant,
		Short: installCommandShortDescriptionConstant,
		Long:  installCommandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.runInstall,
	}

	command.Flags().String(repositoryFlagNameConstant, "", repositoryFlagDescriptionConstant)
	command.Flags().Bool(forceFlagNameConstant, false, forceFlagDescriptionConstant)

	return command, nil
}

// BuildUninstall constructs the cobra command that removes the hook.
func (builder *CommandBuilder) BuildUninstall() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   uninstallCommandUseConstant,
		Short: uninstallCommandShortDescriptionConstant,
		Long:  uninstallCommandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.runUninstall,
	}

	command.Flags().String(repositoryFlagNameConstant, "", repositoryFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) runInstall(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	repositoryPath := builder.resolveRepository(command, arguments, configuration)

	force := configuration.Force
	if command.Flags().Changed(forceFlagNameConstant) {
		force, _ = command.Flags().GetBool(forceFlagNameConstant)
	}

	installer := NewInstaller(builder.FileSystem)
	hookPath, installError := installer.Install(repositoryPath, force)
	if installError != nil {
		return installError
	}

	fmt.Fprintf(command.OutOrStdout(), installedMessageTemplateConstant, hookPath)
	return nil
}

func (builder *CommandBuilder) runUninstall(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	repositoryPath := builder.resolveRepository(command, arguments, configuration)

	installer := NewInstaller(builder.FileSystem)
	hookPath, uninstallError := installer.Uninstall(repositoryPath)
	if uninstallError != nil {
		return uninstallError
	}

	fmt.Fprintf(command.OutOrStdout(), removedMessageTemplateConstant, hookPath)
	return nil
}

func (builder *CommandBuilder) resolveRepository(command *cobra.Command, arguments []string, configuration CommandConfiguration) string {
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
	return repositoryPath
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}

	provided := builder.ConfigurationProvider()
	return provided.Sanitize()
}
