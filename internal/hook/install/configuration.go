package install

import "strings"

const (
	configurationRepositoryKeyConstant = "repository"
	configurationForceKeyConstant      = "force"

	defaultRepositoryPathConstant     = "."
	configurationKeySeparatorConstant = "."
)

// CommandConfiguration captures persistent settings for hook installation commands.
type CommandConfiguration struct {
	Repository string `mapstructure:"repository"`
	Force      bool   `mapstructure:"force"`
}

// DefaultCommandConfiguration returns baseline configuration values for hook installation.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Repository: defaultRepositoryPathConstant,
		Force:      false,
	}
}

// DefaultConfigurationValues produces Viper defaults for hook installation commands.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationRepositoryKeyConstant: defaults.Repository,
		rootKey + configurationKeySeparatorConstant + configurationForceKeyConstant:      defaults.Force,
	}
}

// Sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Repository = strings.TrimSpace(configuration.Repository)
	if len(sanitized.Repository) == 0 {
		sanitized.Repository = defaultRepositoryPathConstant
	}

	return sanitized
}
