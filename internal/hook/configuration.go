package hook

import "strings"

const (
	configurationRepositoryKeyConstant     = "repository"
	configurationRustfmtOptionsKeyConstant = "rustfmt_options"
	configurationSkipAuditKeyConstant      = "skip_audit"

	defaultRepositoryPathConstant     = "."
	defaultRustfmtOptionsPathConstant = "tests/fmt.toml"
	configurationKeySeparatorConstant = "."
)

// CommandConfiguration captures persistent settings for the run command.
type CommandConfiguration struct {
	Repository     string `mapstructure:"repository"`
	RustfmtOptions string `mapstructure:"rustfmt_options"`
	SkipAudit      bool   `mapstructure:"skip_audit"`
}

// DefaultCommandConfiguration returns baseline configuration values for the run command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Repository:     defaultRepositoryPathConstant,
		RustfmtOptions: defaultRustfmtOptionsPathConstant,
		SkipAudit:      false,
	}
}

// DefaultConfigurationValues produces Viper defaults for the run command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationRepositoryKeyConstant:     defaults.Repository,
		rootKey + configurationKeySeparatorConstant + configurationRustfmtOptionsKeyConstant: defaults.RustfmtOptions,
		rootKey + configurationKeySeparatorConstant + configurationSkipAuditKeyConstant:      defaults.SkipAudit,
	}
}

// Sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Repository = strings.TrimSpace(configuration.Repository)
	if len(sanitized.Repository) == 0 {
		sanitized.Repository = defaultRepositoryPathConstant
	}

	sanitized.RustfmtOptions = strings.TrimSpace(configuration.RustfmtOptions)
	if len(sanitized.RustfmtOptions) == 0 {
		sanitized.RustfmtOptions = defaultRustfmtOptionsPathConstant
	}

	return sanitized
}
