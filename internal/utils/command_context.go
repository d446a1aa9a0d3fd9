package utils

import "context"

type commandContextKey int

const (
	configurationFilePathContextKeyConstant commandContextKey = iota
)

// CommandContextAccessor reads and writes the values the root command carries
// on its execution context for subcommands.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath returns a context carrying the resolved configuration file path.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath reports the configuration file path stored on the context, if any.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	storedFilePath, storedFilePathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	return storedFilePath, storedFilePathAvailable
}
