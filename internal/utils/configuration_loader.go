package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	environmentKeySeparatorOldConstant              = "."
	environmentKeySeparatorNewConstant              = "_"
	configurationReadErrorTemplateConstant          = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
)

// ConfigurationLoaderSettings describes how a ConfigurationLoader resolves configuration sources.
type ConfigurationLoaderSettings struct {
	ConfigurationName         string
	ConfigurationType         string
	EnvironmentPrefix         string
	SearchPaths               []string
	EmbeddedConfiguration     []byte
	EmbeddedConfigurationType string
}

// ConfigurationLoader wraps Viper to load structured configuration files and environment overrides.
type ConfigurationLoader struct {
	settings               ConfigurationLoaderSettings
	environmentKeyReplacer *strings.Replacer
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader honoring the provided settings.
func NewConfigurationLoader(settings ConfigurationLoaderSettings) *ConfigurationLoader {
	duplicatedSettings := settings
	duplicatedSettings.SearchPaths = append([]string{}, settings.SearchPaths...)
	duplicatedSettings.EmbeddedConfiguration = append([]byte{}, settings.EmbeddedConfiguration...)
	duplicatedSettings.EmbeddedConfigurationType = strings.TrimSpace(settings.EmbeddedConfigurationType)

	return &ConfigurationLoader{
		settings:               duplicatedSettings,
		environmentKeyReplacer: strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant),
	}
}

// LoadConfiguration populates targetConfiguration using embedded defaults, configuration files, and environment variables.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.settings.ConfigurationName)
	viperInstance.SetConfigType(loader.settings.ConfigurationType)

	if len(loader.settings.EmbeddedConfiguration) > 0 {
		embeddedConfigurationType := loader.settings.ConfigurationType
		if len(loader.settings.EmbeddedConfigurationType) > 0 {
			embeddedConfigurationType = loader.settings.EmbeddedConfigurationType
		}

		viperInstance.SetConfigType(embeddedConfigurationType)
		mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.settings.EmbeddedConfiguration))
		if mergeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
		}

		viperInstance.SetConfigType(loader.settings.ConfigurationType)
	}

	for _, searchPath := range loader.settings.SearchPaths {
		viperInstance.AddConfigPath(searchPath)
	}

	viperInstance.SetEnvPrefix(loader.settings.EnvironmentPrefix)
	if loader.environmentKeyReplacer != nil {
		viperInstance.SetEnvKeyReplacer(loader.environmentKeyReplacer)
	}
	viperInstance.AutomaticEnv()

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	if len(configurationFilePath) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	}

	readError := viperInstance.MergeInConfig()
	if readError != nil {
		if _, isNotFound := readError.(viper.ConfigFileNotFoundError); !isNotFound {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	unmarshalError := viperInstance.Unmarshal(targetConfiguration)
	if unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	loadedConfiguration := LoadedConfiguration{
		ConfigFileUsed: viperInstance.ConfigFileUsed(),
	}

	return loadedConfiguration, nil
}
