package utils_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/precommit/internal/utils"
)

const (
	testEnvironmentPrefixConstant                  = "TESTPRECOMMIT"
	testCommonSectionKeyConstant                   = "common"
	testLogLevelKeyConstant                        = testCommonSectionKeyConstant + ".log_level"
	testLogLevelEnvironmentVariableConstant        = testEnvironmentPrefixConstant + "_COMMON_LOG_LEVEL"
	testDefaultLogLevelConstant                    = "info"
	testConfiguredLogLevelConstant                 = "debug"
	testOverriddenLogLevelConstant                 = "error"
	testFileLogLevelConstant                       = "warn"
	testEmbeddedLogLevelConstant                   = "debug"
	testConfigFileNameConstant                     = "config.yaml"
	testConfigContentTemplateConstant              = "common:\n  log_level: %s\n"
	testConfigurationNameConstant                  = "config"
	testConfigurationTypeConstant                  = "yaml"
	testCaseEmbeddedMessageConstant                = "embedded configuration merges"
	testCaseDefaultsMessageConstant                = "defaults are applied"
	testCaseFileMessageConstant                    = "config file overrides defaults"
	testCaseEnvironmentMessageConstant             = "environment overrides file"
	configurationLoaderSubtestNameTemplateConstant = "%d_%s"
)

type configurationFixture struct {
	Common configurationCommonFixture `mapstructure:"common"`
}

type configurationCommonFixture struct {
	LogLevel string `mapstructure:"log_level"`
}

func TestConfigurationLoaderLoadConfiguration(testInstance *testing.T) {
	testCases := []struct {
		name                string
		embeddedLogLevel    string
		fileLogLevel        string
		environmentLogLevel string
		expectedLogLevel    string
	}{
		{
			name:             testCaseEmbeddedMessageConstant,
			embeddedLogLevel: testEmbeddedLogLevelConstant,
			expectedLogLevel: testEmbeddedLogLevelConstant,
		},
		{
			name:             testCaseDefaultsMessageConstant,
			expectedLogLevel: testDefaultLogLevelConstant,
		},
		{
			name:             testCaseFileMessageConstant,
			fileLogLevel:     testConfiguredLogLevelConstant,
			expectedLogLevel: testConfiguredLogLevelConstant,
		},
		{
			name:                testCaseEnvironmentMessageConstant,
			fileLogLevel:        testFileLogLevelConstant,
			environmentLogLevel: testOverriddenLogLevelConstant,
			expectedLogLevel:    testOverriddenLogLevelConstant,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(configurationLoaderSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			temporaryDirectory := testInstance.TempDir()

			configurationFilePath := ""
			if len(testCase.fileLogLevel) > 0 {
				configurationFilePath = filepath.Join(temporaryDirectory, testConfigFileNameConstant)
				configurationContent := fmt.Sprintf(testConfigContentTemplateConstant, testCase.fileLogLevel)
				writeError := os.WriteFile(configurationFilePath, []byte(configurationContent), 0o600)
				require.NoError(testInstance, writeError)
			}

			if len(testCase.environmentLogLevel) > 0 {
				testInstance.Setenv(testLogLevelEnvironmentVariableConstant, testCase.environmentLogLevel)
			}

			loaderSettings := utils.ConfigurationLoaderSettings{
				ConfigurationName: testConfigurationNameConstant,
				ConfigurationType: testConfigurationTypeConstant,
				EnvironmentPrefix: testEnvironmentPrefixConstant,
				SearchPaths:       []string{temporaryDirectory},
			}
			if len(testCase.embeddedLogLevel) > 0 {
				loaderSettings.EmbeddedConfiguration = []byte(fmt.Sprintf(testConfigContentTemplateConstant, testCase.embeddedLogLevel))
				loaderSettings.EmbeddedConfigurationType = testConfigurationTypeConstant
			}

			configurationLoader := utils.NewConfigurationLoader(loaderSettings)

			defaultValues := map[string]any{
				testLogLevelKeyConstant: testDefaultLogLevelConstant,
			}

			var loadedFixture configurationFixture
			loadedMetadata, loadError := configurationLoader.LoadConfiguration(configurationFilePath, defaultValues, &loadedFixture)
			require.NoError(testInstance, loadError)
			require.Equal(testInstance, testCase.expectedLogLevel, loadedFixture.Common.LogLevel)

			if len(configurationFilePath) > 0 {
				require.Equal(testInstance, configurationFilePath, loadedMetadata.ConfigFileUsed)
			}
		})
	}
}
