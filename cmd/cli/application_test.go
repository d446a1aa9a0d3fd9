package cli_test

import (
	"bytes"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/temirov/precommit/cmd/cli"
	"github.com/temirov/precommit/internal/hook"
)

const (
	embeddedDefaultLogLevelConstant       = "info"
	embeddedDefaultLogFormatConstant      = "structured"
	embeddedDefaultRepositoryConstant     = "."
	embeddedDefaultRustfmtOptionsConstant = "tests/fmt.toml"
)

func decodeEmbeddedApplicationConfiguration(testingInstance testing.TB) cli.ApplicationConfiguration {
	testingInstance.Helper()

	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	viperInstance := viper.New()
	viperInstance.SetConfigType(configurationType)

	readError := viperInstance.ReadConfig(bytes.NewReader(configurationData))
	require.NoError(testingInstance, readError)

	var configuration cli.ApplicationConfiguration
	unmarshalError := viperInstance.Unmarshal(&configuration)
	require.NoError(testingInstance, unmarshalError)

	return configuration
}

func TestEmbeddedDefaultsProvideCommandConfigurations(testInstance *testing.T) {
	configuration := decodeEmbeddedApplicationConfiguration(testInstance)

	require.Equal(testInstance, embeddedDefaultLogLevelConstant, configuration.Common.LogLevel)
	require.Equal(testInstance, embeddedDefaultLogFormatConstant, configuration.Common.LogFormat)

	sanitizedHook := configuration.Tools.Hook.Sanitize()
	require.Equal(testInstance, embeddedDefaultRepositoryConstant, sanitizedHook.Repository)
	require.Equal(testInstance, embeddedDefaultRustfmtOptionsConstant, sanitizedHook.RustfmtOptions)
	require.False(testInstance, sanitizedHook.SkipAudit)

	sanitizedInstall := configuration.Tools.Install.Sanitize()
	require.Equal(testInstance, embeddedDefaultRepositoryConstant, sanitizedInstall.Repository)
	require.False(testInstance, sanitizedInstall.Force)
}

func TestHookConfigurationDecodesFromOptionsMap(testInstance *testing.T) {
	var configuration hook.CommandConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "mapstructure", Result: &configuration})
	require.NoError(testInstance, decoderError)

	decodeError := decoder.Decode(map[string]any{
		"repository":      "/workspace/repo",
		"rustfmt_options": "config/fmt.toml",
		"skip_audit":      true,
	})
	require.NoError(testInstance, decodeError)

	require.Equal(testInstance, "/workspace/repo", configuration.Repository)
	require.Equal(testInstance, "config/fmt.toml", configuration.RustfmtOptions)
	require.True(testInstance, configuration.SkipAudit)
}
