package utils_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/precommit/internal/utils"
)

const (
	testLoggerFactoryCaseSupportedFormatConstant   = "supported_log_level_%s_format_%s"
	testLoggerFactoryCaseUnsupportedLevelConstant  = "unsupported_log_level"
	testLoggerFactoryCaseUnsupportedFormatConstant = "unsupported_log_format"
	testLoggerFactorySubtestTemplateConstant       = "%d_%s"
	testInvalidLogLevelConstant                    = "invalid"
	testInvalidLogFormatConstant                   = "invalid"
)

func TestLoggerFactoryCreateLogger(testInstance *testing.T) {
	testCases := []struct {
		name               string
		requestedLogLevel  utils.LogLevel
		requestedLogFormat utils.LogFormat
		expectError        bool
	}{
		{
			name:               fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelDebug, utils.LogFormatStructured),
			requestedLogLevel:  utils.LogLevelDebug,
			requestedLogFormat: utils.LogFormatStructured,
		},
		{
			name:               fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelInfo, utils.LogFormatStructured),
			requestedLogLevel:  utils.LogLevelInfo,
			requestedLogFormat: utils.LogFormatStructured,
		},
		{
			name:               fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelWarn, utils.LogFormatConsole),
			requestedLogLevel:  utils.LogLevelWarn,
			requestedLogFormat: utils.LogFormatConsole,
		},
		{
			name:               fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelError, utils.LogFormatConsole),
			requestedLogLevel:  utils.LogLevelError,
			requestedLogFormat: utils.LogFormatConsole,
		},
		{
			name:               testLoggerFactoryCaseUnsupportedLevelConstant,
			requestedLogLevel:  utils.LogLevel(testInvalidLogLevelConstant),
			requestedLogFormat: utils.LogFormatStructured,
			expectError:        true,
		},
		{
			name:               testLoggerFactoryCaseUnsupportedFormatConstant,
			requestedLogLevel:  utils.LogLevelInfo,
			requestedLogFormat: utils.LogFormat(testInvalidLogFormatConstant),
			expectError:        true,
		},
	}

	loggerFactory := utils.NewLoggerFactory()

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testLoggerFactorySubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			logger, creationError := loggerFactory.CreateLogger(testCase.requestedLogLevel, testCase.requestedLogFormat)

			if testCase.expectError {
				require.Error(testInstance, creationError)
				require.Nil(testInstance, logger)
				return
			}

			require.NoError(testInstance, creationError)
			require.NotNil(testInstance, logger)
		})
	}
}
