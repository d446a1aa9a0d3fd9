package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/precommit/internal/execshell"
	"github.com/temirov/precommit/internal/ui"
)

const (
	testEventsStartedCaseNameConstant        = "command_started"
	testEventsCompletedCaseNameConstant      = "command_completed"
	testEventsFailedCaseNameConstant         = "command_failed_exit_code"
	testEventsExecutionErrorCaseNameConstant = "command_execution_failure"
)

func TestConsoleCommandEventLoggerRendersLifecycleEvents(testInstance *testing.T) {
	command := execshell.ShellCommand{
		Name: execshell.CommandCargo,
		Details: execshell.CommandDetails{
			Arguments:        []string{"audit"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	testCases := []struct {
		name            string
		notify          func(eventLogger *ui.ConsoleCommandEventLogger)
		expectedLevel   zap.AtomicLevel
		expectedMessage string
	}{
		{
			name: testEventsStartedCaseNameConstant,
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandStarted(command)
			},
			expectedLevel:   zap.NewAtomicLevelAt(zap.InfoLevel),
			expectedMessage: "Auditing dependencies in /workspace/repo",
		},
		{
			name: testEventsCompletedCaseNameConstant,
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(command, execshell.ExecutionResult{ExitCode: 0})
			},
			expectedLevel:   zap.NewAtomicLevelAt(zap.InfoLevel),
			expectedMessage: "Dependency audit passed in /workspace/repo",
		},
		{
			name: testEventsFailedCaseNameConstant,
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(command, execshell.ExecutionResult{ExitCode: 2, StandardError: "RUSTSEC-2020-0071"})
			},
			expectedLevel:   zap.NewAtomicLevelAt(zap.WarnLevel),
			expectedMessage: "Dependency audit failed in /workspace/repo (exit code 2: RUSTSEC-2020-0071)",
		},
		{
			name: testEventsExecutionErrorCaseNameConstant,
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandExecutionFailed(command, errors.New("executable file not found"))
			},
			expectedLevel:   zap.NewAtomicLevelAt(zap.ErrorLevel),
			expectedMessage: "Unable to audit dependencies in /workspace/repo: executable file not found",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zap.DebugLevel)
			eventLogger := ui.NewConsoleCommandEventLogger(zap.New(observerCore))

			testCase.notify(eventLogger)

			loggedEntries := observedLogs.All()
			require.Len(testInstance, loggedEntries, 1)
			require.Equal(testInstance, testCase.expectedLevel.Level(), loggedEntries[0].Level)
			require.Equal(testInstance, testCase.expectedMessage, loggedEntries[0].Message)
		})
	}
}
