package format_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/precommit/internal/execshell"
	"github.com/temirov/precommit/internal/format"
)

const (
	testRustRepositoryPathConstant  = "/workspace/repo"
	testRustOptionsFilePathConstant = "tests/fmt.toml"
	testRustSourcePathConstant      = "src/lib.rs"
	testRustOptionsContentConstant  = "edition=\"2021\"\nmax_width=\"100\"\n"
	testRustFlattenedConstant       = "edition=2021,max_width=100"
)

type scriptedRustExecutor struct {
	executionError   error
	recordedCommands []execshell.CommandDetails
}

func (executor *scriptedRustExecutor) ExecuteRustFormatter(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, details)
	if executor.executionError != nil {
		return execshell.ExecutionResult{}, executor.executionError
	}
	return execshell.ExecutionResult{}, nil
}

type mappedFileReader struct {
	contentsByPath map[string]string
	readError      error
	readCount      int
}

func (reader *mappedFileReader) ReadFile(filePath string) ([]byte, error) {
	reader.readCount++
	if reader.readError != nil {
		return nil, reader.readError
	}
	fileContent, found := reader.contentsByPath[filePath]
	if !found {
		return nil, os.ErrNotExist
	}
	return []byte(fileContent), nil
}

func newTestFileReader() *mappedFileReader {
	optionsPath := filepath.Join(testRustRepositoryPathConstant, testRustOptionsFilePathConstant)
	return &mappedFileReader{contentsByPath: map[string]string{optionsPath: testRustOptionsContentConstant}}
}

func TestRustFormatterConstruction(testInstance *testing.T) {
	fileReader := newTestFileReader()

	missingExecutor, executorError := format.NewRustFormatter(nil, fileReader, testRustRepositoryPathConstant, testRustOptionsFilePathConstant)
	require.Error(testInstance, executorError)
	require.Nil(testInstance, missingExecutor)

	missingReader, readerError := format.NewRustFormatter(&scriptedRustExecutor{}, nil, testRustRepositoryPathConstant, testRustOptionsFilePathConstant)
	require.Error(testInstance, readerError)
	require.Nil(testInstance, missingReader)

	missingOptions, optionsError := format.NewRustFormatter(&scriptedRustExecutor{}, fileReader, testRustRepositoryPathConstant, "")
	require.Error(testInstance, optionsError)
	require.Nil(testInstance, missingOptions)
}

func TestRustFormatterCheckBuildsCommand(testInstance *testing.T) {
	scriptedExecutor := &scriptedRustExecutor{}

	rustFormatter, creationError := format.NewRustFormatter(scriptedExecutor, newTestFileReader(), testRustRepositoryPathConstant, testRustOptionsFilePathConstant)
	require.NoError(testInstance, creationError)

	checkError := rustFormatter.Check(context.Background(), testRustSourcePathConstant)
	require.NoError(testInstance, checkError)

	require.Len(testInstance, scriptedExecutor.recordedCommands, 1)
	require.Equal(testInstance,
		[]string{"--check", "--config", testRustFlattenedConstant, testRustSourcePathConstant},
		scriptedExecutor.recordedCommands[0].Arguments)
	require.Equal(testInstance, testRustRepositoryPathConstant, scriptedExecutor.recordedCommands[0].WorkingDirectory)
}

func TestRustFormatterFormatBuildsCommand(testInstance *testing.T) {
	scriptedExecutor := &scriptedRustExecutor{}

	rustFormatter, creationError := format.NewRustFormatter(scriptedExecutor, newTestFileReader(), testRustRepositoryPathConstant, testRustOptionsFilePathConstant)
	require.NoError(testInstance, creationError)

	formatError := rustFormatter.Format(context.Background(), testRustSourcePathConstant)
	require.NoError(testInstance, formatError)

	require.Len(testInstance, scriptedExecutor.recordedCommands, 1)
	require.Equal(testInstance,
		[]string{"--config", testRustFlattenedConstant, testRustSourcePathConstant},
		scriptedExecutor.recordedCommands[0].Arguments)
}

func TestRustFormatterReadsOptionsOnce(testInstance *testing.T) {
	scriptedExecutor := &scriptedRustExecutor{}
	fileReader := newTestFileReader()

	rustFormatter, creationError := format.NewRustFormatter(scriptedExecutor, fileReader, testRustRepositoryPathConstant, testRustOptionsFilePathConstant)
	require.NoError(testInstance, creationError)

	require.NoError(testInstance, rustFormatter.Check(context.Background(), testRustSourcePathConstant))
	require.NoError(testInstance, rustFormatter.Format(context.Background(), testRustSourcePathConstant))
	require.Equal(testInstance, 1, fileReader.readCount)
}

func TestRustFormatterOptionsReadFailure(testInstance *testing.T) {
	readFailure := errors.New("permission denied")
	failingReader := &mappedFileReader{readError: readFailure}
	scriptedExecutor := &scriptedRustExecutor{}

	rustFormatter, creationError := format.NewRustFormatter(scriptedExecutor, failingReader, testRustRepositoryPathConstant, testRustOptionsFilePathConstant)
	require.NoError(testInstance, creationError)

	checkError := rustFormatter.Check(context.Background(), testRustSourcePathConstant)
	require.Error(testInstance, checkError)
	require.ErrorIs(testInstance, checkError, readFailure)
	require.Empty(testInstance, scriptedExecutor.recordedCommands)
}

func TestRustFormatterPropagatesViolation(testInstance *testing.T) {
	violationError := execshell.CommandFailedError{
		Command: execshell.ShellCommand{Name: execshell.CommandRustFormatter},
		Result:  execshell.ExecutionResult{ExitCode: 1, StandardOutput: "Diff in src/lib.rs"},
	}
	scriptedExecutor := &scriptedRustExecutor{executionError: violationError}

	rustFormatter, creationError := format.NewRustFormatter(scriptedExecutor, newTestFileReader(), testRustRepositoryPathConstant, testRustOptionsFilePathConstant)
	require.NoError(testInstance, creationError)

	checkError := rustFormatter.Check(context.Background(), testRustSourcePathConstant)
	require.Error(testInstance, checkError)

	var failedError execshell.CommandFailedError
	require.ErrorAs(testInstance, checkError, &failedError)
	require.Equal(testInstance, 1, failedError.ExitCode())
}
