package format

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/temirov/precommit/internal/execshell"
)

const (
	rustFormatterNameConstant              = "rustfmt"
	rustExtensionTagConstant               = "rs"
	rustCheckFlagConstant                  = "--check"
	rustConfigFlagConstant                 = "--config"
	rustExecutorRequiredMessageConstant    = "rust formatter requires a rustfmt executor"
	rustFileReaderRequiredMessageConstant  = "rust formatter requires a file reader"
	rustOptionsFileRequiredMessageConstant = "rust formatter requires an options file path"
	rustOptionsReadFailureTemplateConstant = "read formatter options %s: %w"
)

// RustFormatterExecutor describes the rustfmt execution dependency.
type RustFormatterExecutor interface {
	ExecuteRustFormatter(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RustFormatter runs rustfmt in check and write modes with options flattened
// from a line-oriented configuration file inside the repository.
type RustFormatter struct {
	executor         RustFormatterExecutor
	fileReader       FileReader
	repositoryPath   string
	optionsFilePath  string
	flattenedOptions string
	optionsLoaded    bool
}

// NewRustFormatter constructs a RustFormatter for the repository at
// repositoryPath reading formatter options from optionsFilePath, interpreted
// relative to the repository when not absolute.
func NewRustFormatter(executor RustFormatterExecutor, fileReader FileReader, repositoryPath string, optionsFilePath string) (*RustFormatter, error) {
	if executor == nil {
		return nil, errors.New(rustExecutorRequiredMessageConstant)
	}
	if fileReader == nil {
		return nil, errors.New(rustFileReaderRequiredMessageConstant)
	}
	if len(optionsFilePath) == 0 {
		return nil, errors.New(rustOptionsFileRequiredMessageConstant)
	}
	return &RustFormatter{
		executor:        executor,
		fileReader:      fileReader,
		repositoryPath:  repositoryPath,
		optionsFilePath: optionsFilePath,
	}, nil
}

// Name reports the external tool name.
func (formatter *RustFormatter) Name() string {
	return rustFormatterNameConstant
}

// Extensions reports the extension tags handled by rustfmt.
func (formatter *RustFormatter) Extensions() []string {
	return []string{rustExtensionTagConstant}
}

// Check verifies formatting compliance without rewriting the file. A style or
// license violation surfaces as the executor's failure error so callers can
// propagate the tool's exit status.
func (formatter *RustFormatter) Check(executionContext context.Context, filePath string) error {
	flattenedOptions, optionsError := formatter.loadOptions()
	if optionsError != nil {
		return optionsError
	}

	arguments := []string{rustCheckFlagConstant}
	arguments = appendConfigArguments(arguments, flattenedOptions)
	arguments = append(arguments, filePath)

	_, executionError := formatter.executor.ExecuteRustFormatter(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: formatter.repositoryPath,
	})
	return executionError
}

// Format rewrites the file in place using the same flattened options.
func (formatter *RustFormatter) Format(executionContext context.Context, filePath string) error {
	flattenedOptions, optionsError := formatter.loadOptions()
	if optionsError != nil {
		return optionsError
	}

	arguments := appendConfigArguments([]string{}, flattenedOptions)
	arguments = append(arguments, filePath)

	_, executionError := formatter.executor.ExecuteRustFormatter(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: formatter.repositoryPath,
	})
	return executionError
}

// loadOptions reads and flattens the options file once per formatter instance.
func (formatter *RustFormatter) loadOptions() (string, error) {
	if formatter.optionsLoaded {
		return formatter.flattenedOptions, nil
	}

	resolvedPath := formatter.optionsFilePath
	if !filepath.IsAbs(resolvedPath) {
		resolvedPath = filepath.Join(formatter.repositoryPath, resolvedPath)
	}

	rawConfiguration, readError := formatter.fileReader.ReadFile(resolvedPath)
	if readError != nil {
		return "", fmt.Errorf(rustOptionsReadFailureTemplateConstant, formatter.optionsFilePath, readError)
	}

	formatter.flattenedOptions = FlattenOptions(string(rawConfiguration))
	formatter.optionsLoaded = true
	return formatter.flattenedOptions, nil
}

func appendConfigArguments(arguments []string, flattenedOptions string) []string {
	if len(flattenedOptions) == 0 {
		return arguments
	}
	return append(arguments, rustConfigFlagConstant, flattenedOptions)
}
