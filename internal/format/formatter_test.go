package format_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/precommit/internal/format"
)

const (
	testExtensionRustCaseNameConstant         = "rust_source"
	testExtensionNestedPathCaseNameConstant   = "nested_path"
	testExtensionMultipleDotsCaseNameConstant = "multiple_dots"
	testExtensionDotfileCaseNameConstant      = "dotfile"
	testExtensionNoDotCaseNameConstant        = "no_extension"
	testExtensionTrailingDotCaseNameConstant  = "trailing_dot"
)

type staticFormatter struct {
	name       string
	extensions []string
}

func (formatter staticFormatter) Name() string {
	return formatter.name
}

func (formatter staticFormatter) Extensions() []string {
	return formatter.extensions
}

func (formatter staticFormatter) Format(executionContext context.Context, filePath string) error {
	return nil
}

func TestExtensionTag(testInstance *testing.T) {
	testCases := []struct {
		name        string
		filePath    string
		expectedTag string
	}{
		{
			name:        testExtensionRustCaseNameConstant,
			filePath:    "main.rs",
			expectedTag: "rs",
		},
		{
			name:        testExtensionNestedPathCaseNameConstant,
			filePath:    "tools/scripts/setup.py",
			expectedTag: "py",
		},
		{
			name:        testExtensionMultipleDotsCaseNameConstant,
			filePath:    "archive.tar.gz",
			expectedTag: "gz",
		},
		{
			name:        testExtensionDotfileCaseNameConstant,
			filePath:    ".gitignore",
			expectedTag: "gitignore",
		},
		{
			name:        testExtensionNoDotCaseNameConstant,
			filePath:    "Makefile",
			expectedTag: "",
		},
		{
			name:        testExtensionTrailingDotCaseNameConstant,
			filePath:    "strange.",
			expectedTag: "",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedTag, format.ExtensionTag(testCase.filePath))
		})
	}
}

func TestRegistryLookup(testInstance *testing.T) {
	rustFormatter := staticFormatter{name: "rustfmt", extensions: []string{"rs"}}
	pythonFormatter := staticFormatter{name: "black", extensions: []string{"py"}}

	registry := format.NewRegistry(rustFormatter, pythonFormatter, nil)

	resolvedFormatter, found := registry.Lookup("rs")
	require.True(testInstance, found)
	require.Equal(testInstance, "rustfmt", resolvedFormatter.Name())

	resolvedFormatter, found = registry.Lookup("py")
	require.True(testInstance, found)
	require.Equal(testInstance, "black", resolvedFormatter.Name())

	_, found = registry.Lookup("md")
	require.False(testInstance, found)

	_, found = registry.Lookup("")
	require.False(testInstance, found)
}
