package format

import (
	"os"
	"strings"
)

const (
	windowsLineBreakConstant   = "\r\n"
	unixLineBreakConstant      = "\n"
	optionSeparatorConstant    = ","
	doubleQuoteStringConstant  = `"`
	emptyOptionsStringConstant = ""
)

// FileReader abstracts configuration file access for testability.
type FileReader interface {
	ReadFile(filePath string) ([]byte, error)
}

// OSFileReader reads files using the operating system facilities.
type OSFileReader struct{}

// ReadFile implements FileReader over os.ReadFile.
func (OSFileReader) ReadFile(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}

// FlattenOptions converts a line-oriented key="value" configuration into the
// single comma-joined argument string the external formatter accepts: lines
// joined with commas, trailing separator dropped, double quotes stripped.
func FlattenOptions(rawConfigurationText string) string {
	normalizedText := strings.ReplaceAll(rawConfigurationText, windowsLineBreakConstant, unixLineBreakConstant)

	optionParts := make([]string, 0)
	for _, configurationLine := range strings.Split(normalizedText, unixLineBreakConstant) {
		trimmedLine := strings.TrimSpace(configurationLine)
		if len(trimmedLine) == 0 {
			continue
		}
		optionParts = append(optionParts, strings.ReplaceAll(trimmedLine, doubleQuoteStringConstant, emptyOptionsStringConstant))
	}

	return strings.Join(optionParts, optionSeparatorConstant)
}
