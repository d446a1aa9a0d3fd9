package hook

import "fmt"

// PipelineStage identifies the pipeline step where a failure occurred.
type PipelineStage string

// Pipeline stages reported by StepError.
const (
	StageDependencyAudit   PipelineStage = "dependency audit"
	StageStagedEnumeration PipelineStage = "staged file enumeration"
	StageFormatCheck       PipelineStage = "format check"
	StageFormatWrite       PipelineStage = "format write"
	StageRestage           PipelineStage = "restage"
)

const (
	stepErrorWithFileTemplateConstant    = "%s failed for %s: %v"
	stepErrorWithoutFileTemplateConstant = "%s failed: %v"
)

// StepError tags a pipeline failure with its stage and, when applicable, the
// staged file being processed. The cause is preserved so the failing tool's
// exit status can be propagated through the error chain.
type StepError struct {
	Stage    PipelineStage
	FilePath string
	Cause    error
}

// Error describes the failed stage and file.
func (stepError StepError) Error() string {
	if len(stepError.FilePath) > 0 {
		return fmt.Sprintf(stepErrorWithFileTemplateConstant, stepError.Stage, stepError.FilePath, stepError.Cause)
	}
	return fmt.Sprintf(stepErrorWithoutFileTemplateConstant, stepError.Stage, stepError.Cause)
}

// Unwrap exposes the underlying failure.
func (stepError StepError) Unwrap() error {
	return stepError.Cause
}
