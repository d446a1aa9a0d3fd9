package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/precommit/cmd/cli"
)

const (
	exitErrorTemplateConstant      = "%v\n"
	defaultFailureExitCodeConstant = 1
	minimumCarriedExitCodeConstant = 1
	maximumCarriedExitCodeConstant = 255
)

// exitCodeCarrier is implemented by errors that surface an external tool's exit status.
type exitCodeCarrier interface {
	ExitCode() int
}

// main executes the precommit command-line application and propagates the
// failing external step's exit status verbatim.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(resolveExitCode(executionError))
	}
}

func resolveExitCode(executionError error) int {
	var carrier exitCodeCarrier
	if errors.As(executionError, &carrier) {
		carriedExitCode := carrier.ExitCode()
		if carriedExitCode >= minimumCarriedExitCodeConstant && carriedExitCode <= maximumCarriedExitCodeConstant {
			return carriedExitCode
		}
	}
	return defaultFailureExitCodeConstant
}
