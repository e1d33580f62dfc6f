package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// ColorProvider supplies the escape sequences used when printing errors.
// It keeps this package free of a dependency on the UI theme.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleError prints a user-facing description of err and returns the exit
// code that matches its class. A nil error prints nothing and returns
// ExitSuccess.
func HandleError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	var mismatch MismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprintf(out, "\n%sCRITICAL ERROR!%s %v\n", colors.Red(), colors.Reset(), err)
		fmt.Fprintf(out, "This indicates a partitioning or aggregation defect; no result row was written.\n")
		return ExitErrorMismatch
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error:%s %v\n", colors.Yellow(), colors.Reset(), err)
	default:
		fmt.Fprintf(out, "%sError:%s %v\n", colors.Red(), colors.Reset(), err)
	}
	return code
}
