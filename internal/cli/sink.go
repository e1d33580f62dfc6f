package cli

import (
	"encoding/csv"
	"os"

	apperrors "github.com/agbru/mandelarea/internal/errors"
	"github.com/agbru/mandelarea/internal/orchestration"
)

// CSVSink appends one headerless CSV record per run to a file. The file is
// opened for each row and closed before Append returns, so concurrent
// readers always see complete records.
type CSVSink struct {
	Path string
}

var _ orchestration.ResultSink = CSVSink{}

// Append writes row as one CSV record. Failures are reported as
// apperrors.OutputError.
func (s CSVSink) Append(row orchestration.ResultRow) (err error) {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperrors.OutputError{Path: s.Path, Cause: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = apperrors.OutputError{Path: s.Path, Cause: cerr}
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(row.Fields()); err != nil {
		return apperrors.OutputError{Path: s.Path, Cause: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return apperrors.OutputError{Path: s.Path, Cause: err}
	}
	return nil
}
