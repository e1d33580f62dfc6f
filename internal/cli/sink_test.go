package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/agbru/mandelarea/internal/errors"
	"github.com/agbru/mandelarea/internal/orchestration"
)

func TestCSVSink_AppendCreatesWithoutHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "times.csv")
	sink := CSVSink{Path: path}

	if err := sink.Append(orchestration.ResultRow{Seconds: []float64{1.25, 0.5, 0.125}}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := sink.Append(orchestration.ResultRow{Seconds: []float64{2, 1, 0.75}}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "1.25,0.5,0.125\n2,1,0.75\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestCSVSink_AppendsToExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "times.csv")
	if err := os.WriteFile(path, []byte("0.1,0.2,0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := (CSVSink{Path: path}).Append(orchestration.ResultRow{Seconds: []float64{4, 5, 6}}); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "0.1,0.2,0.3\n4,5,6\n" {
		t.Errorf("existing rows not preserved: %q", data)
	}
}

func TestCSVSink_OpenFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "times.csv")
	err := (CSVSink{Path: path}).Append(orchestration.ResultRow{Seconds: []float64{1}})

	var outErr apperrors.OutputError
	if !errors.As(err, &outErr) || outErr.Path != path {
		t.Fatalf("Append() error = %v, want OutputError for %s", err, path)
	}
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorOutput {
		t.Errorf("ExitCodeFor = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorOutput)
	}
}
