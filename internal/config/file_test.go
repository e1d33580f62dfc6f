package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("full", func(t *testing.T) {
		path := write("full.yaml", "resolution: 100\nthreshold: 4.5\nepsilon: 0\nlog_level: info\n")
		fc, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if fc.Resolution == nil || *fc.Resolution != 100 {
			t.Errorf("Resolution = %v, want 100", fc.Resolution)
		}
		if fc.Epsilon == nil || *fc.Epsilon != 0 {
			t.Errorf("explicit zero epsilon lost: %v", fc.Epsilon)
		}
		if fc.Jobs != nil {
			t.Errorf("absent key decoded as %v", *fc.Jobs)
		}
	})

	t.Run("empty", func(t *testing.T) {
		fc, err := LoadFile(write("empty.yaml", ""))
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if fc.Resolution != nil {
			t.Error("empty file produced values")
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		if _, err := LoadFile(write("bad.yaml", "resolution: lots\n")); err == nil {
			t.Error("expected a decode error")
		}
	})
}
