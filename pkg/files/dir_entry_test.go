package files

import (
	"os"
	"testing"
)

func TestDirEntry(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		de := NewDirEntry("testfile", false)
		if de.Name() != "testfile" {
			t.Errorf("expected Name() = testfile, got %v", de.Name())
		}
		if de.IsDir() {
			t.Error("expected IsDir() = false")
		}
		if de.Type() != 0 {
			t.Errorf("expected Type() = 0, got %v", de.Type())
		}
		info, err := de.Info()
		if err != nil {
			t.Errorf("expected no error from Info(), got %v", err)
		}
		if info != nil {
			t.Errorf("expected nil info, got %v", info)
		}
	})

	t.Run("directory", func(t *testing.T) {
		de := NewDirEntry("testdir", true)
		if !de.IsDir() {
			t.Error("expected IsDir() = true")
		}
		if de.Type() != os.ModeDir {
			t.Errorf("expected Type() = %v, got %v", os.ModeDir, de.Type())
		}
	})

	t.Run("name_with_path_panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic for name containing a path")
			}
		}()
		NewDirEntry("a/b", false)
	})
}
