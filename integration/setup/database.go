//go:build integration

package setup

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"ttsedit/internal/assets"
	"ttsedit/internal/database"
)

// LibraryTestSetup is a writable copy of the sample save plus a journal
type LibraryTestSetup struct {
	Library  *assets.Library
	Journal  *database.Journal
	SavePath string
	DBPath   string
}

// SetupLibrary copies the sample save into a temp dir and opens it together
// with a fresh journal
func SetupLibrary(t *testing.T) *LibraryTestSetup {
	t.Helper()
	tempDir := t.TempDir()

	data, err := os.ReadFile(SamplePath())
	if err != nil {
		t.Fatalf("Failed to read sample save: %v", err)
	}
	savePath := filepath.Join(tempDir, "army.json")
	if err := os.WriteFile(savePath, data, 0o644); err != nil {
		t.Fatalf("Failed to copy sample save: %v", err)
	}

	lib, err := assets.OpenFile(savePath)
	if err != nil {
		t.Fatalf("Failed to open save: %v", err)
	}

	dbPath := filepath.Join(tempDir, "history.db")
	journal, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}

	setup := &LibraryTestSetup{
		Library:  lib,
		Journal:  journal,
		SavePath: savePath,
		DBPath:   dbPath,
	}

	t.Cleanup(func() {
		setup.Cleanup()
	})

	return setup
}

// Cleanup closes the journal
func (setup *LibraryTestSetup) Cleanup() {
	if setup.Journal != nil {
		setup.Journal.Close()
	}
}

// Reload opens the save file again from disk
func (setup *LibraryTestSetup) Reload(t *testing.T) *assets.Library {
	t.Helper()
	lib, err := assets.OpenFile(setup.SavePath)
	if err != nil {
		t.Fatalf("Failed to reload save: %v", err)
	}
	return lib
}

// SamplePath locates the sample save shipped with the assets tests
func SamplePath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "internal", "assets", "testdata", "army.json")
}
