package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveTranscript(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveTranscript("My Talk", "hello\nworld", dir)
	if err != nil {
		t.Fatalf("SaveTranscript: %v", err)
	}
	if want := filepath.Join(dir, "My Talk.txt"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading transcript: %v", err)
	}
	if string(data) != "hello\nworld" {
		t.Errorf("content = %q, want %q", data, "hello\nworld")
	}
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "a", "b", "c")

	if err := EnsureDirs(nested); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
	if !FileExists(nested) {
		t.Error("nested directory was not created")
	}

	// Creating an existing directory is a no-op
	if err := EnsureDirs(nested); err != nil {
		t.Errorf("EnsureDirs on existing dir: %v", err)
	}
}

func TestCleanupTempDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audio_chunks")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "chunk_000.mp3"), []byte("chunk"), 0644); err != nil {
		t.Fatalf("writing chunk: %v", err)
	}

	if err := CleanupTempDir(dir); err != nil {
		t.Fatalf("CleanupTempDir: %v", err)
	}
	if FileExists(dir) {
		t.Error("directory still exists after cleanup")
	}

	// Cleaning a missing directory is not an error
	if err := CleanupTempDir(dir); err != nil {
		t.Errorf("CleanupTempDir on missing dir: %v", err)
	}
}
