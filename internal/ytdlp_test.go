package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewestAudioFile(t *testing.T) {
	dir := t.TempDir()

	older := filepath.Join(dir, "older talk.mp3")
	newer := filepath.Join(dir, "newer talk.mp3")
	for _, path := range []string{older, newer, filepath.Join(dir, "notes.txt")} {
		if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}

	now := time.Now()
	if err := os.Chtimes(older, now.Add(-time.Hour), now.Add(-time.Hour)); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.Chtimes(newer, now, now); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	got, err := newestAudioFile(dir)
	if err != nil {
		t.Fatalf("newestAudioFile: %v", err)
	}
	if got != newer {
		t.Errorf("newestAudioFile = %s, want %s", got, newer)
	}
}

func TestNewestAudioFileEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("data"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	_, err := newestAudioFile(dir)
	if !errors.Is(err, ErrNoAudioProduced) {
		t.Errorf("err = %v, want ErrNoAudioProduced", err)
	}
}

func TestReportedPath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "My Talk.mp3")
	if err := os.WriteFile(existing, []byte("audio"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	tests := []struct {
		name   string
		stdout string
		want   string
	}{
		{
			name:   "reported path exists",
			stdout: "[info] downloading\n" + existing + "\n",
			want:   existing,
		},
		{
			name:   "reported path missing on disk",
			stdout: filepath.Join(dir, "gone.mp3") + "\n",
			want:   "",
		},
		{
			name:   "no mp3 line at all",
			stdout: "[info] nothing to report\n",
			want:   "",
		},
		{
			name:   "empty stdout",
			stdout: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reportedPath(tt.stdout); got != tt.want {
				t.Errorf("reportedPath(%q) = %q, want %q", tt.stdout, got, tt.want)
			}
		})
	}
}
