package internal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeTranscriptionClient returns canned texts per call, optionally failing
// at a given 1-based call index.
type fakeTranscriptionClient struct {
	texts  []string
	failAt int
	calls  int
}

func (f *fakeTranscriptionClient) CreateTranscription(ctx context.Context, file *os.File) (string, error) {
	f.calls++
	if f.failAt != 0 && f.calls == f.failAt {
		return "", errors.New("quota exceeded")
	}
	return f.texts[f.calls-1], nil
}

func TestValidateWhisperModel(t *testing.T) {
	for _, model := range []string{"whisper-1", "gpt-4o-transcribe", "gpt-4o-mini-transcribe"} {
		if err := ValidateWhisperModel(model); err != nil {
			t.Errorf("ValidateWhisperModel(%q) = %v, want nil", model, err)
		}
	}

	if err := ValidateWhisperModel("dall-e-3"); err == nil {
		t.Error("expected error for unsupported model")
	}
}

func TestTranscribeJoinsChunksInOrder(t *testing.T) {
	client := &fakeTranscriptionClient{
		texts: []string{" first fragment \n", "second fragment", "\tthird fragment"},
	}
	runner := &fakeRunner{duration: "720"}
	chunksDir := filepath.Join(t.TempDir(), "audio_chunks")
	whisper := NewWhisper(client, NewAudio(runner, false), chunksDir, nil, false)

	transcript, err := whisper.Transcribe(context.Background(), "talk.mp3")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	want := "first fragment\nsecond fragment\nthird fragment"
	if transcript != want {
		t.Errorf("transcript = %q, want %q", transcript, want)
	}

	if FileExists(chunksDir) {
		t.Error("chunk directory still exists after successful run")
	}
}

func TestTranscribeChunkFailureCleansUp(t *testing.T) {
	client := &fakeTranscriptionClient{
		texts:  []string{"first fragment", "", "never reached"},
		failAt: 2,
	}
	runner := &fakeRunner{duration: "720"}
	chunksDir := filepath.Join(t.TempDir(), "audio_chunks")
	whisper := NewWhisper(client, NewAudio(runner, false), chunksDir, nil, false)

	_, err := whisper.Transcribe(context.Background(), "talk.mp3")
	if err == nil {
		t.Fatal("expected error when a chunk fails")
	}
	if !strings.Contains(err.Error(), "transcribing chunk 2") {
		t.Errorf("unexpected error: %v", err)
	}

	// Remaining chunks are not attempted after the first failure
	if client.calls != 2 {
		t.Errorf("client called %d times, want 2", client.calls)
	}

	if FileExists(chunksDir) {
		t.Error("chunk directory still exists after failed run")
	}
}

func TestTranscribeDecodeFailureCleansUp(t *testing.T) {
	client := &fakeTranscriptionClient{}
	runner := &fakeRunner{probeErr: errors.New("exit status 1")}
	chunksDir := filepath.Join(t.TempDir(), "audio_chunks")
	whisper := NewWhisper(client, NewAudio(runner, false), chunksDir, nil, false)

	_, err := whisper.Transcribe(context.Background(), "corrupt.mp3")
	if err == nil {
		t.Fatal("expected error for unreadable audio")
	}
	if client.calls != 0 {
		t.Errorf("client called %d times, want 0", client.calls)
	}
	if FileExists(chunksDir) {
		t.Error("chunk directory still exists after decode failure")
	}
}

func TestTranscribeRequiresAPIKey(t *testing.T) {
	runner := &fakeRunner{duration: "10"}
	chunksDir := filepath.Join(t.TempDir(), "audio_chunks")
	whisper := NewWhisperWithKey("", "whisper-1", NewAudio(runner, false), chunksDir, nil, false)

	_, err := whisper.Transcribe(context.Background(), "talk.mp3")
	if err == nil {
		t.Fatal("expected error when API key is missing")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("unexpected error: %v", err)
	}
}
