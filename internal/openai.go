package internal

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// TranscriptionClient defines the interface for speech-to-text operations
type TranscriptionClient interface {
	CreateTranscription(ctx context.Context, file *os.File) (string, error)
}

// OpenAIClient wraps the official OpenAI Go SDK
type OpenAIClient struct {
	client *openai.Client
	model  openai.AudioModel
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	audioModel, err := audioModel(model)
	if err != nil {
		return nil, err
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{client: &client, model: audioModel}, nil
}

// audioModel maps a model name to an openai model constant
func audioModel(model string) (openai.AudioModel, error) {
	switch model {
	case "whisper-1":
		return openai.AudioModelWhisper1, nil
	case "gpt-4o-transcribe":
		return openai.AudioModelGPT4oTranscribe, nil
	case "gpt-4o-mini-transcribe":
		return openai.AudioModelGPT4oMiniTranscribe, nil
	default:
		return "", fmt.Errorf("unsupported transcription model: %s", model)
	}
}

// ValidateWhisperModel checks if the transcription model is supported
func ValidateWhisperModel(model string) error {
	_, err := audioModel(model)
	return err
}

// CreateTranscription implements the transcription method
func (c *OpenAIClient) CreateTranscription(ctx context.Context, file *os.File) (string, error) {
	resp, err := c.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  file,
		Model: c.model,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Whisper turns audio files into transcripts, one fixed-length chunk at a time
type Whisper struct {
	client     TranscriptionClient
	audio      *Audio
	chunksDir  string
	ui         UIManager
	verbose    bool
	apiKey     string
	model      string
	clientOnce sync.Once
	clientErr  error
}

// NewWhisper creates a new Whisper processor with an explicit client
func NewWhisper(client TranscriptionClient, audio *Audio, chunksDir string, ui UIManager, verbose bool) *Whisper {
	return &Whisper{
		client:    client,
		audio:     audio,
		chunksDir: chunksDir,
		ui:        ui,
		verbose:   verbose,
	}
}

// NewWhisperWithKey creates a new Whisper processor with lazy client initialization
func NewWhisperWithKey(apiKey, model string, audio *Audio, chunksDir string, ui UIManager, verbose bool) *Whisper {
	return &Whisper{
		audio:     audio,
		chunksDir: chunksDir,
		ui:        ui,
		verbose:   verbose,
		apiKey:    apiKey,
		model:     model,
	}
}

// ensureClient initializes the OpenAI client if needed
func (w *Whisper) ensureClient() error {
	if w.client != nil {
		return nil
	}

	if err := ValidateOpenAIAPIKey(w.apiKey); err != nil {
		return err
	}

	w.clientOnce.Do(func() {
		client, err := NewOpenAIClient(w.apiKey, w.model)
		if err != nil {
			w.clientErr = err
			return
		}
		w.client = client
	})

	return w.clientErr
}

// Transcribe splits audioFile into fixed windows and transcribes them in
// temporal order. The chunk scratch directory is removed on every exit path;
// the first failed chunk aborts the whole run and no partial result survives.
func (w *Whisper) Transcribe(ctx context.Context, audioFile string) (string, error) {
	if err := w.ensureClient(); err != nil {
		return "", err
	}

	if w.verbose {
		fmt.Printf("Transcribing audio file: %s\n", audioFile)
	}

	if err := EnsureDirs(w.chunksDir); err != nil {
		return "", fmt.Errorf("creating chunk directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(w.chunksDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove chunk directory %s: %v\n", w.chunksDir, err)
		}
	}()

	chunks, err := w.audio.Split(ctx, audioFile, w.chunksDir)
	if err != nil {
		return "", fmt.Errorf("splitting audio: %w", err)
	}

	return w.processChunks(ctx, chunks)
}

// processChunks transcribes audio chunks sequentially, preserving order
func (w *Whisper) processChunks(ctx context.Context, chunks []string) (string, error) {
	if w.verbose {
		fmt.Printf("Transcribing chunks (%d)\n", len(chunks))
	}

	var bar ProgressBar
	if w.ui != nil {
		bar = w.ui.NewProgressBar(len(chunks), "Transcribing audio")
		defer bar.Finish()
	}

	fragments := make([]string, 0, len(chunks))
	for i, chunkPath := range chunks {
		file, err := os.Open(chunkPath)
		if err != nil {
			return "", fmt.Errorf("opening chunk %s: %w", chunkPath, err)
		}

		text, err := w.client.CreateTranscription(ctx, file)
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close file %s: %v\n", chunkPath, closeErr)
		}
		if err != nil {
			return "", fmt.Errorf("transcribing chunk %d: %w", i+1, err)
		}

		fragments = append(fragments, strings.TrimSpace(text))
		if bar != nil {
			bar.Set(i + 1)
		}
		if w.verbose {
			fmt.Printf("Transcribed chunk %d/%d\n", i+1, len(chunks))
		}
	}

	return strings.Join(fragments, "\n"), nil
}
