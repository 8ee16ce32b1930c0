package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
)

// AudioDownloader fetches a video's audio track into a directory
type AudioDownloader interface {
	Audio(ctx context.Context, youtubeURL, outDir string) (string, error)
}

// Transcriber produces a transcript from an audio file
type Transcriber interface {
	Transcribe(ctx context.Context, audioFile string) (string, error)
}

// App holds the application state and dependencies
type App struct {
	youtube AudioDownloader
	audio   *Audio
	whisper Transcriber
	config  *Config
	ui      UIManager
}

// NewApp initializes the application
func NewApp(config *Config, options ...AppOption) *App {
	cmdRunner := &DefaultCommandRunner{}

	audio := NewAudio(cmdRunner, config.Verbose)

	// Progress output only makes sense on an interactive terminal
	quiet := config.Quiet || !isatty.IsTerminal(os.Stdout.Fd())
	ui := NewUIManager(config.Verbose, quiet)

	app := &App{
		youtube: NewYouTube(config.Verbose),
		audio:   audio,
		whisper: NewWhisperWithKey(config.OpenAIAPIKey, config.WhisperModel, audio, config.ChunksDir, ui, config.Verbose),
		config:  config,
		ui:      ui,
	}

	// Apply any custom options
	for _, option := range options {
		option(app)
	}

	return app
}

// AppOption customizes App creation
type AppOption func(*App)

// WithDownloader sets a custom audio downloader
func WithDownloader(downloader AudioDownloader) AppOption {
	return func(a *App) {
		a.youtube = downloader
	}
}

// WithTranscriber sets a custom transcriber
func WithTranscriber(transcriber Transcriber) AppOption {
	return func(a *App) {
		a.whisper = transcriber
	}
}

// DownloadAudio downloads audio from a YouTube URL and returns the file path.
// The downloaded MP3 stays in the output directory after the run.
func (app *App) DownloadAudio(ctx context.Context, youtubeURL string) (string, error) {
	spinner := app.ui.NewSpinner("Downloading audio...")
	audioFile, err := app.youtube.Audio(ctx, youtubeURL, app.config.OutDir)
	spinner.Finish()
	if err != nil {
		return "", fmt.Errorf("downloading audio: %w", err)
	}
	return audioFile, nil
}

// TranscribeAudio transcribes an audio file and returns the transcript
func (app *App) TranscribeAudio(ctx context.Context, audioFile string) (string, error) {
	return app.whisper.Transcribe(ctx, audioFile)
}

// Transcribe runs the complete pipeline for a raw user argument: normalize
// the video reference, download the audio, transcribe it chunk by chunk and
// persist the transcript under the audio file's base name. Returns the
// transcript text and the path it was written to.
func (app *App) Transcribe(ctx context.Context, arg string) (string, string, error) {
	if err := EnsureDirs(app.config.TranscriptsDir); err != nil {
		return "", "", fmt.Errorf("creating transcripts directory: %w", err)
	}

	youtubeURL := NormalizeInput(arg)
	if youtubeURL != arg {
		app.ui.Verbose("Normalized input to %s\n", youtubeURL)
	}

	audioFile, err := app.DownloadAudio(ctx, youtubeURL)
	if err != nil {
		return "", "", err
	}

	transcript, err := app.TranscribeAudio(ctx, audioFile)
	if err != nil {
		return "", "", err
	}

	name := strings.TrimSuffix(filepath.Base(audioFile), filepath.Ext(audioFile))
	transcriptPath, err := SaveTranscript(name, transcript, app.config.TranscriptsDir)
	if err != nil {
		return "", "", err
	}

	return transcript, transcriptPath, nil
}
