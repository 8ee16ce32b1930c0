package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

var (
	// ErrDownloadFailed indicates the downloader process exited non-zero.
	ErrDownloadFailed = errors.New("audio download failed")
	// ErrNoAudioProduced indicates the downloader succeeded but left no MP3 behind.
	ErrNoAudioProduced = errors.New("no MP3 produced by downloader")
)

// YouTube downloads video audio through yt-dlp
type YouTube struct {
	verbose bool
}

// NewYouTube creates a new YouTube downloader
func NewYouTube(verbose bool) *YouTube {
	return &YouTube{verbose: verbose}
}

// Audio downloads the best available audio for youtubeURL into outDir,
// converted to MP3 at maximum quality, and returns the path of the produced
// file. A same-named existing file is overwritten.
func (yt *YouTube) Audio(ctx context.Context, youtubeURL, outDir string) (string, error) {
	if yt.verbose {
		fmt.Println("Downloading audio...")
	}

	if err := EnsureDirs(outDir); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	// yt-dlp names the file after the video title, so ask it to print the
	// final path instead of guessing it.
	outputTemplate := filepath.Join(outDir, "%(title)s.%(ext)s")
	dl := ytdlp.New().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat("mp3").
		AudioQuality("0").
		ForceOverwrites().
		Print("after_move:filepath").
		Output(outputTemplate)

	result, err := dl.Run(ctx, youtubeURL)
	if err != nil {
		if yt.verbose && result != nil {
			fmt.Printf("Audio download error: %v\n", err)
			fmt.Printf("Stderr: %s\n", result.Stderr)
		}
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	if path := reportedPath(result.Stdout); path != "" {
		if yt.verbose {
			fmt.Printf("Audio downloaded to %s\n", path)
		}
		return path, nil
	}

	// The print request yielded nothing usable, fall back to scanning the
	// output directory. Known limitation: when concurrent runs share outDir
	// the newest MP3 may belong to another run.
	return newestAudioFile(outDir)
}

// reportedPath extracts the after_move:filepath line from yt-dlp stdout
func reportedPath(stdout string) string {
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, ".mp3") && FileExists(line) {
			return line
		}
	}
	return ""
}

// newestAudioFile returns the most recently modified MP3 in dir
func newestAudioFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading output directory: %w", err)
	}

	var newest string
	var newestMod time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".mp3") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = filepath.Join(dir, entry.Name())
			newestMod = info.ModTime()
		}
	}

	if newest == "" {
		return "", ErrNoAudioProduced
	}
	return newest, nil
}
