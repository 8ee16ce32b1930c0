package internal

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// chunkSeconds is the fixed transcription window length (5 minutes).
const chunkSeconds = 300

// Audio handles audio file probing and segmentation using FFmpeg
type Audio struct {
	cmdRunner CommandRunner
	verbose   bool
}

// NewAudio creates a new audio processor
func NewAudio(cmdRunner CommandRunner, verbose bool) *Audio {
	return &Audio{
		cmdRunner: cmdRunner,
		verbose:   verbose,
	}
}

// Duration returns the audio file duration in seconds
func (a *Audio) Duration(ctx context.Context, audioFile string) (float64, error) {
	output, err := a.cmdRunner.Run(ctx, "ffprobe",
		"-i", audioFile,
		"-show_entries", "format=duration",
		"-v", "quiet",
		"-of", "csv=p=0")

	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w\nOutput: %s", err, string(output))
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing duration: %w", err)
	}

	return duration, nil
}

// window is a single transcription segment within the source audio
type window struct {
	start  float64 // seconds from the beginning
	length float64 // seconds, at most chunkSeconds
}

// planWindows partitions duration into consecutive chunkSeconds windows.
// The final window covers the remainder and may be shorter.
func planWindows(duration float64) []window {
	if duration <= 0 {
		return nil
	}

	count := int(math.Ceil(duration / chunkSeconds))
	windows := make([]window, 0, count)
	for i := range count {
		start := float64(i) * chunkSeconds
		windows = append(windows, window{
			start:  start,
			length: math.Min(chunkSeconds, duration-start),
		})
	}
	return windows
}

// Split exports fixed-length MP3 segments of audioFile into chunksDir.
// Chunk files are named chunk_NNN.mp3 and returned in temporal order.
func (a *Audio) Split(ctx context.Context, audioFile, chunksDir string) ([]string, error) {
	duration, err := a.Duration(ctx, audioFile)
	if err != nil {
		return nil, fmt.Errorf("getting audio duration: %w", err)
	}

	windows := planWindows(duration)
	if a.verbose {
		fmt.Printf("Splitting %.1fs of audio into %d chunk(s)\n", duration, len(windows))
	}

	chunks := make([]string, 0, len(windows))
	for i, w := range windows {
		output := filepath.Join(chunksDir, fmt.Sprintf("chunk_%03d.mp3", i))
		if err := a.Chunk(ctx, audioFile, w.start, w.length, output); err != nil {
			return nil, fmt.Errorf("creating chunk %d: %w", i, err)
		}
		chunks = append(chunks, output)
	}

	return chunks, nil
}

// Chunk extracts a segment from an audio file
func (a *Audio) Chunk(ctx context.Context, audioFile string, start, length float64, output string) error {
	cmdOutput, err := a.cmdRunner.Run(ctx, "ffmpeg",
		"-v", "quiet",
		"-i", audioFile,
		"-ss", formatSeconds(start),
		"-t", formatSeconds(length),
		"-c:a", "copy",
		"-y", output)

	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w\nOutput: %s", err, string(cmdOutput))
	}
	return nil
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}
