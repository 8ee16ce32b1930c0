package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExists checks if a file exists
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// EnsureDirs creates directories if needed
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if !FileExists(dir) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateOpenAIAPIKey checks if the OpenAI API key is set and returns a standardized error if not
func ValidateOpenAIAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("OpenAI API key is required - set it in config.toml or OPENAI_API_KEY environment variable")
	}
	return nil
}

// SaveTranscript writes a transcript to the given directory under name.txt
// and returns the resulting path
func SaveTranscript(name, transcript, transcriptsDir string) (string, error) {
	transcriptPath := filepath.Join(transcriptsDir, name+".txt")
	if err := os.WriteFile(transcriptPath, []byte(transcript), 0644); err != nil {
		return "", fmt.Errorf("saving transcript: %w", err)
	}
	return transcriptPath, nil
}

// CleanupTempDir removes a scratch directory and everything in it
func CleanupTempDir(tempDir string) error {
	if _, err := os.Stat(tempDir); os.IsNotExist(err) {
		return nil // Directory doesn't exist, nothing to clean up
	}

	if err := os.RemoveAll(tempDir); err != nil {
		return fmt.Errorf("removing temp directory: %w", err)
	}
	return nil
}
