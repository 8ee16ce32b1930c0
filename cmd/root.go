package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ytscribe/internal"
)

var (
	config *internal.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytscribe [YouTube URL or ID]",
	Short: "Transcribe YouTube videos with OpenAI Whisper",
	Long: `ytscribe downloads a YouTube video's audio track as MP3, splits it
into 5-minute chunks, transcribes each chunk with the OpenAI Whisper API
and writes the joined transcript to the transcripts directory.

The MP3 stays in the output directory after the run; audio chunks are
scratch files and are always removed, even when a run fails.`,
	Example: `  # Transcribe a YouTube video
  ytscribe "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  ytscribe tAP1eZYEuKA

  # Badly escaped copy-pasted input is normalized automatically
  ytscribe '  v=\tAP1eZYEuKA\&t=5s  '

  # Keep the MP3 somewhere else
  ytscribe tAP1eZYEuKA --out-dir ~/Music/talks

  # Use a different transcription model
  ytscribe tAP1eZYEuKA --model gpt-4o-mini-transcribe`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return internal.HandleGlobalFlags(cmd, config)
	},
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := internal.ValidateWhisperRequirements(cmd, config); err != nil {
			return err
		}

		app := internal.NewApp(config)
		_, transcriptPath, err := app.Transcribe(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Transcript saved to: %s\n", transcriptPath)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Create a cancellable context for the entire application
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize configuration with Viper
	config = internal.InitConfig()

	// Ensure the XDG config directory and default config exist
	if err := internal.EnsureDirs(config.ConfigDir, config.CacheDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating XDG directories: %v\n", err)
		os.Exit(1)
	}
	if err := internal.EnsureDefaultConfig(config.ConfigDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to ensure default config: %v\n", err)
	}

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Handle shutdown signal in a separate goroutine
	go func() {
		<-sigCh
		fmt.Println("\nReceived interrupt signal. Cleaning up and shutting down...")

		// Cancel the main context to signal all operations to stop
		cancel()

		// Create a context with timeout for cleanup operations
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cleanupCancel()

		// Remove leftover audio chunks with timeout
		cleanupDone := make(chan struct{})
		go func() {
			if err := internal.CleanupTempDir(config.ChunksDir); err != nil {
				fmt.Fprintf(os.Stderr, "Error cleaning up audio chunks: %v\n", err)
			}
			close(cleanupDone)
		}()

		// Wait for either cleanup to complete or timeout
		select {
		case <-cleanupDone:
			// Cleanup completed successfully
		case <-cleanupCtx.Done():
			fmt.Fprintln(os.Stderr, "Warning: Cleanup timed out, forcing exit")
		}

		os.Exit(0)
	}()

	// Set context on root command
	rootCmd.SetContext(ctx)

	return rootCmd.Execute()
}

func init() {
	internal.AddWhisperFlags(rootCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")
}
