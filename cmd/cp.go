package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"ytscribe/internal"
)

// cpCmd copies the transcript to the system clipboard instead of printing the path.
var cpCmd = &cobra.Command{
	Use:   "cp [YouTube URL or ID]",
	Short: "Transcribe a video and copy the transcript to the clipboard",
	Example: `  # Copy a transcript to the clipboard
  ytscribe cp "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  ytscribe cp tAP1eZYEuKA`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := internal.ValidateWhisperRequirements(cmd, config); err != nil {
			return err
		}

		app := internal.NewApp(config)
		transcript, _, err := app.Transcribe(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if err := clipboard.WriteAll(transcript); err != nil {
			return fmt.Errorf("copying transcript to clipboard: %w", err)
		}

		if !config.Quiet {
			fmt.Println("Transcript copied to clipboard")
		}

		return nil
	},
}

func init() {
	internal.AddWhisperFlags(cpCmd)
	rootCmd.AddCommand(cpCmd)
}
