package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddWhisperFlags adds flags related to transcription functionality
func AddWhisperFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("model", "m", "", "OpenAI transcription model to use")
	cmd.Flags().StringP("out-dir", "o", "", "MP3 output directory (default \"downloads\")")
}

// HandleGlobalFlags applies the persistent --verbose and --quiet flags to config
func HandleGlobalFlags(cmd *cobra.Command, config *Config) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if verbose {
		config.Verbose = true
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if quiet {
		config.Quiet = true
	}

	return nil
}

// ValidateWhisperRequirements validates the OpenAI API key and applies the
// --model and --out-dir flags to config. Run before any pipeline stage.
func ValidateWhisperRequirements(cmd *cobra.Command, config *Config) error {
	// Check OpenAI API key
	if err := ValidateOpenAIAPIKey(config.OpenAIAPIKey); err != nil {
		return err
	}

	// Handle model flag if provided
	modelFlag, _ := cmd.Flags().GetString("model")
	if modelFlag != "" {
		if err := ValidateWhisperModel(modelFlag); err != nil {
			return err
		}
		config.WhisperModel = modelFlag
	} else if err := ValidateWhisperModel(config.WhisperModel); err != nil {
		return fmt.Errorf("invalid model in config: %w", err)
	}

	// Handle out-dir flag if provided
	if outDir, _ := cmd.Flags().GetString("out-dir"); outDir != "" {
		config.OutDir = outDir
	}

	return nil
}
