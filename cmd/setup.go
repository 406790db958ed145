package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"voicecut/infrastructure/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

This command guides you through choosing the video library paths, the
editing backend, and optional speech recognition settings.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to voicecut setup!")
	fmt.Println()

	cfg := config.Default()

	// Paths section
	if err := promptPaths(prompter, cfg); err != nil {
		return err
	}

	// Editor section
	if err := promptEditor(prompter, cfg); err != nil {
		return err
	}

	// Speech section
	if err := promptSpeech(prompter, cfg); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Save configuration
	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}

func promptPaths(prompter Prompter, cfg *config.Config) error {
	library, err := prompter.Input("Where are your video files?", cfg.Paths.LibraryDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if library == "" {
		return fmt.Errorf("library directory is required")
	}
	cfg.Paths.LibraryDirectory = library

	outputDir, err := prompter.Input("Where should edited videos go?", cfg.Paths.OutputDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if outputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	cfg.Paths.OutputDirectory = outputDir

	return nil
}

func promptEditor(prompter Prompter, cfg *config.Config) error {
	backend, err := prompter.Select("Which backend should apply edits?", []string{config.BackendFFmpeg, config.BackendOpenCV})
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Editor.Backend = backend

	if backend == config.BackendFFmpeg {
		ffmpegPath, err := prompter.Input("Path to the ffmpeg executable?", cfg.Editor.FFmpegPath)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if ffmpegPath != "" {
			cfg.Editor.FFmpegPath = ffmpegPath
		}

		ffprobePath, err := prompter.Input("Path to the ffprobe executable?", cfg.Editor.FFprobePath)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if ffprobePath != "" {
			cfg.Editor.FFprobePath = ffprobePath
		}
	}

	simulate, err := prompter.Confirm("Start in simulation mode (no files are modified)?", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Editor.Simulate = simulate

	return nil
}

func promptSpeech(prompter Prompter, cfg *config.Config) error {
	enabled, err := prompter.Confirm("Enable voice input via whisper.cpp?", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Speech.Enabled = enabled
	if !enabled {
		return nil
	}

	model, err := prompter.Input("Path to the whisper model file?", cfg.Speech.ModelPath)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if model == "" {
		return fmt.Errorf("model path is required when speech is enabled")
	}
	cfg.Speech.ModelPath = model

	whisperPath, err := prompter.Input("Path to the whisper-cli executable?", cfg.Speech.WhisperPath)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if whisperPath != "" {
		cfg.Speech.WhisperPath = whisperPath
	}

	return nil
}
