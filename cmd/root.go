package cmd

import (
	"fmt"
	"os"

	"voicecut/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "voicecut",
	Short: "Edit videos with natural language commands",
	Long: `voicecut is a prototype for voice-controlled video editing. It parses
natural language commands, spoken or typed, into edit instructions and
applies them with ffmpeg or OpenCV:

  - Trim by start/end timestamps
  - Overlay text at a position and time
  - Add transitions
  - Adjust playback speed

Example:
  voicecut apply --command "Trim the video from 00:00:10 to 00:00:30" --file clip.mp4`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Missing config is fine for a first run, fall back to defaults
		cfg = config.Default()
		config.ApplyEnvOverrides(cfg)
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
