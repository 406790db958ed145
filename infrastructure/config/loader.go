package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Editor backend names accepted in the config file
const (
	BackendFFmpeg = "ffmpeg"
	BackendOpenCV = "opencv"
)

// Config represents the complete application configuration
type Config struct {
	Paths  PathsConfig  `yaml:"paths"`
	Editor EditorConfig `yaml:"editor"`
	Speech SpeechConfig `yaml:"speech"`
}

// PathsConfig contains directory paths for the editing session
type PathsConfig struct {
	LibraryDirectory string `yaml:"library_directory"`
	OutputDirectory  string `yaml:"output_directory"`
}

// EditorConfig selects and configures the editing backend
type EditorConfig struct {
	Backend     string `yaml:"backend"`
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
	Simulate    bool   `yaml:"simulate"`
}

// SpeechConfig contains voice capture settings
type SpeechConfig struct {
	Enabled       bool   `yaml:"enabled"`
	RecorderPath  string `yaml:"recorder_path"`
	WhisperPath   string `yaml:"whisper_path"`
	ModelPath     string `yaml:"model_path"`
	RecordSeconds int    `yaml:"record_seconds"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			LibraryDirectory: "videos",
			OutputDirectory:  "edited",
		},
		Editor: EditorConfig{
			Backend:     BackendFFmpeg,
			FFmpegPath:  "ffmpeg",
			FFprobePath: "ffprobe",
		},
		Speech: SpeechConfig{
			RecorderPath:  "arecord",
			WhisperPath:   "whisper-cli",
			RecordSeconds: 5,
		},
	}
}

// Load reads and parses the configuration from the specified YAML file.
// Keys missing from the file keep their default values, and environment
// overrides are applied last.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	ApplyEnvOverrides(cfg)

	return cfg, nil
}

// ApplyEnvOverrides overlays tool paths from the environment onto cfg
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FFMPEG_PATH"); v != "" {
		cfg.Editor.FFmpegPath = v
	}
	if v := os.Getenv("FFPROBE_PATH"); v != "" {
		cfg.Editor.FFprobePath = v
	}
	if v := os.Getenv("WHISPER_PATH"); v != "" {
		cfg.Speech.WhisperPath = v
	}
	if v := os.Getenv("WHISPER_MODEL"); v != "" {
		cfg.Speech.ModelPath = v
	}
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
