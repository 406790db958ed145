//go:build integration

package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voicecut/cmd"
	"voicecut/infrastructure/config"

	"github.com/cucumber/godog"
)

type setupContext struct {
	tempDir         string
	configPath      string
	setupCancelled  bool
	originalContent string
	err             error
}

var SharedSetupContext = &setupContext{}

// MockPrompter implements cmd.Prompter for testing
type MockPrompter struct {
	inputResponses   []string
	confirmResponses []bool
	selectResponses  []string
	inputIndex       int
	confirmIndex     int
	selectIndex      int
}

func NewMockPrompter(inputs []string, confirms []bool, selects []string) *MockPrompter {
	return &MockPrompter{
		inputResponses:   inputs,
		confirmResponses: confirms,
		selectResponses:  selects,
	}
}

func (m *MockPrompter) Input(message string, defaultValue string) (string, error) {
	if m.inputIndex >= len(m.inputResponses) {
		if defaultValue != "" {
			return defaultValue, nil
		}
		return "", fmt.Errorf("no more input responses available for message: %s", message)
	}
	response := m.inputResponses[m.inputIndex]
	m.inputIndex++
	return response, nil
}

func (m *MockPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if m.confirmIndex >= len(m.confirmResponses) {
		return defaultValue, nil
	}
	response := m.confirmResponses[m.confirmIndex]
	m.confirmIndex++
	return response, nil
}

func (m *MockPrompter) Select(message string, options []string) (string, error) {
	if m.selectIndex >= len(m.selectResponses) {
		if len(options) > 0 {
			return options[0], nil
		}
		return "", fmt.Errorf("no more select responses available for message: %s", message)
	}
	response := m.selectResponses[m.selectIndex]
	m.selectIndex++
	return response, nil
}

func InitializeSetupScenario(ctx *godog.ScenarioContext) {
	testCtx := SharedSetupContext

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		// Create temp directory for each scenario
		tempDir, err := os.MkdirTemp("", "setup-test-*")
		if err != nil {
			return c, err
		}
		testCtx.tempDir = tempDir
		testCtx.configPath = filepath.Join(tempDir, "config", "config.yaml")
		testCtx.setupCancelled = false
		testCtx.originalContent = ""
		testCtx.err = nil
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		// Cleanup temp directory
		if testCtx.tempDir != "" {
			os.RemoveAll(testCtx.tempDir)
		}
		SharedSetupContext = &setupContext{}
		return c, nil
	})

	ctx.Step(`^no config file exists for setup$`, testCtx.noConfigFileExistsForSetup)
	ctx.Step(`^a config file already exists for setup$`, testCtx.aConfigFileAlreadyExistsForSetup)
	ctx.Step(`^I run the setup command answering:$`, testCtx.iRunTheSetupCommandAnswering)
	ctx.Step(`^I run the setup command declining the overwrite$`, testCtx.iRunTheSetupCommandDecliningTheOverwrite)
	ctx.Step(`^a config file should exist$`, testCtx.aConfigFileShouldExist)
	ctx.Step(`^the config should have library_directory "([^"]*)"$`, testCtx.theConfigShouldHaveLibraryDirectory)
	ctx.Step(`^the config should have output_directory "([^"]*)"$`, testCtx.theConfigShouldHaveOutputDirectory)
	ctx.Step(`^the config should have backend "([^"]*)"$`, testCtx.theConfigShouldHaveBackend)
	ctx.Step(`^the config should have ffmpeg_path "([^"]*)"$`, testCtx.theConfigShouldHaveFfmpegPath)
	ctx.Step(`^the config should have speech enabled$`, testCtx.theConfigShouldHaveSpeechEnabled)
	ctx.Step(`^the config should have model_path "([^"]*)"$`, testCtx.theConfigShouldHaveModelPath)
	ctx.Step(`^the setup should be cancelled$`, testCtx.theSetupShouldBeCancelled)
	ctx.Step(`^the existing config should be unchanged$`, testCtx.theExistingConfigShouldBeUnchanged)
}

func (s *setupContext) noConfigFileExistsForSetup() error {
	// Just ensure the config path directory exists but no config file
	configDir := filepath.Dir(s.configPath)
	return os.MkdirAll(configDir, 0755)
}

func (s *setupContext) aConfigFileAlreadyExistsForSetup() error {
	// Create the config file with some content
	configDir := filepath.Dir(s.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	content := `paths:
  library_directory: "/original/library"
  output_directory: "/original/edited"
editor:
  backend: "ffmpeg"
`
	s.originalContent = content
	return os.WriteFile(s.configPath, []byte(content), 0644)
}

func (s *setupContext) iRunTheSetupCommandAnswering(table *godog.Table) error {
	inputs, confirms, selects := parseAnswerTable(table)
	prompter := NewMockPrompter(inputs, confirms, selects)

	s.err = cmd.RunSetupWithPrompter(prompter, s.configPath)
	if s.err != nil {
		return fmt.Errorf("setup command failed: %w", s.err)
	}
	return nil
}

func (s *setupContext) iRunTheSetupCommandDecliningTheOverwrite() error {
	prompter := NewMockPrompter(nil, []bool{false}, nil)

	s.err = cmd.RunSetupWithPrompter(prompter, s.configPath)
	s.setupCancelled = true
	return nil
}

// parseAnswerTable splits | type | value | rows into the three answer queues
func parseAnswerTable(table *godog.Table) ([]string, []bool, []string) {
	var inputs []string
	var confirms []bool
	var selects []string

	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header row
		}
		kind := strings.ToLower(row.Cells[0].Value)
		value := row.Cells[1].Value

		switch kind {
		case "confirm":
			confirms = append(confirms, strings.ToLower(value) == "y")
		case "select":
			selects = append(selects, value)
		default:
			inputs = append(inputs, value)
		}
	}

	return inputs, confirms, selects
}

func (s *setupContext) aConfigFileShouldExist() error {
	if _, err := os.Stat(s.configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist at %s", s.configPath)
	}
	return nil
}

func (s *setupContext) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (s *setupContext) theConfigShouldHaveLibraryDirectory(expected string) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Paths.LibraryDirectory != expected {
		return fmt.Errorf("expected library_directory %q, got %q", expected, cfg.Paths.LibraryDirectory)
	}
	return nil
}

func (s *setupContext) theConfigShouldHaveOutputDirectory(expected string) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Paths.OutputDirectory != expected {
		return fmt.Errorf("expected output_directory %q, got %q", expected, cfg.Paths.OutputDirectory)
	}
	return nil
}

func (s *setupContext) theConfigShouldHaveBackend(expected string) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Editor.Backend != expected {
		return fmt.Errorf("expected backend %q, got %q", expected, cfg.Editor.Backend)
	}
	return nil
}

func (s *setupContext) theConfigShouldHaveFfmpegPath(expected string) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Editor.FFmpegPath != expected {
		return fmt.Errorf("expected ffmpeg_path %q, got %q", expected, cfg.Editor.FFmpegPath)
	}
	return nil
}

func (s *setupContext) theConfigShouldHaveSpeechEnabled() error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Speech.Enabled {
		return fmt.Errorf("expected speech to be enabled")
	}
	return nil
}

func (s *setupContext) theConfigShouldHaveModelPath(expected string) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Speech.ModelPath != expected {
		return fmt.Errorf("expected model_path %q, got %q", expected, cfg.Speech.ModelPath)
	}
	return nil
}

func (s *setupContext) theSetupShouldBeCancelled() error {
	if !s.setupCancelled {
		return fmt.Errorf("expected setup to be cancelled")
	}
	return nil
}

func (s *setupContext) theExistingConfigShouldBeUnchanged() error {
	content, err := os.ReadFile(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if string(content) != s.originalContent {
		return fmt.Errorf("config content was changed")
	}
	return nil
}
