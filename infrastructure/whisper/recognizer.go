package whisper

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"voicecut/domain/speech"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct{}

// Run executes a command, folding its combined output into any error
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\n%s", name, err, string(out))
	}
	return nil
}

// Output executes a command and returns its output
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Recognizer implements speech.Recognizer by recording a short clip with
// arecord and transcribing it with a whisper.cpp binary.
type Recognizer struct {
	recorderPath string
	whisperPath  string
	modelPath    string
	seconds      int
	runner       CommandRunner
	lookPath     func(string) (string, error)
}

// Option is a functional option for configuring Recognizer
type Option func(*Recognizer)

// WithRecorderPath sets a custom recorder executable path
func WithRecorderPath(path string) Option {
	return func(r *Recognizer) {
		if path != "" {
			r.recorderPath = path
		}
	}
}

// WithWhisperPath sets a custom whisper.cpp executable path
func WithWhisperPath(path string) Option {
	return func(r *Recognizer) {
		if path != "" {
			r.whisperPath = path
		}
	}
}

// WithRecordSeconds sets how long each capture runs
func WithRecordSeconds(seconds int) Option {
	return func(r *Recognizer) {
		if seconds > 0 {
			r.seconds = seconds
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) Option {
	return func(r *Recognizer) {
		r.runner = runner
	}
}

// WithLookPath sets a custom executable lookup (for testing)
func WithLookPath(lookPath func(string) (string, error)) Option {
	return func(r *Recognizer) {
		r.lookPath = lookPath
	}
}

// New creates a recognizer using the given whisper model file
func New(modelPath string, opts ...Option) *Recognizer {
	r := &Recognizer{
		recorderPath: "arecord",
		whisperPath:  "whisper-cli",
		modelPath:    modelPath,
		seconds:      5,
		runner:       &ExecCommandRunner{},
		lookPath:     exec.LookPath,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Available implements speech.Recognizer
func (r *Recognizer) Available(ctx context.Context) error {
	if _, err := r.lookPath(r.recorderPath); err != nil {
		return fmt.Errorf("%w: recorder %q not found", speech.ErrUnavailable, r.recorderPath)
	}
	if _, err := r.lookPath(r.whisperPath); err != nil {
		return fmt.Errorf("%w: transcriber %q not found", speech.ErrUnavailable, r.whisperPath)
	}
	if r.modelPath == "" {
		return fmt.Errorf("%w: no whisper model configured", speech.ErrUnavailable)
	}
	if _, err := os.Stat(r.modelPath); err != nil {
		return fmt.Errorf("%w: whisper model %q not found", speech.ErrUnavailable, r.modelPath)
	}
	return nil
}

// Listen implements speech.Recognizer
func (r *Recognizer) Listen(ctx context.Context) (string, error) {
	wav, err := os.CreateTemp("", "voicecut-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create capture file: %w", err)
	}
	wavPath := wav.Name()
	wav.Close()
	defer os.Remove(wavPath)

	// 16 kHz mono signed 16-bit is what whisper.cpp expects
	if err := r.runner.Run(ctx, r.recorderPath,
		"-d", strconv.Itoa(r.seconds),
		"-f", "S16_LE",
		"-r", "16000",
		"-c", "1",
		wavPath,
	); err != nil {
		return "", fmt.Errorf("recording failed: %w", err)
	}

	out, err := r.runner.Output(ctx, r.whisperPath,
		"-m", r.modelPath,
		"-f", wavPath,
		"-nt", // no timestamps
		"-np", // no progress prints
	)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", fmt.Errorf("no speech recognized")
	}
	return text, nil
}

// Ensure Recognizer implements speech.Recognizer
var _ speech.Recognizer = (*Recognizer)(nil)
