package whisper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voicecut/domain/speech"
)

// --- Mock implementations for testing ---

type mockRunner struct {
	runCalls    [][]string
	outputCalls [][]string
	runErr      error
	output      []byte
	outputErr   error
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) error {
	m.runCalls = append(m.runCalls, append([]string{name}, args...))
	return m.runErr
}

func (m *mockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.outputCalls = append(m.outputCalls, append([]string{name}, args...))
	if m.outputErr != nil {
		return nil, m.outputErr
	}
	return m.output, nil
}

func foundLookPath(string) (string, error) {
	return "/usr/bin/mock", nil
}

func argValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func TestListen(t *testing.T) {
	runner := &mockRunner{output: []byte(" Trim the video from 10 to 20\n")}
	rec := New("model.bin", WithCommandRunner(runner))

	text, err := rec.Listen(context.Background())
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	if text != "Trim the video from 10 to 20" {
		t.Errorf("Listen() = %q, want trimmed transcript", text)
	}

	if len(runner.runCalls) != 1 {
		t.Fatalf("expected 1 recording call, got %d", len(runner.runCalls))
	}
	record := runner.runCalls[0]
	if record[0] != "arecord" {
		t.Errorf("recorder = %q, want arecord", record[0])
	}
	if got := argValue(record, "-d"); got != "5" {
		t.Errorf("record duration = %q, want 5", got)
	}
	if got := argValue(record, "-f"); got != "S16_LE" {
		t.Errorf("record format = %q, want S16_LE", got)
	}
	if got := argValue(record, "-r"); got != "16000" {
		t.Errorf("record rate = %q, want 16000", got)
	}
	if got := argValue(record, "-c"); got != "1" {
		t.Errorf("record channels = %q, want 1", got)
	}
	wavPath := record[len(record)-1]
	if !strings.HasSuffix(wavPath, ".wav") {
		t.Errorf("capture file = %q, want .wav suffix", wavPath)
	}

	if len(runner.outputCalls) != 1 {
		t.Fatalf("expected 1 transcription call, got %d", len(runner.outputCalls))
	}
	transcribe := runner.outputCalls[0]
	if transcribe[0] != "whisper-cli" {
		t.Errorf("transcriber = %q, want whisper-cli", transcribe[0])
	}
	if got := argValue(transcribe, "-m"); got != "model.bin" {
		t.Errorf("model = %q, want model.bin", got)
	}
	if got := argValue(transcribe, "-f"); got != wavPath {
		t.Errorf("transcriber input = %q, want %q", got, wavPath)
	}
	joined := strings.Join(transcribe, " ")
	if !strings.Contains(joined, "-nt") || !strings.Contains(joined, "-np") {
		t.Errorf("transcriber args = %v, want -nt and -np", transcribe)
	}
}

func TestListenWithCustomOptions(t *testing.T) {
	runner := &mockRunner{output: []byte("crop the video")}
	rec := New("model.bin",
		WithCommandRunner(runner),
		WithRecorderPath("/opt/bin/arecord"),
		WithWhisperPath("/opt/bin/whisper"),
		WithRecordSeconds(8),
	)

	if _, err := rec.Listen(context.Background()); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	record := runner.runCalls[0]
	if record[0] != "/opt/bin/arecord" {
		t.Errorf("recorder = %q, want /opt/bin/arecord", record[0])
	}
	if got := argValue(record, "-d"); got != "8" {
		t.Errorf("record duration = %q, want 8", got)
	}
	if got := runner.outputCalls[0][0]; got != "/opt/bin/whisper" {
		t.Errorf("transcriber = %q, want /opt/bin/whisper", got)
	}
}

func TestListenRecordingFails(t *testing.T) {
	runner := &mockRunner{runErr: errors.New("no capture device")}
	rec := New("model.bin", WithCommandRunner(runner))

	_, err := rec.Listen(context.Background())
	if err == nil {
		t.Fatal("expected error when recording fails")
	}
	if !strings.Contains(err.Error(), "recording failed") {
		t.Errorf("error = %v, want recording failed", err)
	}
	if len(runner.outputCalls) != 0 {
		t.Error("transcriber should not run when recording fails")
	}
}

func TestListenTranscriptionFails(t *testing.T) {
	runner := &mockRunner{outputErr: errors.New("exit status 1")}
	rec := New("model.bin", WithCommandRunner(runner))

	_, err := rec.Listen(context.Background())
	if err == nil {
		t.Fatal("expected error when transcription fails")
	}
	if !strings.Contains(err.Error(), "transcription failed") {
		t.Errorf("error = %v, want transcription failed", err)
	}
}

func TestListenEmptyTranscript(t *testing.T) {
	runner := &mockRunner{output: []byte("  \n")}
	rec := New("model.bin", WithCommandRunner(runner))

	_, err := rec.Listen(context.Background())
	if err == nil {
		t.Fatal("expected error for empty transcript")
	}
	if !strings.Contains(err.Error(), "no speech recognized") {
		t.Errorf("error = %v, want no speech recognized", err)
	}
}

func TestAvailable(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "ggml-base.en.bin")
	if err := os.WriteFile(modelPath, []byte("model"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := New(modelPath, WithLookPath(foundLookPath))
	if err := rec.Available(context.Background()); err != nil {
		t.Errorf("Available() error = %v, want nil", err)
	}
}

func TestAvailableMissingBinaries(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "ggml-base.en.bin")
	if err := os.WriteFile(modelPath, []byte("model"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		lookPath func(string) (string, error)
		wantPart string
	}{
		{
			name: "recorder missing",
			lookPath: func(name string) (string, error) {
				if name == "arecord" {
					return "", fmt.Errorf("not found")
				}
				return "/usr/bin/" + name, nil
			},
			wantPart: "recorder",
		},
		{
			name: "transcriber missing",
			lookPath: func(name string) (string, error) {
				if name == "whisper-cli" {
					return "", fmt.Errorf("not found")
				}
				return "/usr/bin/" + name, nil
			},
			wantPart: "transcriber",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := New(modelPath, WithLookPath(tt.lookPath))
			err := rec.Available(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, speech.ErrUnavailable) {
				t.Errorf("error = %v, want speech.ErrUnavailable", err)
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantPart)
			}
		})
	}
}

func TestAvailableMissingModel(t *testing.T) {
	tests := []struct {
		name      string
		modelPath string
	}{
		{name: "unset model path", modelPath: ""},
		{name: "model file does not exist", modelPath: filepath.Join(t.TempDir(), "missing.bin")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := New(tt.modelPath, WithLookPath(foundLookPath))
			err := rec.Available(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, speech.ErrUnavailable) {
				t.Errorf("error = %v, want speech.ErrUnavailable", err)
			}
		})
	}
}
