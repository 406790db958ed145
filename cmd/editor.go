package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"voicecut/domain/edit"
	"voicecut/domain/speech"
	"voicecut/infrastructure/config"
	"voicecut/infrastructure/ffmpeg"
	"voicecut/infrastructure/filesystem"
	"voicecut/infrastructure/opencv"
	"voicecut/infrastructure/simulator"
	"voicecut/infrastructure/whisper"
)

// newEditor selects the editing backend from config. When the configured
// backend is not usable the session still starts, in simulation mode.
func newEditor(ctx context.Context, cfg *config.Config, forceSimulate bool, out io.Writer) edit.Editor {
	if forceSimulate || cfg.Editor.Simulate {
		return simulator.New(out)
	}

	checker := filesystem.NewChecker()

	if cfg.Editor.Backend == config.BackendOpenCV {
		editor := opencv.New(cfg.Paths.OutputDirectory, checker)
		if err := editor.Available(); err != nil {
			fmt.Fprintf(out, "OpenCV backend unavailable: %v\n", err)
			fmt.Fprintln(out, "Falling back to simulation mode.")
			return simulator.New(out)
		}
		return editor
	}

	editor := ffmpeg.New(cfg.Paths.OutputDirectory, checker,
		ffmpeg.WithFFmpegPath(cfg.Editor.FFmpegPath),
		ffmpeg.WithFFprobePath(cfg.Editor.FFprobePath),
	)

	verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := editor.VerifyInstalled(verifyCtx); err != nil {
		fmt.Fprintf(out, "ffmpeg unavailable: %v\n", err)
		fmt.Fprintln(out, "Falling back to simulation mode.")
		return simulator.New(out)
	}
	return editor
}

// newRecognizer builds the whisper.cpp recognizer from config
func newRecognizer(cfg *config.Config) speech.Recognizer {
	return whisper.New(cfg.Speech.ModelPath,
		whisper.WithRecorderPath(cfg.Speech.RecorderPath),
		whisper.WithWhisperPath(cfg.Speech.WhisperPath),
		whisper.WithRecordSeconds(cfg.Speech.RecordSeconds),
	)
}
