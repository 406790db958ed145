package ffmpeg

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"voicecut/domain/edit"
	"voicecut/domain/video"
)

// maxTextDuration is how long a text overlay stays on screen, in seconds
const maxTextDuration = 5.0

// fadeDuration is the length of the fade-in effect, in seconds
const fadeDuration = 2.0

// Editor is the delegated edit.Editor backed by the ffmpeg and ffprobe
// binaries. Every action writes its result into outputDir.
type Editor struct {
	ffmpegPath  string
	ffprobePath string
	outputDir   string
	runner      CommandRunner
	checker     video.FileChecker
}

// Option is a functional option for configuring Editor
type Option func(*Editor)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) Option {
	return func(e *Editor) {
		if path != "" {
			e.ffmpegPath = path
		}
	}
}

// WithFFprobePath sets a custom ffprobe executable path
func WithFFprobePath(path string) Option {
	return func(e *Editor) {
		if path != "" {
			e.ffprobePath = path
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) Option {
	return func(e *Editor) {
		e.runner = runner
	}
}

// New creates an ffmpeg-backed editor writing outputs to outputDir
func New(outputDir string, checker video.FileChecker, opts ...Option) *Editor {
	e := &Editor{
		ffmpegPath:  "ffmpeg",
		ffprobePath: "ffprobe",
		outputDir:   outputDir,
		runner:      &ExecCommandRunner{},
		checker:     checker,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Name implements edit.Editor
func (e *Editor) Name() string {
	return "ffmpeg"
}

// VerifyInstalled checks that ffmpeg is available
func (e *Editor) VerifyInstalled(ctx context.Context) error {
	_, err := e.runner.Output(ctx, e.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// Apply implements edit.Editor
func (e *Editor) Apply(ctx context.Context, instr *edit.Instruction) (*edit.Result, error) {
	if err := instr.Validate(); err != nil {
		return nil, err
	}

	switch instr.Action {
	case edit.ActionCrop, edit.ActionUnknown:
		return nil, fmt.Errorf("%w: %s", edit.ErrUnsupportedAction, instr.Action)
	}

	if !e.checker.Exists(instr.SourceFile) {
		return nil, fmt.Errorf("source file does not exist: %s", instr.SourceFile)
	}

	outputPath := filepath.Join(e.outputDir, instr.OutputFile)

	var err error
	switch instr.Action {
	case edit.ActionTrim:
		err = e.trim(ctx, instr, outputPath)
	case edit.ActionAddText:
		err = e.addText(ctx, instr, outputPath)
	case edit.ActionAddTransition:
		err = e.addTransition(ctx, instr, outputPath)
	case edit.ActionAdjustSpeed:
		err = e.adjustSpeed(ctx, instr, outputPath)
	}
	if err != nil {
		return nil, err
	}

	return &edit.Result{
		Message:    fmt.Sprintf("Successfully applied %s to %s and saved as %s", instr.Action, instr.SourceFile, outputPath),
		OutputPath: outputPath,
	}, nil
}

// trim cuts the source between the instruction's start and end times. The
// end time is clamped to the source duration; streams are copied without
// re-encoding.
func (e *Editor) trim(ctx context.Context, instr *edit.Instruction, outputPath string) error {
	duration, err := e.duration(ctx, instr.SourceFile)
	if err != nil {
		return err
	}

	end, err := video.ToSeconds(instr.End)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}

	to := instr.End
	if end > duration {
		to = formatSeconds(duration)
	}

	args := []string{
		"-i", instr.SourceFile,
		"-ss", instr.Start,
		"-to", to,
		"-c", "copy",
		"-y", // Overwrite output file if it exists
		outputPath,
	}

	if err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg trim failed: %w", err)
	}

	return nil
}

// addText burns the overlay into the video with drawtext. The overlay runs
// for five seconds or until the end of the video, whichever comes first.
func (e *Editor) addText(ctx context.Context, instr *edit.Instruction, outputPath string) error {
	duration, err := e.duration(ctx, instr.SourceFile)
	if err != nil {
		return err
	}

	start, err := video.ToSeconds(instr.Time)
	if err != nil {
		return fmt.Errorf("invalid text time: %w", err)
	}
	if start >= duration {
		return fmt.Errorf("text time %s is beyond the end of the video", instr.Time)
	}

	textDuration := math.Min(maxTextDuration, duration-start)

	filter := fmt.Sprintf(
		"drawtext=text='%s':fontsize=48:fontcolor=white:%s:enable='between(t,%s,%s)'",
		escapeDrawtext(instr.Text),
		positionExpr(instr.Position),
		formatSeconds(start),
		formatSeconds(start+textDuration),
	)

	args := []string{
		"-i", instr.SourceFile,
		"-vf", filter,
		"-c:a", "copy",
		"-y",
		outputPath,
	}

	if err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg drawtext failed: %w", err)
	}

	return nil
}

// addTransition applies a fade-in from black. Only the fade type has an
// effect; other transition types copy the content through untouched.
func (e *Editor) addTransition(ctx context.Context, instr *edit.Instruction, outputPath string) error {
	var args []string
	if instr.Transition == "fade" {
		args = []string{
			"-i", instr.SourceFile,
			"-vf", fmt.Sprintf("fade=t=in:st=0:d=%g", fadeDuration),
			"-c:a", "copy",
			"-y",
			outputPath,
		}
	} else {
		args = []string{
			"-i", instr.SourceFile,
			"-c", "copy",
			"-y",
			outputPath,
		}
	}

	if err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg transition failed: %w", err)
	}

	return nil
}

// adjustSpeed retimes video frames with setpts and keeps audio pitch with
// an atempo chain.
func (e *Editor) adjustSpeed(ctx context.Context, instr *edit.Instruction, outputPath string) error {
	args := []string{
		"-i", instr.SourceFile,
		"-filter:v", fmt.Sprintf("setpts=PTS/%g", instr.Speed),
		"-filter:a", atempoChain(instr.Speed),
		"-y",
		outputPath,
	}

	if err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg speed change failed: %w", err)
	}

	return nil
}

// positionExpr maps a named anchor to drawtext coordinates
func positionExpr(position string) string {
	switch position {
	case edit.PositionTop:
		return "x=(w-text_w)/2:y=h/10"
	case edit.PositionBottom:
		return "x=(w-text_w)/2:y=h-text_h-h/10"
	default:
		return "x=(w-text_w)/2:y=(h-text_h)/2"
	}
}

// escapeDrawtext escapes the characters the drawtext filter treats
// specially inside a single-quoted text value
func escapeDrawtext(text string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
		`%`, `\%`,
	)
	return replacer.Replace(text)
}

// atempoChain composes atempo stages so every stage stays inside the
// filter's legal 0.5-2.0 range
func atempoChain(factor float64) string {
	var stages []string
	for factor > 2.0 {
		stages = append(stages, "atempo=2.0")
		factor /= 2.0
	}
	for factor < 0.5 {
		stages = append(stages, "atempo=0.5")
		factor /= 0.5
	}
	stages = append(stages, fmt.Sprintf("atempo=%g", factor))
	return strings.Join(stages, ",")
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// Ensure Editor implements edit.Editor
var _ edit.Editor = (*Editor)(nil)
