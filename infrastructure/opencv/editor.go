//go:build opencv

package opencv

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"

	"gocv.io/x/gocv"

	"voicecut/domain/edit"
	"voicecut/domain/video"
)

// maxTextDuration is how long a text overlay stays on screen, in seconds
const maxTextDuration = 5.0

// fadeDuration is the length of the fade-in effect, in seconds
const fadeDuration = 2.0

// Editor is a frame-accurate edit.Editor built on GoCV. It decodes and
// re-encodes every frame, so cuts land exactly on frame boundaries, but
// audio is not carried over.
type Editor struct {
	outputDir string
	checker   video.FileChecker
	fourcc    string
}

// Option is a functional option for configuring Editor
type Option func(*Editor)

// WithFourCC sets the codec used for written files
func WithFourCC(code string) Option {
	return func(e *Editor) {
		if code != "" {
			e.fourcc = code
		}
	}
}

// New creates a GoCV-backed editor writing outputs to outputDir
func New(outputDir string, checker video.FileChecker, opts ...Option) *Editor {
	e := &Editor{
		outputDir: outputDir,
		checker:   checker,
		fourcc:    "mp4v",
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Name implements edit.Editor
func (e *Editor) Name() string {
	return "opencv"
}

// Available reports whether this backend was compiled in
func (e *Editor) Available() error {
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

	capture, err := gocv.OpenVideoCapture(instr.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", instr.SourceFile, err)
	}
	defer capture.Close()

	props, err := readProperties(capture)
	if err != nil {
		return nil, fmt.Errorf("could not read stream properties of %s: %w", instr.SourceFile, err)
	}

	outputPath := filepath.Join(e.outputDir, instr.OutputFile)

	switch instr.Action {
	case edit.ActionTrim:
		err = e.trim(ctx, capture, props, instr, outputPath)
	case edit.ActionAddText:
		err = e.addText(ctx, capture, props, instr, outputPath)
	case edit.ActionAddTransition:
		err = e.addTransition(ctx, capture, props, instr, outputPath)
	case edit.ActionAdjustSpeed:
		err = e.adjustSpeed(ctx, capture, props, instr, outputPath)
	}
	if err != nil {
		return nil, err
	}

	return &edit.Result{
		Message:    fmt.Sprintf("Successfully applied %s to %s and saved as %s", instr.Action, instr.SourceFile, outputPath),
		OutputPath: outputPath,
	}, nil
}

func (e *Editor) trim(ctx context.Context, capture *gocv.VideoCapture, props streamProps, instr *edit.Instruction, outputPath string) error {
	start, err := video.ToSeconds(instr.Start)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	end, err := video.ToSeconds(instr.End)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}

	startFrame := int(start * props.fps)
	if startFrame >= props.frameCount {
		return fmt.Errorf("start time %s is beyond the end of the video", instr.Start)
	}
	endFrame := int(end * props.fps)
	if endFrame > props.frameCount {
		endFrame = props.frameCount
	}

	return e.renderWindow(ctx, capture, props, startFrame, endFrame, props.fps, outputPath, nil)
}

func (e *Editor) addText(ctx context.Context, capture *gocv.VideoCapture, props streamProps, instr *edit.Instruction, outputPath string) error {
	start, err := video.ToSeconds(instr.Time)
	if err != nil {
		return fmt.Errorf("invalid text time: %w", err)
	}
	if start >= props.duration {
		return fmt.Errorf("text time %s is beyond the end of the video", instr.Time)
	}

	overlayEnd := math.Min(start+maxTextDuration, props.duration)
	firstFrame := int(start * props.fps)
	lastFrame := int(overlayEnd * props.fps)

	font := gocv.FontHersheySimplex
	scale := 1.2
	thickness := 2
	size := gocv.GetTextSize(instr.Text, font, scale, thickness)
	org := anchorPoint(instr.Position, props.width, props.height, size)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	return e.renderWindow(ctx, capture, props, 0, props.frameCount, props.fps, outputPath,
		func(frame *gocv.Mat, index int) {
			if index >= firstFrame && index < lastFrame {
				gocv.PutText(frame, instr.Text, org, font, scale, white, thickness)
			}
		})
}

func (e *Editor) addTransition(ctx context.Context, capture *gocv.VideoCapture, props streamProps, instr *edit.Instruction, outputPath string) error {
	// Only fade is implemented; other transition types re-encode unchanged
	if instr.Transition != "fade" {
		return e.renderWindow(ctx, capture, props, 0, props.frameCount, props.fps, outputPath, nil)
	}

	fadeFrames := int(fadeDuration * props.fps)
	if fadeFrames > props.frameCount {
		fadeFrames = props.frameCount
	}

	return e.renderWindow(ctx, capture, props, 0, props.frameCount, props.fps, outputPath,
		func(frame *gocv.Mat, index int) {
			if index < fadeFrames {
				frame.MultiplyFloat(float32(index+1) / float32(fadeFrames))
			}
		})
}

func (e *Editor) adjustSpeed(ctx context.Context, capture *gocv.VideoCapture, props streamProps, instr *edit.Instruction, outputPath string) error {
	// Writing the same frames at a scaled frame rate retimes playback
	return e.renderWindow(ctx, capture, props, 0, props.frameCount, props.fps*instr.Speed, outputPath, nil)
}

// renderWindow walks frames [startFrame, endFrame), applies transform to
// each decoded frame, and writes the result at outFPS.
func (e *Editor) renderWindow(ctx context.Context, capture *gocv.VideoCapture, props streamProps, startFrame, endFrame int, outFPS float64, outputPath string, transform func(frame *gocv.Mat, index int)) error {
	writer, err := gocv.VideoWriterFile(outputPath, e.fourcc, outFPS, props.width, props.height, true)
	if err != nil {
		return fmt.Errorf("failed to open writer for %s: %w", outputPath, err)
	}
	defer writer.Close()

	capture.Set(gocv.VideoCapturePosFrames, float64(startFrame))

	frame := gocv.NewMat()
	defer frame.Close()

	for i := startFrame; i < endFrame; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if ok := capture.Read(&frame); !ok || frame.Empty() {
			break
		}
		if transform != nil {
			transform(&frame, i-startFrame)
		}
		if err := writer.Write(frame); err != nil {
			return fmt.Errorf("failed to write frame %d to %s: %w", i, outputPath, err)
		}
	}

	return nil
}

// streamProps caches the capture properties every action needs
type streamProps struct {
	fps        float64
	frameCount int
	width      int
	height     int
	duration   float64
}

func readProperties(capture *gocv.VideoCapture) (streamProps, error) {
	props := streamProps{
		fps:        capture.Get(gocv.VideoCaptureFPS),
		frameCount: int(capture.Get(gocv.VideoCaptureFrameCount)),
		width:      int(capture.Get(gocv.VideoCaptureFrameWidth)),
		height:     int(capture.Get(gocv.VideoCaptureFrameHeight)),
	}
	if props.fps <= 0 || props.frameCount <= 0 {
		return props, fmt.Errorf("no decodable video stream")
	}
	props.duration = float64(props.frameCount) / props.fps
	return props, nil
}

// anchorPoint returns the bottom-left origin for PutText at a named anchor
func anchorPoint(position string, width, height int, textSize image.Point) image.Point {
	x := (width - textSize.X) / 2
	switch position {
	case edit.PositionTop:
		return image.Pt(x, height/10+textSize.Y)
	case edit.PositionBottom:
		return image.Pt(x, height-height/10)
	default:
		return image.Pt(x, (height+textSize.Y)/2)
	}
}

// Ensure Editor implements edit.Editor
var _ edit.Editor = (*Editor)(nil)
