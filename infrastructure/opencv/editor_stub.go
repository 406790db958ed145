//go:build !opencv

package opencv

import (
	"context"
	"fmt"

	"voicecut/domain/edit"
	"voicecut/domain/video"
)

// Editor is a stub when GoCV/OpenCV is not available
type Editor struct{}

// Option is a functional option for configuring Editor
type Option func(*Editor)

// WithFourCC is a no-op in stub mode
func WithFourCC(code string) Option {
	return func(e *Editor) {}
}

// New creates a stub editor (requires building with -tags=opencv)
func New(outputDir string, checker video.FileChecker, opts ...Option) *Editor {
	return &Editor{}
}

// Name implements edit.Editor
func (e *Editor) Name() string {
	return "opencv"
}

// Available returns an error indicating the backend is not compiled in
func (e *Editor) Available() error {
	return fmt.Errorf("opencv backend not available: build with '-tags=opencv' and install OpenCV/GoCV")
}

// Apply returns an error indicating the backend is not compiled in
func (e *Editor) Apply(ctx context.Context, instr *edit.Instruction) (*edit.Result, error) {
	return nil, fmt.Errorf("opencv backend not available: build with '-tags=opencv' and install OpenCV/GoCV")
}

// Ensure Editor implements edit.Editor
var _ edit.Editor = (*Editor)(nil)
