package simulator

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"voicecut/domain/edit"
)

// timestampLayout suffixes simulated outputs so repeated runs do not collide
const timestampLayout = "20060102_150405"

// Editor is the simulation implementation of edit.Editor. It never touches
// the filesystem: it echoes the instruction to its writer and fabricates an
// output name.
type Editor struct {
	out io.Writer
	now func() time.Time
}

// Option is a functional option for configuring Editor
type Option func(*Editor)

// WithClock sets a custom time source (for testing)
func WithClock(now func() time.Time) Option {
	return func(e *Editor) {
		e.now = now
	}
}

// New creates a simulation editor that writes its echo to out
func New(out io.Writer, opts ...Option) *Editor {
	e := &Editor{
		out: out,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements edit.Editor
func (e *Editor) Name() string {
	return "simulation"
}

// Apply implements edit.Editor. It accepts every valid instruction,
// including ones the delegated backends refuse, and always reports an
// output file.
func (e *Editor) Apply(ctx context.Context, instr *edit.Instruction) (*edit.Result, error) {
	if err := instr.Validate(); err != nil {
		return nil, err
	}

	name := instr.OutputFile
	if name == "" {
		name = "output_" + filepath.Base(instr.SourceFile)
	}
	output := stampOutput(name, e.now())

	fmt.Fprintln(e.out, "\n--- SIMULATING VIDEO EDITING ---")
	fmt.Fprintf(e.out, "Action: %s\n", instr.Action)
	fmt.Fprintf(e.out, "Input file: %s\n", instr.SourceFile)
	fmt.Fprintf(e.out, "Output file: %s\n", output)
	for _, field := range actionFields(instr) {
		fmt.Fprintln(e.out, field)
	}

	return &edit.Result{
		Message:    fmt.Sprintf("Successfully applied %s to %s and saved as %s", instr.Action, instr.SourceFile, output),
		OutputPath: output,
	}, nil
}

// stampOutput inserts a timestamp before the extension so the base name and
// extension survive the suffixing.
func stampOutput(name string, now time.Time) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return base + "_" + now.Format(timestampLayout) + ext
}

// actionFields renders the action-specific fields, one per line
func actionFields(instr *edit.Instruction) []string {
	switch instr.Action {
	case edit.ActionTrim:
		return []string{
			"Start time: " + instr.Start,
			"End time: " + instr.End,
		}
	case edit.ActionAddText:
		return []string{
			"Text: " + instr.Text,
			"Position: " + instr.Position,
			"Time: " + instr.Time,
		}
	case edit.ActionAddTransition:
		return []string{
			"Transition type: " + instr.Transition,
			"Time: " + instr.Time,
		}
	case edit.ActionAdjustSpeed:
		return []string{fmt.Sprintf("Speed factor: %g", instr.Speed)}
	default:
		return nil
	}
}

// Ensure Editor implements edit.Editor
var _ edit.Editor = (*Editor)(nil)
