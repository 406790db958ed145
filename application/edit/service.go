package edit

import (
	"context"
	"fmt"

	"voicecut/domain/edit"
	"voicecut/domain/session"
)

// ApplyResult reports one dispatched command
type ApplyResult struct {
	Instruction *edit.Instruction
	Message     string
	OutputPath  string
}

// Service coordinates parsing and dispatching edit commands against the
// editor selected at startup.
type Service struct {
	editor edit.Editor
}

// NewService creates a new Service
func NewService(editor edit.Editor) *Service {
	return &Service{editor: editor}
}

// Apply parses commandText against the session's current file, dispatches
// the instruction to the editor, and records the outcome. Any failure
// leaves the session untouched: history grows and the current file
// advances only when the editor reports success.
func (s *Service) Apply(ctx context.Context, sess *session.Session, commandText string) (*ApplyResult, error) {
	instr := edit.Parse(commandText, sess.CurrentFile())

	if instr.Action == edit.ActionUnknown {
		return nil, fmt.Errorf("%w: %q", edit.ErrUnrecognizedCommand, instr.Original)
	}

	if err := instr.Validate(); err != nil {
		return nil, err
	}

	result, err := s.editor.Apply(ctx, instr)
	if err != nil {
		return nil, fmt.Errorf("%s edit failed: %w", instr.Action, err)
	}

	sess.RecordEdit(instr.SourceFile, result.OutputPath, instr.Action)

	return &ApplyResult{
		Instruction: instr,
		Message:     result.Message,
		OutputPath:  result.OutputPath,
	}, nil
}
