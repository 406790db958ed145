package edit

import (
	"context"
	"errors"
	"testing"

	"voicecut/domain/edit"
	"voicecut/domain/session"
)

// --- Mock implementations for testing ---

// mockEditor implements edit.Editor for testing
type mockEditor struct {
	applied    []*edit.Instruction
	result     *edit.Result
	shouldFail bool
	failError  error
}

func (m *mockEditor) Name() string {
	return "mock"
}

func (m *mockEditor) Apply(ctx context.Context, instr *edit.Instruction) (*edit.Result, error) {
	m.applied = append(m.applied, instr)
	if m.shouldFail {
		return nil, m.failError
	}
	if m.result != nil {
		return m.result, nil
	}
	return &edit.Result{
		Message:    "applied " + string(instr.Action),
		OutputPath: instr.OutputFile,
	}, nil
}

// --- Tests ---

func TestService_Apply(t *testing.T) {
	ctx := context.Background()
	editor := &mockEditor{}
	service := NewService(editor)
	sess := session.NewSession("default_video.mp4")

	result, err := service.Apply(ctx, sess, "Trim the file vacation.mp4 from 1:30 to 2:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Instruction.Action != edit.ActionTrim {
		t.Errorf("Instruction.Action = %q, want trim", result.Instruction.Action)
	}
	if result.OutputPath != "trimmed_vacation.mp4" {
		t.Errorf("OutputPath = %q, want trimmed_vacation.mp4", result.OutputPath)
	}
	if len(editor.applied) != 1 {
		t.Fatalf("editor received %d instructions, want 1", len(editor.applied))
	}
	if editor.applied[0].SourceFile != "vacation.mp4" {
		t.Errorf("editor received source %q, want vacation.mp4", editor.applied[0].SourceFile)
	}

	if got := sess.CurrentFile(); got != "trimmed_vacation.mp4" {
		t.Errorf("CurrentFile() = %q, want trimmed_vacation.mp4", got)
	}
	if len(sess.History()) != 1 {
		t.Errorf("History() length = %d, want 1", len(sess.History()))
	}
}

func TestService_ApplyUsesCurrentFile(t *testing.T) {
	ctx := context.Background()
	editor := &mockEditor{}
	service := NewService(editor)
	sess := session.NewSession("holiday.mp4")

	if _, err := service.Apply(ctx, sess, "Crop the video"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if editor.applied[0].SourceFile != "holiday.mp4" {
		t.Errorf("editor received source %q, want session current file", editor.applied[0].SourceFile)
	}
}

func TestService_ApplyUnrecognizedCommand(t *testing.T) {
	ctx := context.Background()
	editor := &mockEditor{}
	service := NewService(editor)
	sess := session.NewSession("default_video.mp4")

	_, err := service.Apply(ctx, sess, "blah blah nonsense")
	if err == nil {
		t.Fatal("expected error for unrecognized command")
	}
	if !errors.Is(err, edit.ErrUnrecognizedCommand) {
		t.Errorf("error = %v, want ErrUnrecognizedCommand", err)
	}
	if !containsString(err.Error(), "blah blah nonsense") {
		t.Errorf("error %v must preserve the original command", err)
	}

	if len(editor.applied) != 0 {
		t.Error("unrecognized commands must not reach the editor")
	}
	if got := sess.CurrentFile(); got != "default_video.mp4" {
		t.Errorf("CurrentFile() = %q, want unchanged default_video.mp4", got)
	}
	if len(sess.History()) != 0 {
		t.Error("unrecognized commands must not be recorded")
	}
}

func TestService_ApplyInvalidInstruction(t *testing.T) {
	ctx := context.Background()
	editor := &mockEditor{}
	service := NewService(editor)
	sess := session.NewSession("clip.mp4")

	_, err := service.Apply(ctx, sess, "Change the speed to 0")
	if err == nil {
		t.Fatal("expected error for zero speed factor")
	}
	if !errors.Is(err, edit.ErrInvalidInstruction) {
		t.Errorf("error = %v, want ErrInvalidInstruction", err)
	}

	if len(editor.applied) != 0 {
		t.Error("invalid instructions must not reach the editor")
	}
	if len(sess.History()) != 0 {
		t.Error("invalid instructions must not be recorded")
	}
}

func TestService_ApplyEditorFailureLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	editor := &mockEditor{
		shouldFail: true,
		failError:  errors.New("ffmpeg exploded"),
	}
	service := NewService(editor)
	sess := session.NewSession("clip.mp4")

	result, err := service.Apply(ctx, sess, "Trim the video from 1:30 to 2:45")
	if err == nil {
		t.Fatal("expected error when the editor fails")
	}
	if result != nil {
		t.Errorf("result = %+v, want nil on failure", result)
	}
	if !containsString(err.Error(), "ffmpeg exploded") {
		t.Errorf("error %v must wrap the editor failure", err)
	}

	if got := sess.CurrentFile(); got != "clip.mp4" {
		t.Errorf("CurrentFile() = %q, want unchanged clip.mp4", got)
	}
	if len(sess.History()) != 0 {
		t.Error("failed edits must not be recorded")
	}
}

func TestService_ApplyRecordsEditorOutputPath(t *testing.T) {
	ctx := context.Background()
	editor := &mockEditor{
		result: &edit.Result{
			Message:    "done",
			OutputPath: "out/trimmed_clip_20240102_150405.mp4",
		},
	}
	service := NewService(editor)
	sess := session.NewSession("clip.mp4")

	result, err := service.Apply(ctx, sess, "Trim the video from 1:30 to 2:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Message != "done" {
		t.Errorf("Message = %q, want editor message", result.Message)
	}
	if got := sess.CurrentFile(); got != "out/trimmed_clip_20240102_150405.mp4" {
		t.Errorf("CurrentFile() = %q, want the editor's output path", got)
	}
}

// --- Helper ---

func containsString(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
