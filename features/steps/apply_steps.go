//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"voicecut/cmd"
	"voicecut/domain/edit"

	"github.com/cucumber/godog"
)

// mockEditor records applied instructions for verification
type mockEditor struct {
	applied    []*edit.Instruction
	shouldFail bool
	failError  error
}

func (m *mockEditor) Name() string {
	return "mock"
}

func (m *mockEditor) Apply(ctx context.Context, instr *edit.Instruction) (*edit.Result, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	m.applied = append(m.applied, instr)
	return &edit.Result{
		Message:    fmt.Sprintf("Successfully applied %s to %s and saved as %s", instr.Action, instr.SourceFile, instr.OutputFile),
		OutputPath: instr.OutputFile,
	}, nil
}

// applyContext holds test state for apply scenarios
type applyContext struct {
	file   string
	editor *mockEditor
	output *bytes.Buffer
	err    error
}

// SharedApplyContext is reset before each scenario via Before hook
var SharedApplyContext *applyContext

func getApplyContext() *applyContext {
	return SharedApplyContext
}

func InitializeApplyScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedApplyContext = &applyContext{
			editor: &mockEditor{},
			output: &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedApplyContext = nil
		return c, nil
	})

	ctx.Step(`^the current video file is "([^"]*)"$`, theCurrentVideoFileIs)
	ctx.Step(`^the editor fails with "([^"]*)"$`, theEditorFailsWith)
	ctx.Step(`^I apply the command "([^"]*)"$`, iApplyTheCommand)
	ctx.Step(`^the editor should receive action "([^"]*)"$`, theEditorShouldReceiveAction)
	ctx.Step(`^the editor should receive source file "([^"]*)"$`, theEditorShouldReceiveSourceFile)
	ctx.Step(`^the editor should receive output file "([^"]*)"$`, theEditorShouldReceiveOutputFile)
	ctx.Step(`^the editor should receive start time "([^"]*)"$`, theEditorShouldReceiveStartTime)
	ctx.Step(`^the editor should receive end time "([^"]*)"$`, theEditorShouldReceiveEndTime)
	ctx.Step(`^the apply output should contain "([^"]*)"$`, theApplyOutputShouldContain)
	ctx.Step(`^the apply should fail$`, theApplyShouldFail)
	ctx.Step(`^the apply error should mention "([^"]*)"$`, theApplyErrorShouldMention)
	ctx.Step(`^the editor should not have been called$`, theEditorShouldNotHaveBeenCalled)
}

func theCurrentVideoFileIs(file string) error {
	a := getApplyContext()
	a.file = file
	return nil
}

func theEditorFailsWith(message string) error {
	a := getApplyContext()
	a.editor.shouldFail = true
	a.editor.failError = errors.New(message)
	return nil
}

func iApplyTheCommand(command string) error {
	a := getApplyContext()
	a.err = cmd.RunApplyWithDependencies(context.Background(), a.editor, a.file, command, a.output)
	return nil
}

func lastApplied() (*edit.Instruction, error) {
	a := getApplyContext()
	if len(a.editor.applied) == 0 {
		return nil, fmt.Errorf("the editor was not called")
	}
	return a.editor.applied[len(a.editor.applied)-1], nil
}

func theEditorShouldReceiveAction(action string) error {
	instr, err := lastApplied()
	if err != nil {
		return err
	}
	if string(instr.Action) != action {
		return fmt.Errorf("expected action %q, got %q", action, instr.Action)
	}
	return nil
}

func theEditorShouldReceiveSourceFile(file string) error {
	instr, err := lastApplied()
	if err != nil {
		return err
	}
	if instr.SourceFile != file {
		return fmt.Errorf("expected source file %q, got %q", file, instr.SourceFile)
	}
	return nil
}

func theEditorShouldReceiveOutputFile(file string) error {
	instr, err := lastApplied()
	if err != nil {
		return err
	}
	if instr.OutputFile != file {
		return fmt.Errorf("expected output file %q, got %q", file, instr.OutputFile)
	}
	return nil
}

func theEditorShouldReceiveStartTime(start string) error {
	instr, err := lastApplied()
	if err != nil {
		return err
	}
	if instr.Start != start {
		return fmt.Errorf("expected start time %q, got %q", start, instr.Start)
	}
	return nil
}

func theEditorShouldReceiveEndTime(end string) error {
	instr, err := lastApplied()
	if err != nil {
		return err
	}
	if instr.End != end {
		return fmt.Errorf("expected end time %q, got %q", end, instr.End)
	}
	return nil
}

func theApplyOutputShouldContain(expected string) error {
	a := getApplyContext()
	if !strings.Contains(a.output.String(), expected) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", expected, a.output.String())
	}
	return nil
}

func theApplyShouldFail() error {
	a := getApplyContext()
	if a.err == nil {
		return fmt.Errorf("expected an error but got none")
	}
	return nil
}

func theApplyErrorShouldMention(expected string) error {
	a := getApplyContext()
	if a.err == nil {
		return fmt.Errorf("expected an error but got none")
	}
	if !strings.Contains(a.err.Error(), expected) {
		return fmt.Errorf("expected error to mention %q, got: %v", expected, a.err)
	}
	return nil
}

func theEditorShouldNotHaveBeenCalled() error {
	a := getApplyContext()
	if len(a.editor.applied) != 0 {
		return fmt.Errorf("expected no editor calls, got %d", len(a.editor.applied))
	}
	return nil
}
