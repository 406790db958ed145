//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"voicecut/cmd"
	"voicecut/domain/speech"

	"github.com/cucumber/godog"
)

// scriptedPrompter feeds queued answers to the session loop
type scriptedPrompter struct {
	selections []string
	inputs     []string
}

func (p *scriptedPrompter) Input(message string, defaultValue string) (string, error) {
	if len(p.inputs) == 0 {
		return "", fmt.Errorf("no more input responses available for message: %s", message)
	}
	response := p.inputs[0]
	p.inputs = p.inputs[1:]
	return response, nil
}

func (p *scriptedPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	return defaultValue, nil
}

func (p *scriptedPrompter) Select(message string, options []string) (string, error) {
	if len(p.selections) == 0 {
		return "", fmt.Errorf("no more selections available for message: %s", message)
	}
	response := p.selections[0]
	p.selections = p.selections[1:]
	return response, nil
}

// mockVideoLister returns a fixed library listing
type mockVideoLister struct {
	videos  []string
	listErr error
}

func (m *mockVideoLister) ListVideos(dir string) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.videos, nil
}

// mockRecognizer scripts the speech recognition outcome
type mockRecognizer struct {
	text      string
	listenErr error
	availErr  error
}

func (m *mockRecognizer) Available(ctx context.Context) error {
	return m.availErr
}

func (m *mockRecognizer) Listen(ctx context.Context) (string, error) {
	if m.listenErr != nil {
		return "", m.listenErr
	}
	return m.text, nil
}

// sessionContext holds test state for session scenarios
type sessionContext struct {
	prompter   *scriptedPrompter
	lister     *mockVideoLister
	editor     *mockEditor
	recognizer speech.Recognizer
	output     *bytes.Buffer
	err        error
}

// SharedSessionContext is reset before each scenario via Before hook
var SharedSessionContext *sessionContext

func getSessionContext() *sessionContext {
	return SharedSessionContext
}

func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedSessionContext = &sessionContext{
			prompter: &scriptedPrompter{},
			lister:   &mockVideoLister{},
			editor:   &mockEditor{},
			output:   &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedSessionContext = nil
		return c, nil
	})

	ctx.Step(`^a video library containing:$`, aVideoLibraryContaining)
	ctx.Step(`^an empty video library$`, anEmptyVideoLibrary)
	ctx.Step(`^the prompt selections:$`, thePromptSelections)
	ctx.Step(`^the typed commands:$`, theTypedCommands)
	ctx.Step(`^a recognizer that hears "([^"]*)"$`, aRecognizerThatHears)
	ctx.Step(`^a recognizer that fails with "([^"]*)"$`, aRecognizerThatFailsWith)
	ctx.Step(`^I run the session$`, iRunTheSession)
	ctx.Step(`^the session output should contain "([^"]*)"$`, theSessionOutputShouldContain)
}

func tableColumn(table *godog.Table) []string {
	// Single-column tables carry data in every row, no header
	values := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		values = append(values, row.Cells[0].Value)
	}
	return values
}

func aVideoLibraryContaining(table *godog.Table) error {
	s := getSessionContext()
	s.lister.videos = tableColumn(table)
	return nil
}

func anEmptyVideoLibrary() error {
	s := getSessionContext()
	s.lister.videos = nil
	return nil
}

func thePromptSelections(table *godog.Table) error {
	s := getSessionContext()
	s.prompter.selections = tableColumn(table)
	return nil
}

func theTypedCommands(table *godog.Table) error {
	s := getSessionContext()
	s.prompter.inputs = tableColumn(table)
	return nil
}

func aRecognizerThatHears(text string) error {
	s := getSessionContext()
	s.recognizer = &mockRecognizer{text: text}
	return nil
}

func aRecognizerThatFailsWith(message string) error {
	s := getSessionContext()
	s.recognizer = &mockRecognizer{listenErr: errors.New(message)}
	return nil
}

func iRunTheSession() error {
	s := getSessionContext()
	s.err = cmd.RunSessionWithDependencies(
		context.Background(),
		s.prompter,
		s.recognizer,
		s.editor,
		s.lister,
		"library",
		s.output,
	)
	if s.err != nil {
		return fmt.Errorf("unexpected error: %v", s.err)
	}
	return nil
}

func theSessionOutputShouldContain(expected string) error {
	s := getSessionContext()
	if !strings.Contains(s.output.String(), expected) {
		return fmt.Errorf("expected session output to contain %q, got:\n%s", expected, s.output.String())
	}
	return nil
}
