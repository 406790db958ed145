//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"voicecut/cmd"

	"github.com/cucumber/godog"
)

// parseContext holds test state for parsing scenarios
type parseContext struct {
	targetFile string
	output     *bytes.Buffer
	err        error
}

// SharedParseContext is reset before each scenario via Before hook
var SharedParseContext *parseContext

func getParseContext() *parseContext {
	return SharedParseContext
}

func InitializeParseScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedParseContext = &parseContext{
			output: &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedParseContext = nil
		return c, nil
	})

	ctx.Step(`^the parse target file is "([^"]*)"$`, theParseTargetFileIs)
	ctx.Step(`^I parse the command "([^"]*)"$`, iParseTheCommand)
	ctx.Step(`^the parsed instruction should contain "([^"]*)"$`, theParsedInstructionShouldContain)
}

func theParseTargetFileIs(path string) error {
	p := getParseContext()
	p.targetFile = path
	return nil
}

func iParseTheCommand(command string) error {
	p := getParseContext()
	p.err = cmd.RunParseWithOutput(command, p.targetFile, p.output)
	if p.err != nil {
		return fmt.Errorf("unexpected error: %v", p.err)
	}
	return nil
}

func theParsedInstructionShouldContain(expected string) error {
	p := getParseContext()
	if !strings.Contains(p.output.String(), expected) {
		return fmt.Errorf("expected instruction output to contain %q, got:\n%s", expected, p.output.String())
	}
	return nil
}
