package cmd

import (
	"context"
	"fmt"
	"os"

	appedit "voicecut/application/edit"
	"voicecut/domain/edit"
	"voicecut/domain/session"

	"github.com/spf13/cobra"
)

var (
	applyCommandText string
	applyFile        string
	applySimulate    bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a single natural language edit command",
	Long: `Apply one natural language edit command to a video file and exit.

Example:
  voicecut apply --command "Trim the video from 00:00:10 to 00:00:30" --file clip.mp4
  voicecut apply --command 'Add text "Welcome" at the top at 00:00:05' --simulate`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyCommandText, "command", "c", "", "Natural language edit command (required)")
	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "Video file to edit (defaults to "+edit.DefaultSourceFile+")")
	applyCmd.Flags().BoolVar(&applySimulate, "simulate", false, "Print the resulting operations instead of editing files")
	applyCmd.MarkFlagRequired("command")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	ctx := cmd.Context()

	editor := newEditor(ctx, cfg, applySimulate, os.Stdout)

	return RunApplyWithDependencies(ctx, editor, applyFile, applyCommandText, os.Stdout)
}

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

// RunApplyWithDependencies runs the apply command with injected dependencies (for testing)
func RunApplyWithDependencies(
	ctx context.Context,
	editor edit.Editor,
	file string,
	command string,
	output OutputWriter,
) error {
	service := appedit.NewService(editor)
	sess := session.NewSession(file)

	result, err := service.Apply(ctx, sess, command)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, result.Message)
	fmt.Fprintf(output, "Current file is now: %s\n", sess.CurrentFile())
	return nil
}
