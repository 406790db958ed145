package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	appedit "voicecut/application/edit"
	"voicecut/domain/edit"
	"voicecut/domain/session"
	"voicecut/domain/speech"
	"voicecut/domain/video"
	"voicecut/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

// Menu entries for the interactive session
const (
	menuEdit       = "Issue an edit command"
	menuSelectFile = "Select a video file"
	menuHistory    = "Show edit history"
	menuExit       = "Exit"
)

var (
	sessionSimulate bool
	sessionVoice    bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive editing session",
	Long: `Start an interactive session that accepts natural language edit
commands, spoken or typed, and applies them one after another. Each edit
writes a new file and the session keeps editing the latest output.

Example:
  voicecut session --voice`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.Flags().BoolVar(&sessionSimulate, "simulate", false, "Print the resulting operations instead of editing files")
	sessionCmd.Flags().BoolVar(&sessionVoice, "voice", false, "Capture commands by voice instead of typing")
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	ctx := cmd.Context()

	editor := newEditor(ctx, cfg, sessionSimulate, os.Stdout)

	var recognizer speech.Recognizer
	if sessionVoice || cfg.Speech.Enabled {
		recognizer = newRecognizer(cfg)
	}

	return RunSessionWithDependencies(
		ctx,
		DefaultPrompter,
		recognizer,
		editor,
		filesystem.NewChecker(),
		cfg.Paths.LibraryDirectory,
		os.Stdout,
	)
}

// RunSessionWithDependencies runs the session loop with injected dependencies (for testing)
func RunSessionWithDependencies(
	ctx context.Context,
	prompter Prompter,
	recognizer speech.Recognizer,
	editor edit.Editor,
	lister video.VideoLister,
	libraryDir string,
	output OutputWriter,
) error {
	service := appedit.NewService(editor)
	sess := session.NewSession("")

	printBanner(output)
	fmt.Fprintf(output, "Editing backend: %s\n", editor.Name())
	printExamples(output)

	for {
		fmt.Fprintln(output, "\n"+strings.Repeat("-", 50))
		fmt.Fprintf(output, "Currently editing: %s\n", sess.CurrentFile())

		choice, err := prompter.Select("What would you like to do?", []string{menuEdit, menuSelectFile, menuHistory, menuExit})
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}

		switch choice {
		case menuEdit:
			if err := handleEdit(ctx, service, sess, prompter, recognizer, output); err != nil {
				return err
			}
		case menuSelectFile:
			if err := handleSelectFile(sess, prompter, lister, libraryDir, output); err != nil {
				return err
			}
		case menuHistory:
			printHistory(sess, output)
		case menuExit:
			fmt.Fprintln(output, "Thank you for trying the video editing prototype!")
			return nil
		}
	}
}

func handleEdit(
	ctx context.Context,
	service *appedit.Service,
	sess *session.Session,
	prompter Prompter,
	recognizer speech.Recognizer,
	output io.Writer,
) error {
	command, err := readCommand(ctx, prompter, recognizer, output)
	if err != nil {
		return err
	}
	if command == "" {
		fmt.Fprintln(output, "No command detected. Please try again.")
		return nil
	}

	result, err := service.Apply(ctx, sess, command)
	if err != nil {
		// Failed edits leave the session unchanged, keep the loop going
		fmt.Fprintf(output, "Error: %v\n", err)
		if errors.Is(err, edit.ErrUnrecognizedCommand) {
			printExamples(output)
		}
		return nil
	}

	fmt.Fprintln(output, result.Message)
	return nil
}

// readCommand captures a command by voice when a recognizer is configured,
// falling back to typed input when recognition is unavailable or fails
func readCommand(ctx context.Context, prompter Prompter, recognizer speech.Recognizer, output io.Writer) (string, error) {
	if recognizer == nil {
		text, err := prompter.Input("Enter your command (as if speaking):", "")
		if err != nil {
			return "", fmt.Errorf("prompt cancelled")
		}
		return strings.TrimSpace(text), nil
	}

	if err := recognizer.Available(ctx); err != nil {
		fmt.Fprintf(output, "Speech recognition unavailable: %v\n", err)
		fmt.Fprintln(output, "Falling back to text input...")
	} else {
		fmt.Fprintln(output, "Listening for your command...")
		text, err := recognizer.Listen(ctx)
		if err == nil {
			fmt.Fprintf(output, "Recognized command: %s\n", text)
			return strings.TrimSpace(text), nil
		}
		fmt.Fprintf(output, "Speech recognition error: %v\n", err)
		fmt.Fprintln(output, "Falling back to text input...")
	}

	text, err := prompter.Input("Enter your command:", "")
	if err != nil {
		return "", fmt.Errorf("prompt cancelled")
	}
	return strings.TrimSpace(text), nil
}

func handleSelectFile(
	sess *session.Session,
	prompter Prompter,
	lister video.VideoLister,
	libraryDir string,
	output io.Writer,
) error {
	videos, err := lister.ListVideos(libraryDir)
	if err != nil {
		fmt.Fprintf(output, "Could not list %s: %v\n", libraryDir, err)
		return nil
	}
	if len(videos) == 0 {
		fmt.Fprintf(output, "No video files found in %s\n", libraryDir)
		return nil
	}

	choice, err := prompter.Select("Select a video file:", videos)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}

	sess.SelectFile(choice)
	fmt.Fprintf(output, "Now editing: %s\n", choice)
	return nil
}

func printHistory(sess *session.Session, output io.Writer) {
	history := sess.History()
	if len(history) == 0 {
		fmt.Fprintln(output, "No edits applied yet.")
		return
	}

	fmt.Fprintln(output, "Edit history:")
	for i, entry := range history {
		fmt.Fprintf(output, "%2d. %-16s %s -> %s (%s)\n",
			i+1, entry.Action, entry.InputFile, entry.OutputFile, entry.At.Format("15:04:05"))
	}
}

func printBanner(output io.Writer) {
	fmt.Fprintln(output, strings.Repeat("=", 50))
	fmt.Fprintln(output, "VOICE-CONTROLLED VIDEO EDITING PROTOTYPE")
	fmt.Fprintln(output, strings.Repeat("=", 50))
}

func printExamples(output io.Writer) {
	fmt.Fprintln(output, "\nExample commands you can try:")
	for _, example := range []string{
		"Trim the file vacation.mp4 from 1:30 to 2:45",
		"Add text saying Welcome at the center at timestamp 15 seconds",
		"Add a fade transition at the beginning of the video",
		"Change the speed to 1.5x",
		"Crop the video",
	} {
		fmt.Fprintf(output, "- '%s'\n", example)
	}
}
