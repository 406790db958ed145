package cmd

import (
	"fmt"
	"os"
	"strings"

	"voicecut/domain/edit"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseFile string

var parseCmd = &cobra.Command{
	Use:   "parse [command...]",
	Short: "Parse a natural language command without editing",
	Long: `Parse a natural language command and print the resulting edit
instruction as YAML, without touching any video file. Useful for checking
how a phrasing will be interpreted.

Example:
  voicecut parse Trim the video from 00:00:10 to 00:00:30`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Video file the command applies to")
}

func runParse(cmd *cobra.Command, args []string) error {
	return RunParseWithOutput(strings.Join(args, " "), parseFile, os.Stdout)
}

// RunParseWithOutput parses a command and writes the instruction as YAML (for testing)
func RunParseWithOutput(command string, currentFile string, output OutputWriter) error {
	instruction := edit.Parse(command, currentFile)

	data, err := yaml.Marshal(instruction)
	if err != nil {
		return fmt.Errorf("failed to serialize instruction: %w", err)
	}

	fmt.Fprintf(output, "%s", data)
	return nil
}
