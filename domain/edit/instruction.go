package edit

import (
	"fmt"
	"path/filepath"
)

// Action identifies which edit operation an instruction requests
type Action string

// Actions the parser can produce, one per detector plus the unknown fallback
const (
	ActionTrim          Action = "trim"
	ActionAddText       Action = "add_text"
	ActionAddTransition Action = "add_transition"
	ActionAdjustSpeed   Action = "adjust_speed"
	ActionCrop          Action = "crop"
	ActionUnknown       Action = "unknown"
)

// Valid returns true if a is one of the enumerated actions
func (a Action) Valid() bool {
	switch a {
	case ActionTrim, ActionAddText, ActionAddTransition, ActionAdjustSpeed, ActionCrop, ActionUnknown:
		return true
	}
	return false
}

// Text overlay positions recognized by the parser
const (
	PositionCenter = "center"
	PositionTop    = "top"
	PositionBottom = "bottom"
)

// Instruction describes one requested video edit. Action selects which of
// the optional fields are meaningful; consumers ignore the rest.
type Instruction struct {
	Action     Action `yaml:"action"`
	SourceFile string `yaml:"source_file"`
	OutputFile string `yaml:"output_file,omitempty"`

	// trim
	Start string `yaml:"start_time,omitempty"`
	End   string `yaml:"end_time,omitempty"`

	// add_text
	Text     string `yaml:"text,omitempty"`
	Position string `yaml:"position,omitempty"`

	// add_transition
	Transition string `yaml:"transition_type,omitempty"`

	// add_text and add_transition
	Time string `yaml:"time,omitempty"`

	// adjust_speed
	Speed float64 `yaml:"speed_factor,omitempty"`

	// unknown
	Err      string `yaml:"error,omitempty"`
	Original string `yaml:"original_command,omitempty"`
}

// Validate checks that the instruction carries the fields its action requires
func (i *Instruction) Validate() error {
	if !i.Action.Valid() {
		return fmt.Errorf("%w: unrecognized action %q", ErrInvalidInstruction, string(i.Action))
	}
	if i.SourceFile == "" {
		return fmt.Errorf("%w: source file is required", ErrInvalidInstruction)
	}

	switch i.Action {
	case ActionTrim:
		if i.Start == "" || i.End == "" {
			return fmt.Errorf("%w: trim requires start and end times", ErrInvalidInstruction)
		}
	case ActionAddText:
		if i.Text == "" {
			return fmt.Errorf("%w: add_text requires overlay text", ErrInvalidInstruction)
		}
	case ActionAddTransition:
		if i.Transition == "" {
			return fmt.Errorf("%w: add_transition requires a transition type", ErrInvalidInstruction)
		}
	case ActionAdjustSpeed:
		if i.Speed <= 0 {
			return fmt.Errorf("%w: speed factor must be positive", ErrInvalidInstruction)
		}
	}
	return nil
}

// deriveOutput fills OutputFile from the action and its fields. The name is
// a pure function of the instruction.
func (i *Instruction) deriveOutput() {
	base := filepath.Base(i.SourceFile)

	switch i.Action {
	case ActionTrim:
		i.OutputFile = "trimmed_" + base
	case ActionAddText:
		i.OutputFile = "text_" + base
	case ActionAddTransition:
		i.OutputFile = i.Transition + "_" + base
	case ActionAdjustSpeed:
		i.OutputFile = fmt.Sprintf("speed%gx_%s", i.Speed, base)
	case ActionCrop:
		i.OutputFile = "cropped_" + base
	}
}
