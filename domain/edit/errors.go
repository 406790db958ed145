package edit

import "errors"

var (
	// ErrUnrecognizedCommand is returned when no detector matches the command text
	ErrUnrecognizedCommand = errors.New("could not determine a specific edit command")

	// ErrInvalidInstruction is returned when an instruction is missing fields its action requires
	ErrInvalidInstruction = errors.New("invalid edit instruction")

	// ErrUnsupportedAction is returned when the active editor cannot perform the action
	ErrUnsupportedAction = errors.New("action not supported by the active editor")
)
