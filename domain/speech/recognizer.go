package speech

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no speech backend can run on this system
var ErrUnavailable = errors.New("speech recognition is not available")

// Recognizer defines the interface for capturing one spoken command.
// Speech is an optional collaborator: callers must fall back to typed
// input whenever Available or Listen fails.
type Recognizer interface {
	// Available reports whether capture and transcription can run
	Available(ctx context.Context) error

	// Listen records a single command and returns the recognized text
	Listen(ctx context.Context) (string, error)
}
