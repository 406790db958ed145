package edit

import "context"

// Result describes a completed or simulated edit
type Result struct {
	Message    string
	OutputPath string
}

// Editor defines the interface for applying edit instructions. Exactly one
// implementation is selected at startup: the simulator, which fabricates
// results without touching files, or a delegated backend that performs the
// edit with an external tool.
type Editor interface {
	// Name identifies the active implementation for console output
	Name() string

	// Apply performs or simulates the instruction and reports the result
	Apply(ctx context.Context, instr *Instruction) (*Result, error)
}
