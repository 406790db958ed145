package session

import (
	"time"

	"voicecut/domain/edit"
)

// HistoryEntry records one completed edit. Entries are immutable once
// appended and kept in append order.
type HistoryEntry struct {
	InputFile  string
	OutputFile string
	Action     edit.Action
	At         time.Time
}

// Session holds the state of one editing run: the file commands apply to
// and the log of past edits. It is owned by a single interactive loop and
// is not safe for concurrent use.
type Session struct {
	currentFile string
	history     []HistoryEntry
}

// NewSession creates a session pointing at initialFile, or the default
// source file when initialFile is empty.
func NewSession(initialFile string) *Session {
	if initialFile == "" {
		initialFile = edit.DefaultSourceFile
	}
	return &Session{currentFile: initialFile}
}

// CurrentFile returns the file subsequent commands apply to
func (s *Session) CurrentFile() string {
	return s.currentFile
}

// SelectFile points the session at a different file without recording history
func (s *Session) SelectFile(path string) {
	if path == "" {
		return
	}
	s.currentFile = path
}

// RecordEdit appends a history entry and, when the edit produced an output,
// advances the current file to it.
func (s *Session) RecordEdit(input, output string, action edit.Action) {
	s.history = append(s.history, HistoryEntry{
		InputFile:  input,
		OutputFile: output,
		Action:     action,
		At:         time.Now(),
	})
	if output != "" {
		s.currentFile = output
	}
}

// History returns a copy of the recorded edits in append order
func (s *Session) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}
