package edit

import (
	"regexp"
	"strconv"
	"strings"

	"voicecut/domain/video"
)

// DefaultSourceFile is used when neither the command nor the session names a file
const DefaultSourceFile = "default_video.mp4"

// Detector patterns. The detectors are not mutually exclusive, so Parse
// tries them in a fixed priority order and the first match wins.
var (
	trimPattern       = regexp.MustCompile(`(?i)\b(?:trim|cut)\b.*?\bfrom\s+(\d+(?::\d{1,2}){0,2}(?:\.\d+)?)\s+to\s+(\d+(?::\d{1,2}){0,2}(?:\.\d+)?)`)
	textIntentPattern = regexp.MustCompile(`(?i)\b(?:add|insert|place)\b.*?\btext\b`)
	quotedTextPattern = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)
	bareTextPattern   = regexp.MustCompile(`(?i)\btext\s+(?:saying\s+)?(.+?)(?:\s+(?:at|in)\b.*)?$`)
	positionPattern   = regexp.MustCompile(`(?i)\b(?:at|in)\s+(?:the\s+)?(center|top|bottom)\b`)
	transitionPattern = regexp.MustCompile(`(?i)\b(?:add|insert|apply)\s+(?:an?\s+)?([a-zA-Z]+)\s+transition\b`)
	speedPattern      = regexp.MustCompile(`(?i)\b(?:change|set|adjust)\s+(?:the\s+)?speed\s+(?:to|by)\s+(\d+(?:\.\d+)?)\s*x?\b`)
	cropPattern       = regexp.MustCompile(`(?i)\bcrop\b`)
	timeClausePattern = regexp.MustCompile(`(?i)\b(?:at|from)\s+(?:time(?:stamp)?\s+)?(\d+(?::\d{1,2}){0,2})(?:\s*seconds?)?\b`)
	filenamePattern   = regexp.MustCompile(`(?i)\b(?:file|video)\s+(?:called\s+|named\s+)?(\S+\.(?:mp4|mov|avi|mkv))\b`)
)

// Parse maps free-form command text onto a structured edit instruction.
// Commands matching no detector yield an unknown instruction that preserves
// the original text verbatim. Parse never fails; dispatchers decide what an
// unknown instruction means.
func Parse(commandText, currentFile string) *Instruction {
	source := extractSourceFile(commandText, currentFile)

	if instr := parseTrim(commandText, source); instr != nil {
		return instr
	}
	if instr := parseAddText(commandText, source); instr != nil {
		return instr
	}
	if instr := parseTransition(commandText, source); instr != nil {
		return instr
	}
	if instr := parseSpeed(commandText, source); instr != nil {
		return instr
	}
	if instr := parseCrop(commandText, source); instr != nil {
		return instr
	}

	return &Instruction{
		Action:     ActionUnknown,
		SourceFile: source,
		Err:        ErrUnrecognizedCommand.Error(),
		Original:   commandText,
	}
}

// extractSourceFile returns a filename mentioned after "file" or "video" in
// the command, or the session's current file, or the default.
func extractSourceFile(text, currentFile string) string {
	if matches := filenamePattern.FindStringSubmatch(text); matches != nil {
		return matches[1]
	}
	if currentFile == "" {
		return DefaultSourceFile
	}
	return currentFile
}

func parseTrim(text, source string) *Instruction {
	matches := trimPattern.FindStringSubmatch(text)
	if matches == nil {
		return nil
	}

	instr := &Instruction{
		Action:     ActionTrim,
		SourceFile: source,
		Start:      video.Normalize(matches[1]),
		End:        video.Normalize(matches[2]),
	}
	instr.deriveOutput()
	return instr
}

func parseAddText(text, source string) *Instruction {
	if !textIntentPattern.MatchString(text) {
		return nil
	}

	overlay := extractOverlayText(text)
	if overlay == "" {
		return nil
	}

	instr := &Instruction{
		Action:     ActionAddText,
		SourceFile: source,
		Text:       overlay,
		Position:   extractPosition(text),
		Time:       extractTimeClause(text),
	}
	instr.deriveOutput()
	return instr
}

func parseTransition(text, source string) *Instruction {
	matches := transitionPattern.FindStringSubmatch(text)
	if matches == nil {
		return nil
	}

	instr := &Instruction{
		Action:     ActionAddTransition,
		SourceFile: source,
		Transition: strings.ToLower(matches[1]),
		Time:       extractTimeClause(text),
	}
	instr.deriveOutput()
	return instr
}

func parseSpeed(text, source string) *Instruction {
	matches := speedPattern.FindStringSubmatch(text)
	if matches == nil {
		return nil
	}

	factor, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return nil
	}

	instr := &Instruction{
		Action:     ActionAdjustSpeed,
		SourceFile: source,
		Speed:      factor,
	}
	instr.deriveOutput()
	return instr
}

func parseCrop(text, source string) *Instruction {
	if !cropPattern.MatchString(text) {
		return nil
	}

	instr := &Instruction{
		Action:     ActionCrop,
		SourceFile: source,
	}
	instr.deriveOutput()
	return instr
}

// extractOverlayText prefers a quoted payload, then falls back to the words
// after "text" up to a trailing position or time clause.
func extractOverlayText(text string) string {
	if matches := quotedTextPattern.FindStringSubmatch(text); matches != nil {
		if matches[1] != "" {
			return matches[1]
		}
		return matches[2]
	}
	if matches := bareTextPattern.FindStringSubmatch(text); matches != nil {
		return strings.TrimSpace(matches[1])
	}
	return ""
}

func extractPosition(text string) string {
	if matches := positionPattern.FindStringSubmatch(text); matches != nil {
		return strings.ToLower(matches[1])
	}
	return PositionCenter
}

func extractTimeClause(text string) string {
	if matches := timeClausePattern.FindStringSubmatch(text); matches != nil {
		return video.Normalize(matches[1])
	}
	return video.ZeroTimestamp
}
