package video

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Timestamp represents a video timestamp in HH:MM:SS format
type Timestamp struct {
	Hours   int
	Minutes int
	Seconds int
}

// ZeroTimestamp is the canonical fallback for time expressions that match
// none of the recognized shapes
const ZeroTimestamp = "00:00:00"

// Time expression shapes accepted by Normalize, tried in priority order
var (
	fullRegex    = regexp.MustCompile(`^\d+:\d{2}:\d{2}$`)
	minutesRegex = regexp.MustCompile(`^(\d+):(\d{2})$`)
	bareRegex    = regexp.MustCompile(`^\d+$`)
)

// timestampRegex matches H:MM:SS format
var timestampRegex = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})$`)

// Normalize converts a human time expression to canonical HH:MM:SS form.
// H:MM:SS strings are returned unchanged, M:SS strings gain a zero hour
// part, and bare integers are read as total seconds. Anything else silently
// becomes "00:00:00".
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)

	switch {
	case fullRegex.MatchString(raw):
		return raw
	case minutesRegex.MatchString(raw):
		matches := minutesRegex.FindStringSubmatch(raw)
		minutes, err := strconv.Atoi(matches[1])
		if err != nil {
			return ZeroTimestamp
		}
		return fmt.Sprintf("00:%02d:%s", minutes, matches[2])
	case bareRegex.MatchString(raw):
		total, err := strconv.Atoi(raw)
		if err != nil {
			return ZeroTimestamp
		}
		return Timestamp{
			Hours:   total / 3600,
			Minutes: (total % 3600) / 60,
			Seconds: total % 60,
		}.String()
	default:
		return ZeroTimestamp
	}
}

// ToSeconds converts a colon-separated time expression to seconds. Three
// parts are read as H:M:S, two as M:S, one as bare seconds. The final part
// may carry a fractional component.
func ToSeconds(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid time expression %q: expected at most three colon-separated parts", s)
	}

	total := 0.0
	for _, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid time expression %q: %w", s, err)
		}
		if value < 0 {
			return 0, fmt.Errorf("invalid time expression %q: parts must not be negative", s)
		}
		total = total*60 + value
	}
	return total, nil
}

// ParseTimestamp parses a timestamp string in H:MM:SS format
func ParseTimestamp(s string) (Timestamp, error) {
	matches := timestampRegex.FindStringSubmatch(s)
	if matches == nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp format %q: expected H:MM:SS", s)
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])

	if minutes > 59 {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: minutes must be 0-59", s)
	}
	if seconds > 59 {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: seconds must be 0-59", s)
	}

	return Timestamp{
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
	}, nil
}

// String returns the timestamp in HH:MM:SS format
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// TotalSeconds returns the timestamp as total seconds
func (t Timestamp) TotalSeconds() int {
	return t.Hours*3600 + t.Minutes*60 + t.Seconds
}

// IsZero returns true if the timestamp is 00:00:00
func (t Timestamp) IsZero() bool {
	return t.Hours == 0 && t.Minutes == 0 && t.Seconds == 0
}

// Before returns true if t is before other
func (t Timestamp) Before(other Timestamp) bool {
	return t.TotalSeconds() < other.TotalSeconds()
}

// After returns true if t is after other
func (t Timestamp) After(other Timestamp) bool {
	return t.TotalSeconds() > other.TotalSeconds()
}
