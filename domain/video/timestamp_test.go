package video

import (
	"strconv"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "full form unchanged",
			input: "00:01:30",
			want:  "00:01:30",
		},
		{
			name:  "single digit hours unchanged",
			input: "1:30:45",
			want:  "1:30:45",
		},
		{
			name:  "minutes and seconds gain hour part",
			input: "1:30",
			want:  "00:01:30",
		},
		{
			name:  "two digit minutes",
			input: "12:05",
			want:  "00:12:05",
		},
		{
			name:  "bare seconds",
			input: "90",
			want:  "00:01:30",
		},
		{
			name:  "bare zero",
			input: "0",
			want:  "00:00:00",
		},
		{
			name:  "bare seconds crossing an hour",
			input: "3661",
			want:  "01:01:01",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  90 ",
			want:  "00:01:30",
		},
		{
			name:  "fractional seconds fall back",
			input: "90.5",
			want:  "00:00:00",
		},
		{
			name:  "single digit seconds part falls back",
			input: "1:3",
			want:  "00:00:00",
		},
		{
			name:  "words fall back",
			input: "the beginning",
			want:  "00:00:00",
		},
		{
			name:  "empty string falls back",
			input: "",
			want:  "00:00:00",
		},
		{
			name:  "negative falls back",
			input: "-90",
			want:  "00:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_BareSecondsRoundTrip(t *testing.T) {
	for _, seconds := range []int{0, 1, 59, 60, 61, 90, 3599, 3600, 3661, 5445, 86399} {
		raw := strconv.Itoa(seconds)
		got, err := ToSeconds(Normalize(raw))
		if err != nil {
			t.Fatalf("ToSeconds(Normalize(%q)) unexpected error: %v", raw, err)
		}
		if got != float64(seconds) {
			t.Errorf("ToSeconds(Normalize(%q)) = %v, want %d", raw, got, seconds)
		}
	}
}

func TestToSeconds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{
			name:  "full form",
			input: "00:01:30",
			want:  90,
		},
		{
			name:  "hours count",
			input: "01:02:03",
			want:  3723,
		},
		{
			name:  "two parts read as minutes and seconds",
			input: "1:30",
			want:  90,
		},
		{
			name:  "bare seconds",
			input: "90",
			want:  90,
		},
		{
			name:  "fractional final part",
			input: "1:30.5",
			want:  90.5,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "words",
			input:   "soon",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "1:2:3:4",
			wantErr: true,
		},
		{
			name:    "empty middle part",
			input:   "1::30",
			wantErr: true,
		},
		{
			name:    "negative part",
			input:   "1:-30",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToSeconds(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ToSeconds(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("ToSeconds(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("ToSeconds(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Timestamp
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid timestamp",
			input: "01:30:45",
			want:  Timestamp{Hours: 1, Minutes: 30, Seconds: 45},
		},
		{
			name:  "all zeros",
			input: "00:00:00",
			want:  Timestamp{Hours: 0, Minutes: 0, Seconds: 0},
		},
		{
			name:  "max valid minutes/seconds",
			input: "23:59:59",
			want:  Timestamp{Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name:  "large hours value",
			input: "99:00:00",
			want:  Timestamp{Hours: 99, Minutes: 0, Seconds: 0},
		},
		{
			name:  "single digit hours",
			input: "1:30:45",
			want:  Timestamp{Hours: 1, Minutes: 30, Seconds: 45},
		},
		{
			name:    "missing leading zero in minutes",
			input:   "01:3:45",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "missing leading zero in seconds",
			input:   "01:30:5",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "wrong separator - dash",
			input:   "01-30-45",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "too few parts",
			input:   "01:30",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "minutes too high",
			input:   "01:60:00",
			wantErr: true,
			errMsg:  "minutes must be 0-59",
		},
		{
			name:    "seconds too high",
			input:   "01:30:60",
			wantErr: true,
			errMsg:  "seconds must be 0-59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimestamp(%q) expected error, got nil", tt.input)
					return
				}
				if tt.errMsg != "" && !contains(err.Error(), tt.errMsg) {
					t.Errorf("ParseTimestamp(%q) error = %v, want error containing %q", tt.input, err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseTimestamp(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimestamp_String(t *testing.T) {
	tests := []struct {
		timestamp Timestamp
		want      string
	}{
		{Timestamp{0, 0, 0}, "00:00:00"},
		{Timestamp{1, 2, 3}, "01:02:03"},
		{Timestamp{12, 34, 56}, "12:34:56"},
		{Timestamp{99, 59, 59}, "99:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.timestamp.String(); got != tt.want {
				t.Errorf("Timestamp.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimestamp_TotalSeconds(t *testing.T) {
	tests := []struct {
		timestamp Timestamp
		want      int
	}{
		{Timestamp{0, 0, 0}, 0},
		{Timestamp{0, 0, 1}, 1},
		{Timestamp{0, 1, 0}, 60},
		{Timestamp{1, 0, 0}, 3600},
		{Timestamp{1, 30, 45}, 5445},
	}

	for _, tt := range tests {
		t.Run(tt.timestamp.String(), func(t *testing.T) {
			if got := tt.timestamp.TotalSeconds(); got != tt.want {
				t.Errorf("Timestamp.TotalSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimestamp_IsZero(t *testing.T) {
	zero := Timestamp{Hours: 0, Minutes: 0, Seconds: 0}
	if !zero.IsZero() {
		t.Error("expected zero timestamp to be zero")
	}
	nonzero := Timestamp{Hours: 0, Minutes: 0, Seconds: 1}
	if nonzero.IsZero() {
		t.Error("expected non-zero timestamp to not be zero")
	}
}

func TestTimestamp_Before(t *testing.T) {
	earlier := Timestamp{Hours: 0, Minutes: 30, Seconds: 0}
	later := Timestamp{Hours: 1, Minutes: 0, Seconds: 0}

	if !earlier.Before(later) {
		t.Error("expected earlier to be before later")
	}
	if later.Before(earlier) {
		t.Error("expected later to not be before earlier")
	}
	if earlier.Before(earlier) {
		t.Error("expected timestamp to not be before itself")
	}
}

func TestTimestamp_After(t *testing.T) {
	earlier := Timestamp{Hours: 0, Minutes: 30, Seconds: 0}
	later := Timestamp{Hours: 1, Minutes: 0, Seconds: 0}

	if !later.After(earlier) {
		t.Error("expected later to be after earlier")
	}
	if earlier.After(later) {
		t.Error("expected earlier to not be after later")
	}
	if later.After(later) {
		t.Error("expected timestamp to not be after itself")
	}
}

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"clip.mp4", true},
		{"clip.MOV", true},
		{"clip.avi", true},
		{"clip.mkv", true},
		{"notes.txt", false},
		{"archive.mp3", false},
		{"clip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVideoFile(tt.name); got != tt.want {
				t.Errorf("IsVideoFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func contains(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
