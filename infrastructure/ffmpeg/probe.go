package ffmpeg

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// duration reads the source duration in seconds using ffprobe
func (e *Editor) duration(ctx context.Context, path string) (float64, error) {
	out, err := e.runner.Output(ctx, e.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	raw := strings.TrimSpace(string(out))
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe returned unparsable duration %q: %w", raw, err)
	}
	return seconds, nil
}
