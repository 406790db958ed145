package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"voicecut/domain/video"
)

// Checker implements video.FileChecker using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if the file exists
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListVideos returns the video files directly under dir, sorted by name
func (c *Checker) ListVideos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if video.IsVideoFile(entry.Name()) {
			videos = append(videos, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(videos)

	return videos, nil
}

// Ensure Checker implements video.FileChecker
var _ video.FileChecker = (*Checker)(nil)

// Ensure Checker implements video.VideoLister
var _ video.VideoLister = (*Checker)(nil)
