package video

import (
	"path/filepath"
	"strings"
)

// VideoExtensions lists the file extensions recognized as video files
var VideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv"}

// IsVideoFile returns true if the filename carries a recognized video extension
func IsVideoFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range VideoExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// FileChecker defines the interface for checking file existence
type FileChecker interface {
	Exists(path string) bool
}

// VideoLister defines the interface for listing video files in a directory
type VideoLister interface {
	ListVideos(dir string) ([]string, error)
}
