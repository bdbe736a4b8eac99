package media

import (
	"os"
	"path/filepath"
)

// coverNames lists common cover art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// CoverPath returns a local image for a lesson: coverArt when it resolves
// to an existing file, else a conventional cover file next to the audio.
// It returns "" when nothing is found.
func (r *Resolver) CoverPath(coverArt, audioSrc string) string {
	if p, ok := r.LocalPath(coverArt); ok {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	audio, ok := r.LocalPath(audioSrc)
	if !ok {
		return ""
	}
	dir := filepath.Dir(audio)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
