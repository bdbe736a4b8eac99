package catalog

import (
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// Enrich returns a catalog where empty titles, chapters and descriptions are
// filled from the audio file's embedded tags. resolve maps a locator to a
// local file path and reports false for sources that are not local files.
// Unreadable files are left untouched.
func Enrich(c *Catalog, resolve func(src string) (string, bool)) *Catalog {
	episodes := c.Episodes()
	changed := false
	for i, ep := range episodes {
		if ep.Title != "" && ep.Chapter != "" && ep.Description != "" {
			continue
		}
		path, ok := resolve(ep.AudioSrc)
		if !ok {
			continue
		}
		meta, err := readTags(path)
		if err != nil {
			continue
		}
		if fillFromTags(&episodes[i], meta) {
			changed = true
		}
	}
	if !changed {
		return c
	}
	enriched, err := New(episodes...)
	if err != nil {
		return c
	}
	return enriched
}

func readTags(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tag.ReadFrom(f)
}

func fillFromTags(ep *Episode, meta tag.Metadata) bool {
	changed := false
	if ep.Title == "" {
		if title := strings.TrimSpace(meta.Title()); title != "" {
			ep.Title = title
			changed = true
		}
	}
	if ep.Chapter == "" {
		if album := strings.TrimSpace(meta.Album()); album != "" {
			ep.Chapter = album
			changed = true
		} else if n, _ := meta.Track(); n > 0 {
			ep.Chapter = "Chapter " + strconv.Itoa(n)
			changed = true
		}
	}
	if ep.Description == "" {
		if comment := strings.TrimSpace(meta.Comment()); comment != "" {
			ep.Description = comment
			changed = true
		}
	}
	return changed
}
