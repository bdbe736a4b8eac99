package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type fileEpisode struct {
	ID          string  `koanf:"id"`
	Chapter     string  `koanf:"chapter"`
	Title       string  `koanf:"title"`
	Description string  `koanf:"description"`
	AudioSrc    string  `koanf:"audio_src"`
	CoverArt    string  `koanf:"cover_art"`
	Duration    float64 `koanf:"duration"`
}

type fileCatalog struct {
	Episodes []fileEpisode `koanf:"episodes"`
}

// Load reads a catalog from a TOML file of [[episodes]] tables.
func Load(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var fc fileCatalog
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	episodes := make([]Episode, len(fc.Episodes))
	for i, fe := range fc.Episodes {
		episodes[i] = Episode(fe)
	}
	return New(episodes...)
}
