package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// maxRemoteSize bounds in-memory downloads of remote lessons.
const maxRemoteSize = 512 << 20

// Resolver turns catalog locators into readable audio.
//
// Accepted locators:
//   - http(s) URLs, downloaded fully into memory
//   - file:// URLs
//   - web-style root paths ("/audio/x.mp3"), looked up under Root first
//   - plain relative or absolute file paths
type Resolver struct {
	Root   string
	Client *http.Client
	Logger *slog.Logger
}

// NewResolver creates a resolver rooted at root.
func NewResolver(root string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{Root: root, Client: http.DefaultClient, Logger: logger}
}

// IsRemote reports whether src must be fetched over the network.
func IsRemote(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// LocalPath maps src to a file path. It reports false for remote sources.
func (r *Resolver) LocalPath(src string) (string, bool) {
	if src == "" || IsRemote(src) {
		return "", false
	}
	if strings.HasPrefix(src, "file://") {
		u, err := url.Parse(src)
		if err != nil {
			return "", false
		}
		return u.Path, true
	}
	if r.Root == "" {
		return src, true
	}
	if filepath.IsAbs(src) {
		joined := filepath.Join(r.Root, src)
		if _, err := os.Stat(joined); err == nil {
			return joined, true
		}
		return src, true
	}
	return filepath.Join(r.Root, src), true
}

// Open returns the audio bytes for src and a name whose extension identifies
// the format.
func (r *Resolver) Open(ctx context.Context, src string) (io.ReadSeekCloser, string, error) {
	if IsRemote(src) {
		return r.fetch(ctx, src)
	}
	p, ok := r.LocalPath(src)
	if !ok {
		return nil, "", fmt.Errorf("resolve %q: not a local path", src)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, "", err
	}
	return f, p, nil
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func (r *Resolver) fetch(ctx context.Context, src string) (io.ReadSeekCloser, string, error) {
	u, err := url.Parse(src)
	if err != nil {
		return nil, "", fmt.Errorf("parse %q: %w", src, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, "", err
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch %s: %s", src, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", src, err)
	}
	if len(data) > maxRemoteSize {
		return nil, "", fmt.Errorf("fetch %s: larger than %s", src, humanize.Bytes(maxRemoteSize))
	}

	r.Logger.Debug("fetched remote audio",
		slog.String("src", src),
		slog.String("size", humanize.Bytes(uint64(len(data)))))

	return memFile{bytes.NewReader(data)}, u.Path, nil
}
