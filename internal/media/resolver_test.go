package media

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/a.mp3"))
	assert.True(t, IsRemote("HTTP://example.com/a.mp3"))
	assert.False(t, IsRemote("/audio/a.mp3"))
	assert.False(t, IsRemote("file:///tmp/a.mp3"))
}

func TestResolver_LocalPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "audio"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "audio", "ch1.mp3"), []byte("x"), 0o600))

	r := NewResolver(root, nil)

	tests := []struct {
		name   string
		src    string
		want   string
		wantOK bool
	}{
		{"web root path under root", "/audio/ch1.mp3", filepath.Join(root, "audio", "ch1.mp3"), true},
		{"absolute path outside root", "/nonexistent/ch9.mp3", "/nonexistent/ch9.mp3", true},
		{"relative path", "audio/ch2.mp3", filepath.Join(root, "audio", "ch2.mp3"), true},
		{"file url", "file:///srv/lessons/ch3.mp3", "/srv/lessons/ch3.mp3", true},
		{"remote", "https://example.com/ch1.mp3", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.LocalPath(tt.src)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_LocalPath_NoRoot(t *testing.T) {
	r := NewResolver("", nil)
	got, ok := r.LocalPath("audio/ch1.mp3")
	assert.True(t, ok)
	assert.Equal(t, "audio/ch1.mp3", got)
}

func TestResolver_OpenLocal(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "ch1.mp3"), []byte("lesson"), 0o600))

	r := NewResolver(root, nil)
	rc, name, err := r.Open(context.Background(), "ch1.mp3")
	require.NoError(t, err)
	defer rc.Close()

	assert.Equal(t, filepath.Join(root, "ch1.mp3"), name)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "lesson", string(data))
}

func TestResolver_OpenMissing(t *testing.T) {
	r := NewResolver(t.TempDir(), nil)
	_, _, err := r.Open(context.Background(), "missing.mp3")
	assert.Error(t, err)
}

func TestResolver_FetchRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/audio/ch1.mp3" {
			http.NotFound(w, req)
			return
		}
		_, _ = w.Write([]byte("remote lesson"))
	}))
	defer srv.Close()

	r := NewResolver("", nil)
	r.Client = srv.Client()

	rc, name, err := r.Open(context.Background(), srv.URL+"/audio/ch1.mp3")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "/audio/ch1.mp3", name)

	// Seekable so decoders can probe the header.
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "remote lesson", string(data))
	_, err = rc.Seek(0, io.SeekStart)
	require.NoError(t, err)

	_, _, err = r.Open(context.Background(), srv.URL+"/audio/missing.mp3")
	assert.Error(t, err)
}

func TestResolver_FetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	r := NewResolver("", nil)
	r.Client = srv.Client()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := r.Open(ctx, srv.URL+"/a.mp3")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "*.ogg")
	require.NoError(t, err)

	_, _, err = Decode(f, f.Name())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
