package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesOrder(t *testing.T) {
	c, err := New(
		Episode{ID: "a", AudioSrc: "/a.mp3"},
		Episode{ID: "b", AudioSrc: "/b.mp3"},
		Episode{ID: "c", AudioSrc: "/c.mp3"},
	)
	require.NoError(t, err)

	require.Equal(t, 3, c.Len())
	for i, id := range []string{"a", "b", "c"} {
		ep, ok := c.At(i)
		require.True(t, ok)
		assert.Equal(t, id, ep.ID)
		assert.Equal(t, i, c.IndexOf(id))
	}
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New(
		Episode{ID: "a", AudioSrc: "/a.mp3"},
		Episode{ID: "a", AudioSrc: "/b.mp3"},
	)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("New() error = %v, want ErrDuplicateID", err)
	}
}

func TestNew_RejectsMissingSource(t *testing.T) {
	_, err := New(Episode{ID: "a", AudioSrc: "  "})
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("New() error = %v, want ErrNoSource", err)
	}
}

func TestNew_GeneratesMissingIDs(t *testing.T) {
	c, err := New(Episode{AudioSrc: "/a.mp3"}, Episode{AudioSrc: "/b.mp3"})
	require.NoError(t, err)
	assert.Equal(t, 0, c.IndexOf("episode-1"))
	assert.Equal(t, 1, c.IndexOf("episode-2"))
}

func TestAt_OutOfRange(t *testing.T) {
	c := Default()
	for _, i := range []int{-1, c.Len(), 100} {
		if _, ok := c.At(i); ok {
			t.Errorf("At(%d) ok = true, want false", i)
		}
		if c.Valid(i) {
			t.Errorf("Valid(%d) = true, want false", i)
		}
	}
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, -1, c.IndexOf("x"))
	assert.Nil(t, c.Episodes())
	_, ok := c.At(0)
	assert.False(t, ok)
}

func TestEpisodes_ReturnsCopy(t *testing.T) {
	c := Default()
	eps := c.Episodes()
	eps[0].Title = "changed"

	ep, _ := c.At(0)
	if ep.Title == "changed" {
		t.Error("Episodes() exposed internal slice")
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, 3, c.Len())
	ep, _ := c.At(1)
	assert.Equal(t, "cs11-ch2", ep.ID)
	assert.InDelta(t, 952+1245+1180, c.TotalDuration(), 0.001)
}

func TestEpisode_Label(t *testing.T) {
	tests := []struct {
		ep   Episode
		want string
	}{
		{Episode{ID: "x", Chapter: "Chapter 1", Title: "Intro"}, "Chapter 1 · Intro"},
		{Episode{ID: "x", Title: "Intro"}, "Intro"},
		{Episode{ID: "x", Chapter: "Chapter 1"}, "Chapter 1"},
		{Episode{ID: "x"}, "x"},
	}
	for _, tt := range tests {
		if got := tt.ep.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[[episodes]]
id = "ch1"
chapter = "Chapter 1"
title = "Sets"
audio_src = "/audio/ch1.mp3"
duration = 600

[[episodes]]
id = "ch2"
title = "Relations"
audio_src = "https://example.com/ch2.mp3"
duration = 720.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	ep, _ := c.At(1)
	assert.Equal(t, "ch2", ep.ID)
	assert.Equal(t, "https://example.com/ch2.mp3", ep.AudioSrc)
	assert.InDelta(t, 720.5, ep.Duration, 0.001)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLoad_DuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[[episodes]]
id = "ch1"
audio_src = "/a.mp3"

[[episodes]]
id = "ch1"
audio_src = "/b.mp3"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestEnrich_SkipsNonLocalSources(t *testing.T) {
	c, err := New(Episode{ID: "a", AudioSrc: "https://example.com/a.mp3"})
	require.NoError(t, err)

	got := Enrich(c, func(string) (string, bool) { return "", false })
	assert.Same(t, c, got)
}

func TestEnrich_IgnoresUnreadableFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o600))

	c, err := New(Episode{ID: "a", AudioSrc: "/a.mp3"})
	require.NoError(t, err)

	got := Enrich(c, func(string) (string, bool) { return path, true })
	assert.Same(t, c, got)
}
