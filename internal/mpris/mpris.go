//go:build linux

// Package mpris exposes the player over D-Bus so desktop media keys and
// widgets can drive it.
package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/decoded/internal/catalog"
	"github.com/llehouerou/decoded/internal/session"
)

const busName = "decoded"

// Source is the read side of the playback controller. Snapshot must be safe
// to call from D-Bus handler goroutines.
type Source interface {
	Snapshot() session.State
}

// Sender delivers a command to the UI loop, typically tea.Program.Send.
type Sender func(session.Command)

// Adapter connects the playback controller to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. Intents are never applied on
// the D-Bus goroutine; they are handed to send.
func New(src Source, episodes int, send Sender, cover func(catalog.Episode) string) (*Adapter, error) {
	if src == nil || send == nil {
		return nil, fmt.Errorf("mpris: source and sender are required")
	}
	player := &playerAdapter{source: src, send: send, episodes: episodes, cover: cover}

	a := &Adapter{
		server: server.NewServer(busName, &rootAdapter{}, player),
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Decoded", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	source   Source
	send     Sender
	episodes int
	cover    func(catalog.Episode) string
}

func (p *playerAdapter) Next() error {
	p.send(session.Command{Kind: session.CmdNext})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.send(session.Command{Kind: session.CmdPrevious})
	return nil
}

func (p *playerAdapter) Pause() error {
	p.send(session.Command{Kind: session.CmdPause})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.send(session.Command{Kind: session.CmdTogglePlayPause})
	return nil
}

// Stop pauses; a lesson keeps its place.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	p.send(session.Command{Kind: session.CmdPlay})
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.send(session.Command{Kind: session.CmdSkip, Seconds: seconds(offset)})
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.send(session.Command{Kind: session.CmdSeek, Seconds: seconds(position)})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.source.Snapshot()
	switch {
	case s.IsPlaying:
		return types.PlaybackStatusPlaying, nil
	case s.HasSelection():
		return types.PlaybackStatusPaused, nil
	default:
		return types.PlaybackStatusStopped, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return p.source.Snapshot().PlaybackRate, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Rates only cycle through the fixed set
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.source.Snapshot()
	if s.Episode == nil {
		return types.Metadata{}, nil
	}
	ep := *s.Episode

	length := s.Duration
	if length <= 0 {
		length = ep.Duration
	}
	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(ep.ID)),
		Length:      microseconds(length),
		Title:       ep.Title,
		Album:       ep.Chapter,
		Artist:      []string{ep.Chapter},
		TrackNumber: s.SelectedIndex + 1,
	}
	if p.cover != nil {
		if art := p.cover(ep); art != "" {
			meta.ArtUrl = "file://" + art
		}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return int64(microseconds(p.source.Snapshot().CurrentTime)), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return minRate(), nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return maxRate(), nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.episodes > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.episodes > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.episodes > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.source.Snapshot().Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func seconds(us types.Microseconds) float64 {
	return float64(us) / 1e6
}

func microseconds(s float64) types.Microseconds {
	return types.Microseconds(s * 1e6)
}

func minRate() float64 {
	m := session.Rates[0]
	for _, r := range session.Rates {
		m = min(m, r)
	}
	return m
}

func maxRate() float64 {
	m := session.Rates[0]
	for _, r := range session.Rates {
		m = max(m, r)
	}
	return m
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
