//go:build !linux

package mpris

import (
	"github.com/llehouerou/decoded/internal/catalog"
	"github.com/llehouerou/decoded/internal/session"
)

// Source is the read side of the playback controller.
type Source interface {
	Snapshot() session.State
}

// Sender delivers a command to the UI loop.
type Sender func(session.Command)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Source, _ int, _ Sender, _ func(catalog.Episode) string) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
