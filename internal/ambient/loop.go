package ambient

import (
	"context"
	"fmt"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/decoded/internal/media"
)

// Loop is a Track that repeats one audio file forever on the shared
// speaker. It starts silent.
type Loop struct {
	stream beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

// NewLoop decodes src and starts it silently on the speaker. An empty src
// yields Silent.
func NewLoop(ctx context.Context, r *media.Resolver, src string, level float64) (Track, error) {
	if src == "" {
		return Silent{}, nil
	}
	rc, name, err := r.Open(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("open ambient %q: %w", src, err)
	}
	stream, format, err := media.Decode(rc, name)
	if err != nil {
		return nil, fmt.Errorf("decode ambient %q: %w", src, err)
	}
	looped, err := beep.Loop2(stream)
	if err != nil {
		stream.Close()
		return nil, fmt.Errorf("loop ambient %q: %w", src, err)
	}
	if err := media.EnsureSpeaker(); err != nil {
		stream.Close()
		return nil, err
	}

	l := &Loop{stream: stream}
	l.ctrl = &beep.Ctrl{Streamer: beep.Resample(4, format.SampleRate, media.SpeakerRate, looped)}
	l.volume = &effects.Volume{
		Streamer: l.ctrl,
		Base:     2,
		Volume:   media.LevelToVolume(level),
		Silent:   true,
	}
	speaker.Play(l.volume)
	return l, nil
}

// SetAudible implements Track.
func (l *Loop) SetAudible(audible bool) {
	speaker.Lock()
	l.volume.Silent = !audible
	speaker.Unlock()
}

// Close removes the loop from the speaker and releases the file.
func (l *Loop) Close() error {
	speaker.Lock()
	l.ctrl.Streamer = nil
	speaker.Unlock()
	return l.stream.Close()
}
