package media

import (
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// SpeakerRate is the output sample rate. Every stream is resampled to it so
// lessons and ambient loops share one speaker.
const SpeakerRate beep.SampleRate = 44100

var (
	speakerOnce sync.Once
	speakerErr  error
)

// EnsureSpeaker initializes the audio device once.
func EnsureSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SpeakerRate, SpeakerRate.N(time.Second/10))
	})
	return speakerErr
}

// IsAudioFile reports whether name has an extension the decoders support.
func IsAudioFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3", ".flac", ".wav":
		return true
	}
	return false
}

// Decode picks a decoder from the extension of name. The returned streamer
// owns rc and closes it.
func Decode(rc io.ReadSeekCloser, name string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".mp3":
		return mp3.Decode(rc)
	case ".flac":
		s, f, err := flac.Decode(rc)
		return closeOnError(s, f, err, rc)
	case ".wav":
		s, f, err := wav.Decode(rc)
		return closeOnError(s, f, err, rc)
	}
	rc.Close()
	return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

func closeOnError(s beep.StreamSeekCloser, f beep.Format, err error, c io.Closer) (beep.StreamSeekCloser, beep.Format, error) {
	if err != nil {
		c.Close()
		return nil, beep.Format{}, err
	}
	return s, f, nil
}

// resampleRatio combines the playback rate with the conversion from the
// track's sample rate to the speaker's.
func resampleRatio(format beep.Format, rate float64) float64 {
	if rate <= 0 {
		rate = 1
	}
	return rate * float64(format.SampleRate) / float64(SpeakerRate)
}

// durationSeconds returns the stream length, or 0 when it cannot be known.
func durationSeconds(s beep.StreamSeekCloser, format beep.Format) float64 {
	n := s.Len()
	if n <= 0 || format.SampleRate <= 0 {
		return 0
	}
	return Seconds(format.SampleRate.D(n).Seconds())
}
