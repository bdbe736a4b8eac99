//go:build !windows

package stderr

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestForward_LogsNonEmptyLines(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	done := make(chan struct{})
	go forward(r, logger, done)

	_, _ = w.WriteString("ALSA lib pcm.c: underrun occurred\n\n   \nsecond line\n")
	w.Close()
	<-done

	out := buf.String()
	if got := strings.Count(out, "captured stderr"); got != 2 {
		t.Errorf("logged %d lines, want 2: %q", got, out)
	}
	if !strings.Contains(out, "underrun occurred") || !strings.Contains(out, "second line") {
		t.Errorf("missing captured text: %q", out)
	}
}

func TestStop_WithoutStartIsNoOp(t *testing.T) {
	Stop()
}
