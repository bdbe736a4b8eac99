//go:build !windows

// Package stderr captures output that C libraries (ALSA, the audio device
// backend) write straight to file descriptor 2, so it cannot corrupt the TUI.
// Captured lines go to the application log.
package stderr

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
	"syscall"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
	done       chan struct{}
)

// Start redirects fd 2 into a pipe and forwards each non-empty line to
// logger at warn level. Call it early in main, before the speaker is
// initialized. On error the program can continue without capture.
func Start(logger *slog.Logger) error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	err = syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd()))
	if err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true
	done = make(chan struct{})

	go forward(pipeRead, logger, done)
	return nil
}

func forward(r *os.File, logger *slog.Logger, done chan<- struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Warn("captured stderr", slog.String("line", line))
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Useful for fatal errors that must be visible even if TUI is running.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr and waits for pending lines to be
// logged.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = 0

	pipeWrite.Close()
	<-done
	pipeRead.Close()
	started = false
}
