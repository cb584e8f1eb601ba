//go:build !windows

// Package stderr silences output that C audio libraries (ALSA, minimp3)
// write directly to file descriptor 2, bypassing Go's os.Stderr. Left
// alone, those lines land in the middle of the rendered panel.
package stderr

import (
	"io"
	"os"
	"syscall"
)

var (
	origFd    int
	pipeRead  *os.File
	pipeWrite *os.File
	started   bool
)

// Start redirects fd 2 into a pipe that is drained and discarded. Call it
// before the first speaker initialization.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origFd, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origFd)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go func() {
		_, _ = io.Copy(io.Discard, pipeRead)
	}()

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing the
// capture. Use it for errors that must stay visible.
func WriteOriginal(msg string) {
	if started && origFd > 0 {
		_, _ = syscall.Write(origFd, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origFd, int(os.Stderr.Fd()))
	_ = syscall.Close(origFd)

	pipeWrite.Close()
	pipeRead.Close()
	started = false
}
