//go:build windows

// Package stderr is a no-op on Windows; the audio backend there does not
// write to fd 2 behind Go's back.
package stderr

import "os"

// Start is a no-op on Windows.
func Start() error { return nil }

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
