package player

import "time"

// Interface defines the engine contract for dependency injection and testing.
type Interface interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	Rewind()
	State() State
	Busy() bool
	Position() time.Duration
	Path() string
	Volume() float64
	SetVolume(level float64)
	Events() <-chan Event
}

// Verify Engine implements Interface at compile time.
var _ Interface = (*Engine)(nil)
