package player

import (
	"sync"
	"time"
)

// Mock is a test double for the engine.
type Mock struct {
	mu sync.Mutex

	state     State
	path      string
	position  time.Duration
	level     float64
	drained   bool
	playErr   error
	playCalls []string
	rewinds   int
	events    chan Event
}

// NewMock creates a stopped mock engine at full volume.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		level:  1.0,
		events: make(chan Event, eventBufferSize),
	}
}

func (m *Mock) Play(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls = append(m.playCalls, path)
	if m.playErr != nil {
		return m.playErr
	}
	m.path = path
	m.state = Playing
	m.drained = false
	m.position = 0
	return nil
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Stopped
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Rewind() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rewinds++
	m.position = 0
	if m.drained {
		m.drained = false
		m.state = Paused
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing && m.drained {
		return Stopped
	}
	return m.state
}

func (m *Mock) Busy() bool { return m.State() == Playing }

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Path() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.path
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

func (m *Mock) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = level
}

func (m *Mock) Events() <-chan Event { return m.events }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

// SetPosition moves the mock's playback position.
func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

// SetPlayErr makes subsequent Play calls fail.
func (m *Mock) SetPlayErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// Finish simulates the current track running to completion.
func (m *Mock) Finish() {
	m.mu.Lock()
	m.drained = true
	path := m.path
	m.mu.Unlock()
	select {
	case m.events <- Event{Type: EventFinished, Path: path}:
	default:
	}
}

// PlayCalls returns the paths passed to Play, in order.
func (m *Mock) PlayCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.playCalls...)
}

// Rewinds returns how many times Rewind was called.
func (m *Mock) Rewinds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rewinds
}
