package player

const eventBufferSize = 16

// EventType identifies an engine event.
type EventType int

const (
	// EventStarted is emitted when a new track begins playing.
	EventStarted EventType = iota
	// EventFinished marks the end of a track: the stream has been fully
	// consumed. This is the only event the track-end watcher acts on.
	EventFinished
	// EventPaused is emitted when playback is paused.
	EventPaused
	// EventResumed is emitted when paused playback resumes.
	EventResumed
)

// Event is one entry of the engine's event stream.
type Event struct {
	Type EventType
	Path string
}

// emit sends an event without blocking, dropping it if the buffer is full.
// The end-of-track callback runs on the speaker goroutine and must never
// block there.
func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}

// Events returns the engine's event stream. Consumers interested in a
// single event type must skip the others without draining extras.
func (e *Engine) Events() <-chan Event {
	return e.events
}
