package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3 = ".mp3"
	extWAV = ".wav"
	extOGG = ".ogg"
)

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Engine plays one audio file at a time through the system speaker. The
// decoded stream is wrapped in a volume effect and a pause control; a
// callback at the end of the chain reports end-of-track on the event stream.
type Engine struct {
	mu sync.Mutex

	state    State
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    float64

	// drained is set by the end-of-track callback, which runs on the
	// speaker goroutine and must not take mu.
	drained atomic.Bool

	events chan Event
}

// New creates an engine at full volume.
func New() *Engine {
	return &Engine{
		state:  Stopped,
		level:  1.0,
		events: make(chan Event, eventBufferSize),
	}
}

// Play stops any current track, decodes path and starts playback.
func (e *Engine) Play(path string) error {
	e.Stop()

	// Let any pending end-of-track callback settle after speaker.Clear.
	time.Sleep(10 * time.Millisecond)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != extMP3 && ext != extWAV && ext != extOGG {
		return fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.path = path
	e.file = f
	e.streamer = streamer
	e.format = format

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	e.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: false}
	e.volume = &effects.Volume{Streamer: e.ctrl, Base: 2, Volume: levelToGain(e.level), Silent: e.level <= 0}

	e.drained.Store(false)
	e.state = Playing
	e.start()

	e.emit(Event{Type: EventStarted, Path: path})
	return nil
}

// start submits the current chain to the speaker. Caller holds mu.
func (e *Engine) start() {
	path := e.path
	speaker.Play(beep.Seq(e.volume, beep.Callback(func() {
		e.drained.Store(true)
		e.emit(Event{Type: EventFinished, Path: path})
	})))
}

// Stop halts playback and releases the stream.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Stopped {
		return
	}

	speaker.Clear()

	if e.streamer != nil {
		e.streamer.Close()
		e.streamer = nil
	}
	if e.file != nil {
		e.file.Close()
		e.file = nil
	}

	e.ctrl = nil
	e.volume = nil
	e.state = Stopped
}

// Pause pauses playback.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Playing || e.ctrl == nil {
		return
	}
	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()
	e.state = Paused
	e.emit(Event{Type: EventPaused, Path: e.path})
}

// Resume resumes paused playback.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Paused || e.ctrl == nil {
		return
	}
	speaker.Lock()
	e.ctrl.Paused = false
	speaker.Unlock()
	e.state = Playing
	e.emit(Event{Type: EventResumed, Path: e.path})
}

// Rewind seeks the current track back to its start. If the chain already
// ran out it is resubmitted paused, so a following Resume restarts it.
func (e *Engine) Rewind() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.streamer == nil {
		return
	}

	speaker.Lock()
	_ = e.streamer.Seek(0)
	speaker.Unlock()

	if e.drained.Load() {
		e.drained.Store(false)
		e.ctrl.Paused = true
		e.state = Paused
		e.start()
	}
}

// State returns the transport state. A track that ran to completion
// reads as Stopped.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Playing && e.drained.Load() {
		return Stopped
	}
	return e.state
}

// Busy reports whether audio is actively playing.
func (e *Engine) Busy() bool {
	return e.State() == Playing
}

// Position returns the playback position within the current track.
// Read without the speaker lock; a slightly stale value is acceptable.
func (e *Engine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.streamer == nil {
		return 0
	}
	return e.format.SampleRate.D(e.streamer.Position())
}

// Path returns the currently loaded file.
func (e *Engine) Path() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.path
}
