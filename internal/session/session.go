// Package session coordinates the playback engine and the display panel.
// Every event handler is one mutate-and-render unit: it takes the
// coordinator lock, updates engine and panel together, and releases the
// lock before anything blocks. Render takes the same lock, so a frame
// never shows a half-applied update.
package session

import (
	"math"
	"math/rand/v2"
	"sync"

	"tremolo/internal/layout"
	"tremolo/internal/panel"
	"tremolo/internal/picker"
	"tremolo/internal/player"
	"tremolo/internal/tags"
)

const volumeStep = 0.1

// ChangeResult reports the outcome of a track-change transition.
type ChangeResult struct {
	Title   string
	Changed bool
}

// Coordinator owns the transport state machine: the current file, its
// duration, and the panel slots derived from engine state.
type Coordinator struct {
	mu sync.Mutex

	eng      player.Interface
	panel    *panel.Panel
	rng      *rand.Rand
	boxWidth int

	path      string
	totalSecs int
}

// New creates a coordinator for an engine already playing path.
func New(eng player.Interface, pnl *panel.Panel, rng *rand.Rand, boxWidth int, path string) *Coordinator {
	return &Coordinator{
		eng:       eng,
		panel:     pnl,
		rng:       rng,
		boxWidth:  boxWidth,
		path:      path,
		totalSecs: durationSecs(path),
	}
}

// TogglePause flips between playing and paused. The transport glyph shows
// the action the next toggle will perform, so pausing displays the play
// glyph and resuming the pause glyph.
func (c *Coordinator) TogglePause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.eng.State() {
	case player.Playing:
		c.eng.Pause()
		c.panel.SetTransport(false)
	case player.Paused:
		c.eng.Resume()
		c.panel.SetTransport(true)
	case player.Stopped:
	}
}

// VolumeUp raises the volume one step and returns the new level.
func (c *Coordinator) VolumeUp() float64 {
	return c.adjustVolume(volumeStep)
}

// VolumeDown lowers the volume one step and returns the new level.
func (c *Coordinator) VolumeDown() float64 {
	return c.adjustVolume(-volumeStep)
}

// adjustVolume rounds the current level to one decimal before stepping, so
// repeated steps stay on the 0.0, 0.1, ... 1.0 grid regardless of float
// drift, then clamps to [0, 1].
func (c *Coordinator) adjustVolume(step float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	level := math.Round(c.eng.Volume()*10)/10 + step
	level = max(level, 0)
	level = min(level, 1)
	c.eng.SetVolume(level)
	c.refreshStatus()
	return c.eng.Volume()
}

// Shuffle switches to a random sibling of the current track. When no
// sibling exists (or the picked file fails to load), the current track is
// rewound in place and, if playback had stopped, resumed.
func (c *Coordinator) Shuffle() ChangeResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advance(true)
}

// TrackEnded advances to a random sibling after the current track ran to
// completion. With no sibling available it leaves silence.
func (c *Coordinator) TrackEnded() ChangeResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advance(false)
}

func (c *Coordinator) advance(recover bool) ChangeResult {
	next, err := picker.RandomSibling(c.rng, c.path)
	if err == nil {
		if playErr := c.eng.Play(next); playErr != nil {
			err = playErr
		}
	}
	if err != nil {
		if !recover {
			return ChangeResult{}
		}
		c.eng.Rewind()
		if !c.eng.Busy() {
			c.eng.Resume()
			c.refreshBar()
			c.refreshStatus()
			c.panel.SetTransport(true)
		}
		return ChangeResult{}
	}

	c.path = next
	c.totalSecs = durationSecs(next)
	title := tags.Title(next)
	_ = c.panel.Set(panel.SlotTitle, layout.Line{Text: title})
	c.refreshBar()
	c.refreshStatus()
	c.panel.SetTransport(true)
	return ChangeResult{Title: title, Changed: true}
}

// Tick recomputes the progress bar and status line from the engine's
// current position and volume.
func (c *Coordinator) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshBar()
	c.refreshStatus()
}

// Render snapshots the panel and lays it out for the given frame.
func (c *Coordinator) Render(frame layout.Frame) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return layout.Box(c.panel.Snapshot(), frame, c.boxWidth)
}

// Stop halts the engine.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng.Stop()
}

// Volume returns the engine's current level.
func (c *Coordinator) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Volume()
}

// Path returns the currently loaded file.
func (c *Coordinator) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.path
}

// refreshBar updates the progress bar slot. A track with unknown duration
// renders as fraction zero, never a division by zero.
func (c *Coordinator) refreshBar() {
	var fraction float64
	if c.totalSecs > 0 {
		fraction = float64(c.positionSecs()) / float64(c.totalSecs)
	}
	_ = c.panel.Set(panel.SlotBar, layout.Line{
		Text:     layout.ProgressBar(fraction, c.boxWidth),
		Centered: true,
	})
}

// refreshStatus updates the time/volume slot.
func (c *Coordinator) refreshStatus() {
	_ = c.panel.Set(panel.SlotStatus, layout.Line{
		Text:     layout.StatusLine(c.positionSecs(), c.totalSecs, c.eng.Volume(), c.boxWidth),
		Centered: true,
	})
}

func (c *Coordinator) positionSecs() int {
	return int(c.eng.Position().Seconds())
}

func durationSecs(path string) int {
	d, err := tags.Duration(path)
	if err != nil {
		return 0
	}
	return int(d.Seconds())
}
