package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the volume level (0.0 to 1.0). The level survives track
// changes: it is reapplied to every new stream chain.
func (e *Engine) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.level = level

	if e.volume != nil {
		speaker.Lock()
		e.volume.Volume = levelToGain(level)
		e.volume.Silent = level <= 0
		speaker.Unlock()
	}
}

// Volume returns the current volume level (0.0 to 1.0).
func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.level
}

// levelToGain converts a 0.0-1.0 level to beep's logarithmic volume value
// with base 2: 0 means no change, -1 half volume, -2 a quarter. Level 0
// maps to -10, essentially silent.
func levelToGain(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
