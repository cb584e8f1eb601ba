// Package panel owns the ordered set of display lines making up the status
// panel. Slots are fixed: every UI element lives at a known index and is
// replaced in place, never reordered.
package panel

import (
	"fmt"
	"strings"
	"sync"

	"tremolo/internal/layout"
)

// Slot indices within the panel.
const (
	SlotTitle  = 0
	SlotBar    = 2
	SlotStatus = 4
	slotArtTop = 6
	SlotLegend = 10

	// LineCount is the number of slots with the title line included.
	LineCount = 11
)

// The transport glyph occupies rune columns 10..15 of the three art rows.
const (
	glyphStart = 10
	glyphEnd   = 16
)

// Block art co-hosting the transport glyph. The initial state shows the
// pause glyph: playback starts immediately, and the symbol advertises the
// action the toggle key will perform next.
var artRows = [3]string{
	"██████    ██  ██                ██      █ ████",
	"██████    ██  ██    ██████    ██████      ██  ",
	"██████    ██  ██                ██      ████ █",
}

var playGlyph = [3]string{"██▄▄  ", "██████", "██▀▀  "}

var pauseGlyph = [3]string{"██  ██", "██  ██", "██  ██"}

const legend = "escape    space       F8        F9      pg_dwn"

// Panel is the mutable line sequence. All mutation and snapshotting goes
// through one mutex so a renderer never sees a half-applied update.
type Panel struct {
	mu    sync.Mutex
	lines []layout.Line
}

// New builds the initial panel: title, empty progress bar, placeholder time
// line, transport art and the hotkey legend.
func New(title string, boxWidth int) *Panel {
	timeGap := max(boxWidth-12, 0)
	return &Panel{
		lines: []layout.Line{
			{Text: title, Centered: false},
			{Text: "", Centered: true},
			{Text: strings.Repeat("░", boxWidth), Centered: true},
			{Text: "", Centered: true},
			{Text: "00:00 " + strings.Repeat(" ", timeGap) + " 00:00", Centered: true},
			{Text: "", Centered: true},
			{Text: artRows[0], Centered: true},
			{Text: artRows[1], Centered: true},
			{Text: artRows[2], Centered: true},
			{Text: "", Centered: true},
			{Text: legend, Centered: true},
		},
	}
}

// Set replaces the line at the given slot.
func (p *Panel) Set(i int, line layout.Line) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.lines) {
		return fmt.Errorf("panel: slot %d out of range [0,%d)", i, len(p.lines))
	}
	p.lines[i] = line
	return nil
}

// SetTransport splices the transport glyph into the art rows, leaving the
// surrounding block art untouched. The affordance is inverted on purpose:
// while playing the pause glyph is shown, while paused the play glyph, so
// the symbol always names the next action of the toggle key.
func (p *Panel) SetTransport(playing bool) {
	glyph := playGlyph
	if playing {
		glyph = pauseGlyph
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range 3 {
		row := []rune(p.lines[slotArtTop+i].Text)
		if len(row) < glyphEnd {
			continue
		}
		spliced := append(append(row[:glyphStart:glyphStart], []rune(glyph[i])...), row[glyphEnd:]...)
		p.lines[slotArtTop+i] = layout.Line{Text: string(spliced), Centered: true}
	}
}

// Snapshot returns an immutable copy of the line sequence.
func (p *Panel) Snapshot() []layout.Line {
	p.mu.Lock()
	defer p.mu.Unlock()
	lines := make([]layout.Line, len(p.lines))
	copy(lines, p.lines)
	return lines
}
