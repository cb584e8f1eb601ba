// Package layout renders the fixed-width status panel: the surrounding
// box, the progress bar and the time/volume line. All functions are pure
// string transforms; the caller owns terminal I/O.
package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
	ellipsis    = "..."
)

// Line is one slot of the panel: its text and whether it is centered
// within the box (left-justified otherwise).
type Line struct {
	Text     string
	Centered bool
}

// Frame holds the terminal dimensions at render time. It is re-queried on
// every redraw and never cached, so a resize is reflected by the next frame.
type Frame struct {
	Columns int
	Lines   int
}

// Box renders the panel lines vertically and horizontally centered in the
// frame. Each line is truncated to min(boxWidth, frame.Columns), justified
// within that width, then centered within the full terminal width. When the
// panel has more lines than the frame, vertical padding degenerates to zero.
func Box(lines []Line, frame Frame, boxWidth int) string {
	width := min(boxWidth, frame.Columns)

	pad := frame.Lines/2 - len(lines)/2
	if pad < 0 {
		pad = 0
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", pad))

	for _, line := range lines {
		text := line.Text
		if lipgloss.Width(text) > width {
			text = runewidth.Truncate(text, width, ellipsis)
		}
		if line.Centered {
			text = Center(text, width)
		} else {
			text = runewidth.FillRight(text, width)
		}
		b.WriteString(Center(text, frame.Columns))
		b.WriteString("\n")
	}

	return b.String()
}

// Center pads s with spaces on both sides to reach width, the extra space
// going to the right when the padding is odd.
func Center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// ProgressBar renders a bar of exactly width cells with floor(fraction*width)
// filled blocks. Fractions outside [0,1] are clamped.
func ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	filled = max(filled, 0)
	filled = min(filled, width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// StatusLine formats "MM:SS / MM:SS" with "Volume: P%" right-justified so
// the whole line is exactly width cells.
func StatusLine(currentSecs, totalSecs int, volume float64, width int) string {
	current := FormatTime(currentSecs)
	total := FormatTime(totalSecs)
	vol := fmt.Sprintf("Volume: %d%%", VolumePercent(volume))
	return current + " / " + total + fmt.Sprintf("%*s", width-len(current)-len(total)-3, vol)
}

// FormatTime renders a second count as MM:SS.
func FormatTime(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// VolumePercent converts a 0..1 level to a display percentage. A trailing 9
// is bumped to the next multiple of ten, so a level one step below maximum
// reads 100% rather than 99%.
func VolumePercent(volume float64) int {
	pct := int(math.Round(volume * 100))
	if pct%10 == 9 {
		pct++
	}
	return pct
}
