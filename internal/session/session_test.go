package session

import (
	"errors"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"tremolo/internal/layout"
	"tremolo/internal/panel"
	"tremolo/internal/player"
)

const testBoxWidth = 46

func newFixture(t *testing.T, siblings ...string) (*Coordinator, *player.Mock, *panel.Panel, string) {
	t.Helper()
	dir := t.TempDir()
	current := filepath.Join(dir, "current.mp3")
	if err := os.WriteFile(current, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	for _, name := range siblings {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	eng := player.NewMock()
	if err := eng.Play(current); err != nil {
		t.Fatal(err)
	}
	pnl := panel.New("current.mp3", testBoxWidth)
	rng := rand.New(rand.NewPCG(7, 11))
	co := New(eng, pnl, rng, testBoxWidth, current)
	return co, eng, pnl, current
}

func statusSlot(t *testing.T, pnl *panel.Panel) string {
	t.Helper()
	return pnl.Snapshot()[panel.SlotStatus].Text
}

func TestTogglePauseRoundTrip(t *testing.T) {
	co, eng, pnl, current := newFixture(t)
	volume := eng.Volume()

	co.TogglePause()
	if eng.State() != player.Paused {
		t.Fatalf("state = %v, want Paused", eng.State())
	}
	pausedArt := pnl.Snapshot()[6].Text

	co.TogglePause()
	if eng.State() != player.Playing {
		t.Fatalf("state = %v, want Playing", eng.State())
	}
	if pnl.Snapshot()[6].Text == pausedArt {
		t.Error("transport glyph did not flip back")
	}

	if eng.Volume() != volume {
		t.Errorf("volume changed: %v != %v", eng.Volume(), volume)
	}
	if co.Path() != current {
		t.Errorf("path changed: %q", co.Path())
	}
}

func TestTogglePauseWhileStopped(t *testing.T) {
	co, eng, _, _ := newFixture(t)
	eng.Stop()

	co.TogglePause()
	if eng.State() != player.Stopped {
		t.Errorf("state = %v, want Stopped", eng.State())
	}
}

func TestTrackEndedAdvances(t *testing.T) {
	co, eng, pnl, current := newFixture(t, "other.mp3", "third.ogg")

	res := co.TrackEnded()
	if !res.Changed {
		t.Fatal("expected a track change")
	}
	first := co.Path()
	if first == current {
		t.Fatal("advanced to the same track")
	}
	if res.Title != pnl.Snapshot()[panel.SlotTitle].Text {
		t.Errorf("title slot %q != result %q", pnl.Snapshot()[panel.SlotTitle].Text, res.Title)
	}

	res = co.TrackEnded()
	if !res.Changed {
		t.Fatal("expected a second track change")
	}
	if co.Path() == first {
		t.Error("second advance picked the same track")
	}

	// While playing, the transport block shows the pause glyph.
	art := []rune(pnl.Snapshot()[6].Text)
	if got := string(art[10:16]); got != "██  ██" {
		t.Errorf("transport glyph = %q, want pause glyph", got)
	}

	calls := eng.PlayCalls()
	if len(calls) != 3 {
		t.Fatalf("play calls = %d, want 3", len(calls))
	}
}

func TestTrackEndedNoSiblings(t *testing.T) {
	co, eng, _, current := newFixture(t)
	eng.Finish()

	res := co.TrackEnded()
	if res.Changed {
		t.Error("expected no change without siblings")
	}
	if co.Path() != current {
		t.Errorf("path changed: %q", co.Path())
	}
	if eng.Rewinds() != 0 {
		t.Errorf("natural end should not rewind, got %d", eng.Rewinds())
	}
	if eng.State() != player.Stopped {
		t.Errorf("state = %v, want Stopped", eng.State())
	}
}

func TestShuffleNoSiblingsRewindsAndResumes(t *testing.T) {
	co, eng, _, current := newFixture(t)
	eng.Finish()

	res := co.Shuffle()
	if res.Changed {
		t.Error("expected no change without siblings")
	}
	if eng.Rewinds() != 1 {
		t.Fatalf("rewinds = %d, want 1", eng.Rewinds())
	}
	if eng.State() != player.Playing {
		t.Errorf("state = %v, want Playing", eng.State())
	}
	if co.Path() != current {
		t.Errorf("path changed: %q", co.Path())
	}
}

func TestShuffleNoSiblingsWhileBusy(t *testing.T) {
	co, eng, _, _ := newFixture(t)

	co.Shuffle()
	if eng.Rewinds() != 1 {
		t.Fatalf("rewinds = %d, want 1", eng.Rewinds())
	}
	if eng.State() != player.Playing {
		t.Errorf("state = %v, want Playing", eng.State())
	}
}

func TestShufflePlayErrorRecovers(t *testing.T) {
	co, eng, _, current := newFixture(t, "broken.mp3")
	eng.SetPlayErr(errors.New("decode failed"))

	res := co.Shuffle()
	if res.Changed {
		t.Error("expected no change on load failure")
	}
	if eng.Rewinds() != 1 {
		t.Fatalf("rewinds = %d, want 1", eng.Rewinds())
	}
	if co.Path() != current {
		t.Errorf("path changed: %q", co.Path())
	}
}

func TestVolumeSteps(t *testing.T) {
	co, eng, _, _ := newFixture(t)
	eng.SetVolume(0.5)

	if got := co.VolumeUp(); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("VolumeUp = %v, want 0.6", got)
	}
	if got := co.VolumeDown(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("VolumeDown = %v, want 0.5", got)
	}
}

func TestVolumeClamping(t *testing.T) {
	co, eng, _, _ := newFixture(t)

	for range 3 {
		co.VolumeUp()
	}
	if got := eng.Volume(); got != 1 {
		t.Errorf("volume = %v, want 1", got)
	}

	for range 12 {
		co.VolumeDown()
	}
	if got := eng.Volume(); got != 0 {
		t.Errorf("volume = %v, want 0", got)
	}
}

func TestVolumeStaysOnGrid(t *testing.T) {
	co, eng, _, _ := newFixture(t)
	eng.SetVolume(0.30000000000000004)

	if got := co.VolumeUp(); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("VolumeUp = %v, want 0.4", got)
	}
}

func TestVolumeUpdatesStatusLine(t *testing.T) {
	co, _, pnl, _ := newFixture(t)
	co.VolumeDown()

	want := layout.StatusLine(0, 0, 0.9, testBoxWidth)
	if got := statusSlot(t, pnl); got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
}

func TestTickZeroDuration(t *testing.T) {
	co, eng, pnl, _ := newFixture(t)
	eng.SetPosition(42e9)

	co.Tick()

	bar := pnl.Snapshot()[panel.SlotBar].Text
	if strings.ContainsRune(bar, '█') {
		t.Errorf("unknown duration should render an empty bar: %q", bar)
	}
	if got := statusSlot(t, pnl); !strings.HasPrefix(got, "00:42 / 00:00") {
		t.Errorf("status = %q", got)
	}
}

func TestConcurrentDispatch(t *testing.T) {
	co, _, pnl, _ := newFixture(t)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 50 {
				co.VolumeDown()
				co.VolumeUp()
			}
		}()
		go func() {
			defer wg.Done()
			for range 50 {
				co.Tick()
			}
		}()
	}
	wg.Wait()

	co.Tick()
	want := layout.StatusLine(0, 0, co.Volume(), testBoxWidth)
	if got := statusSlot(t, pnl); got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
}

func TestRenderUsesFrame(t *testing.T) {
	co, _, _, _ := newFixture(t)
	out := co.Render(layout.Frame{Columns: 80, Lines: 24})

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(rows) != 7+11 {
		t.Fatalf("rendered %d rows, want 18", len(rows))
	}
	for i, row := range rows[7:] {
		if len([]rune(row)) != 80 {
			t.Errorf("row %d width = %d, want 80", i, len([]rune(row)))
		}
	}
}
