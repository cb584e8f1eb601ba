package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tremolo/internal/notify"
	"tremolo/internal/player"
	"tremolo/internal/state"
)

// TickCmd returns a command that sends TickMsg after the poll interval.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchTrackEnd returns a command that blocks on the engine's event stream
// until the end-of-track marker arrives, skipping unrelated events. It is
// re-armed after each delivery.
func WatchTrackEnd(events <-chan player.Event) tea.Cmd {
	return func() tea.Msg {
		for ev := range events {
			if ev.Type == player.EventFinished {
				return TrackEndedMsg{}
			}
		}
		return nil
	}
}

// notifyCmd sends a track-change desktop notification off the update loop.
func notifyCmd(n notify.Notifier, title string) tea.Cmd {
	if n == nil {
		return nil
	}
	return func() tea.Msg {
		_, _ = n.Notify(notify.Notification{
			Title:   "Now playing",
			Body:    title,
			Timeout: 3000,
		})
		return nil
	}
}

// saveVolumeCmd persists the volume level off the update loop.
func saveVolumeCmd(store *state.Manager, level float64) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		store.SaveVolume(level)
		return nil
	}
}
