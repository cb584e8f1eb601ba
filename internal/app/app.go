// Package app is the Bubble Tea shell around the coordinator: one update
// loop consumes key presses, resize notifications, ticker ticks and
// end-of-track events, so every state mutation and the render derived from
// it are serialized through a single consumer.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"tremolo/internal/config"
	"tremolo/internal/input"
	"tremolo/internal/keymap"
	"tremolo/internal/layout"
	"tremolo/internal/notify"
	"tremolo/internal/player"
	"tremolo/internal/session"
	"tremolo/internal/state"
)

// Model is the root application model.
type Model struct {
	co       *session.Coordinator
	cfg      *config.Config
	store    *state.Manager
	notifier notify.Notifier
	events   <-chan player.Event
	keys     *input.Filter
	bindings *keymap.Resolver

	width  int
	height int
}

// New creates the application model. store may be nil when persistence is
// unavailable.
func New(co *session.Coordinator, cfg *config.Config, store *state.Manager, notifier notify.Notifier, events <-chan player.Event) Model {
	return Model{
		co:       co,
		cfg:      cfg,
		store:    store,
		notifier: notifier,
		events:   events,
		keys:     input.NewFilter(),
		bindings: keymap.Default(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		TickCmd(m.cfg.Interval()),
		WatchTrackEnd(m.events),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Resize only re-queries dimensions; playback state is untouched
		// and the next View picks up the new frame.
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg.String())

	case TickMsg:
		m.co.Tick()
		return m, TickCmd(m.cfg.Interval())

	case TrackEndedMsg:
		res := m.co.TrackEnded()
		cmds := []tea.Cmd{WatchTrackEnd(m.events)}
		if res.Changed && m.cfg.NotificationsEnabled() {
			cmds = append(cmds, notifyCmd(m.notifier, res.Title))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if !m.keys.Keystroke(key) {
		return m, nil
	}

	switch m.bindings.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionTogglePause:
		m.co.TogglePause()
		return m, nil

	case keymap.ActionVolumeDown:
		return m, saveVolumeCmd(m.store, m.co.VolumeDown())

	case keymap.ActionVolumeUp:
		return m, saveVolumeCmd(m.store, m.co.VolumeUp())

	case keymap.ActionShuffle:
		res := m.co.Shuffle()
		if res.Changed && m.cfg.NotificationsEnabled() {
			return m, notifyCmd(m.notifier, res.Title)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return m.co.Render(layout.Frame{Columns: m.width, Lines: m.height})
}
