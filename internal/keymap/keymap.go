// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit        Action = "quit"
	ActionTogglePause Action = "toggle_pause"
	ActionVolumeDown  Action = "volume_down"
	ActionVolumeUp    Action = "volume_up"
	ActionShuffle     Action = "shuffle"
)

// Binding describes a single key binding for documentation.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
}

// All contains all key bindings for help generation.
var All = []Binding{
	{[]string{"esc", "ctrl+c"}, ActionQuit, "Quit"},
	{[]string{" "}, ActionTogglePause, "Play/pause"},
	{[]string{"f8"}, ActionVolumeDown, "Volume down"},
	{[]string{"f9"}, ActionVolumeUp, "Volume up"},
	{[]string{"pgdown"}, ActionShuffle, "Random track"},
}
