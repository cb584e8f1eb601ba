package app

import "time"

// TickMsg drives the periodic progress/status refresh.
type TickMsg time.Time

// TrackEndedMsg reports that the current track ran to completion.
type TrackEndedMsg struct{}
