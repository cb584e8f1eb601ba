// Package notify sends desktop notifications via D-Bus.
package notify

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string // summary text (required)
	Body       string // body text (optional)
	Timeout    int32  // ms, -1 = server default, 0 = never expire
	ReplacesID uint32 // 0 = new notification, >0 = replace existing
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID. Returns 0 and nil
	// error when notifications are unavailable.
	Notify(n Notification) (uint32, error)
}

// stubNotifier is used when D-Bus is unavailable.
type stubNotifier struct{}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}
