//go:build !linux

package notify

// New returns a no-op notifier on platforms without D-Bus.
func New() (Notifier, error) {
	return &stubNotifier{}, nil
}
