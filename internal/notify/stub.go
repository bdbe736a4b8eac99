//go:build !linux

package notify

// New returns Nop: desktop notifications are only sent over D-Bus.
func New() (Notifier, error) {
	return Nop{}, nil
}
