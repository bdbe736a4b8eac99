// Package notify shows desktop notifications when a lesson starts.
package notify

import (
	"math"
	"time"
)

// Notification is one desktop notification.
type Notification struct {
	Summary    string
	Body       string
	Icon       string        // image path or icon name
	Expire     time.Duration // 0 leaves it to the server
	ReplacesID uint32        // update this notification in place
}

// Notifier shows and dismisses notifications.
type Notifier interface {
	// Notify shows n and returns its id. Without a notification server it
	// returns 0 and no error.
	Notify(n Notification) (uint32, error)
	Dismiss(id uint32) error
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(Notification) (uint32, error) { return 0, nil }
func (Nop) Dismiss(uint32) error                { return nil }

var _ Notifier = Nop{}

// expireMillis converts an expiry to the D-Bus expire_timeout, where -1
// means the server default.
func expireMillis(d time.Duration) int32 {
	if d <= 0 {
		return -1
	}
	ms := d.Milliseconds()
	switch {
	case ms == 0:
		return 1
	case ms > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(ms)
}
