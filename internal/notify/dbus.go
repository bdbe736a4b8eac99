//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest  = "org.freedesktop.Notifications"
	notifyPath  = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyIface = "org.freedesktop.Notifications"

	appName = "Decoded"
)

// Freedesktop urgency for background information.
const urgencyLow byte = 0

type busNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one it returns Nop, so lessons
// still play on machines with no desktop.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Nop{}, nil //nolint:nilerr // no desktop session
	}
	return &busNotifier{obj: conn.Object(notifyDest, notifyPath)}, nil
}

// Notify calls org.freedesktop.Notifications.Notify(app_name, replaces_id,
// app_icon, summary, body, actions, hints, expire_timeout).
func (b *busNotifier) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(urgencyLow),
		"category":      dbus.MakeVariant("x-decoded.lesson"),
		"desktop-entry": dbus.MakeVariant("decoded"),
	}

	var id uint32
	err := b.obj.Call(notifyIface+".Notify", 0,
		appName, n.ReplacesID, n.Icon, n.Summary, n.Body,
		[]string{}, hints, expireMillis(n.Expire),
	).Store(&id)
	if err != nil {
		return 0, fmt.Errorf("notify: %w", err)
	}
	return id, nil
}

func (b *busNotifier) Dismiss(id uint32) error {
	if id == 0 {
		return nil
	}
	return b.obj.Call(notifyIface+".CloseNotification", 0, id).Err
}
