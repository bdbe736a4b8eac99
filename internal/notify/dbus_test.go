//go:build linux

package notify

import (
	"os"
	"testing"
	"time"
)

func TestBusNotifier_ReplaceAndDismiss(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	n, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, ok := n.(Nop); ok {
		t.Skip("session bus unreachable")
	}

	first, err := n.Notify(Notification{
		Summary: "Computer System Overview",
		Body:    "Chapter 1",
		Expire:  2 * time.Second,
	})
	if err != nil {
		t.Skipf("no notification server: %v", err)
	}
	if first == 0 {
		t.Fatal("Notify() returned id 0")
	}

	second, err := n.Notify(Notification{
		Summary:    "Encoding Schemes and Number System",
		Body:       "Chapter 2",
		Expire:     time.Second,
		ReplacesID: first,
	})
	if err != nil {
		t.Fatalf("replacing Notify() error: %v", err)
	}
	if second != first {
		t.Errorf("replacement id = %d, want %d", second, first)
	}

	if err := n.Dismiss(second); err != nil {
		t.Errorf("Dismiss() error: %v", err)
	}
}
