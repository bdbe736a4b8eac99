package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/llehouerou/decoded/internal/catalog"
	"github.com/llehouerou/decoded/internal/session"
)

const episodeExpire = 4 * time.Second

// EpisodeNotification builds the "now playing" notification for ep.
func EpisodeNotification(ep catalog.Episode, icon string) Notification {
	title := ep.Title
	if title == "" {
		title = ep.ID
	}
	return Notification{
		Summary: title,
		Body:    ep.Chapter,
		Icon:    icon,
		Expire:  episodeExpire,
	}
}

// Announcer shows a notification each time a different episode starts,
// replacing the previous one.
type Announcer struct {
	notifier Notifier
	icon     func(catalog.Episode) string
	logger   *slog.Logger
	lastID   uint32
}

// NewAnnouncer creates an announcer. icon may be nil.
func NewAnnouncer(n Notifier, icon func(catalog.Episode) string, logger *slog.Logger) *Announcer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Announcer{notifier: n, icon: icon, logger: logger}
}

// Announce sends the notification for ep.
func (a *Announcer) Announce(ep catalog.Episode) {
	icon := ""
	if a.icon != nil {
		icon = a.icon(ep)
	}
	n := EpisodeNotification(ep, icon)
	n.ReplacesID = a.lastID

	id, err := a.notifier.Notify(n)
	if err != nil {
		a.logger.Debug("episode notification", slog.Any("error", err))
		return
	}
	a.lastID = id
}

// Run announces episodes from sub until ctx ends or the subscription
// closes, then dismisses the last announcement.
func (a *Announcer) Run(ctx context.Context, sub *session.Subscription) {
	defer a.dismiss()
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done:
			return
		case e := <-sub.EpisodeChanged:
			a.Announce(e.Episode)
		}
	}
}

func (a *Announcer) dismiss() {
	if a.lastID == 0 {
		return
	}
	if err := a.notifier.Dismiss(a.lastID); err != nil {
		a.logger.Debug("dismiss episode notification", slog.Any("error", err))
	}
	a.lastID = 0
}
