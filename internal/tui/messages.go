package tui

import (
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
)

// notificationMsg carries one store notification into Update
type notificationMsg events.Notification

// notificationsClosedMsg means the publisher shut down
type notificationsClosedMsg struct{}

// expireNotificationsMsg asks Update to drop stale notifications
type expireNotificationsMsg time.Time

// snapshotSavedMsg reports the result of a snapshot write
type snapshotSavedMsg struct {
	err error
}
