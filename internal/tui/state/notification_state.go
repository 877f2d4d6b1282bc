package state

import (
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
)

// NotificationTTL is how long a notification stays on screen.
const NotificationTTL = 3 * time.Second

// maxNotifications caps the backlog kept for display.
const maxNotifications = 5

// NotificationState manages notification display state.
// Notifications arrive from the store's event channel and expire after NotificationTTL.
type NotificationState struct {
	notifications []events.Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []events.Notification{},
	}
}

// Add appends a notification, dropping the oldest beyond the cap.
func (s *NotificationState) Add(n events.Notification) {
	s.notifications = append(s.notifications, n)
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}
}

// Expire removes notifications older than ttl relative to now.
// Returns true if anything was removed.
func (s *NotificationState) Expire(now time.Time, ttl time.Duration) bool {
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if now.Sub(n.Timestamp) < ttl {
			kept = append(kept, n)
		}
	}
	removed := len(kept) != len(s.notifications)
	s.notifications = kept
	return removed
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []events.Notification{}
}

// Latest returns the most recent notification.
func (s *NotificationState) Latest() (events.Notification, bool) {
	if len(s.notifications) == 0 {
		return events.Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

// All returns all current notifications.
func (s *NotificationState) All() []events.Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
