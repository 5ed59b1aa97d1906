package store

import (
	"context"
	"fmt"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// LoadNotificationSummary refreshes the unread counter and recent entries.
// Silent on failure: this runs on a timer.
func (s *Store) LoadNotificationSummary(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/notifications/summary")
	if err != nil || !env.Success {
		return
	}
	var sum models.NotificationSummary
	if env.Decode(&sum) == nil {
		s.mu.Lock()
		s.notifications = sum.Notifications
		s.unreadCount = sum.UnreadCount
		s.mu.Unlock()
	}
}

// MarkNotificationRead marks one entry read. The cache is updated
// optimistically on success rather than reloaded; the next poll
// resynchronizes with the server.
func (s *Store) MarkNotificationRead(ctx context.Context, id int64) {
	env, err := s.api.Post(ctx, fmt.Sprintf("/api/notifications/%d/read", id), nil)
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error updating notification"))
		return
	}

	s.mu.Lock()
	for i := range s.notifications {
		if s.notifications[i].ID == id && !s.notifications[i].Read {
			s.notifications[i].Read = true
			if s.unreadCount > 0 {
				s.unreadCount--
			}
			break
		}
	}
	s.mu.Unlock()
}

// MarkAllNotificationsRead clears the unread counter.
func (s *Store) MarkAllNotificationsRead(ctx context.Context) {
	env, err := s.api.Post(ctx, "/api/notifications/read-all", nil)
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error updating notifications"))
		return
	}

	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.unreadCount = 0
	s.mu.Unlock()
}

func (s *Store) DeleteNotification(ctx context.Context, id int64) {
	env, err := s.api.Delete(ctx, fmt.Sprintf("/api/notifications/%d", id))
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error deleting notification"))
		return
	}
	s.LoadNotificationSummary(ctx)
}
