package store

import (
	"context"
	"fmt"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// LoadCaptures refreshes the capture list. Silent on failure.
func (s *Store) LoadCaptures(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/captures")
	if err != nil {
		return
	}
	var caps []models.Capture
	if env.Success && env.Decode(&caps) == nil {
		s.mu.Lock()
		s.captures = caps
		s.mu.Unlock()
	}
}

// TakeScreenshot grabs a frame from the camera and reloads the capture
// list. Returns whether the screenshot was stored.
func (s *Store) TakeScreenshot(ctx context.Context, cameraID int64) bool {
	env, err := s.api.Post(ctx, fmt.Sprintf("/api/captures/screenshot/%d", cameraID), nil)
	if err != nil {
		s.failToast(err)
		return false
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error taking screenshot"))
		return false
	}

	s.LoadCaptures(ctx)
	var shot models.Capture
	if env.Decode(&shot) == nil && shot.FilePath != "" {
		s.toasts.Success("Screenshot saved: " + shot.FilePath)
	} else {
		s.toasts.Success("Screenshot saved")
	}
	return true
}

func (s *Store) DeleteCapture(ctx context.Context, id int64) {
	env, err := s.api.Delete(ctx, fmt.Sprintf("/api/captures/%d", id))
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error deleting capture"))
		return
	}
	s.LoadCaptures(ctx)
	s.toasts.Success("Capture deleted")
}

// LoadThumbnailSetting reads whether auto-thumbnails are on. Silent.
func (s *Store) LoadThumbnailSetting(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/captures/thumbnails/setting")
	if err != nil || !env.Success {
		return
	}
	var enabled bool
	if env.Decode(&enabled) == nil {
		s.mu.Lock()
		s.thumbnails = enabled
		s.mu.Unlock()
	}
}

// ToggleThumbnails flips thumbnail generation server-side and caches the
// new value. Two consecutive toggles return the setting to its original
// value.
func (s *Store) ToggleThumbnails(ctx context.Context) {
	env, err := s.api.Post(ctx, "/api/captures/thumbnails/toggle", nil)
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error toggling thumbnails"))
		return
	}
	var enabled bool
	if env.Decode(&enabled) != nil {
		return
	}

	s.mu.Lock()
	s.thumbnails = enabled
	s.mu.Unlock()
	if enabled {
		s.toasts.Success("Thumbnails enabled")
	} else {
		s.toasts.Success("Thumbnails disabled")
	}
}
