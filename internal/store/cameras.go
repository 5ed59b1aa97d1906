package store

import (
	"context"
	"fmt"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// LoadCameras replaces the camera cache from the server. Failures surface
// as an error toast.
func (s *Store) LoadCameras(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/cameras")
	if err != nil {
		s.toasts.Error("Error loading cameras")
		return
	}
	var cams []models.Camera
	if env.Success && env.Decode(&cams) == nil {
		s.mu.Lock()
		s.cameras = cams
		s.rebuildStatusLocked()
		s.mu.Unlock()
	}
}

// SaveCamera creates (id 0) or updates a camera and reloads the collection
// on success. Application failures are toasted; returns whether the save
// went through.
func (s *Store) SaveCamera(ctx context.Context, id int64, cam models.Camera) bool {
	var env *models.Envelope
	var err error
	if id == 0 {
		env, err = s.api.Post(ctx, "/api/cameras", cam)
	} else {
		env, err = s.api.Put(ctx, fmt.Sprintf("/api/cameras/%d", id), cam)
	}
	if err != nil {
		s.failToast(err)
		return false
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error saving camera"))
		return false
	}

	s.LoadCameras(ctx)
	if id == 0 {
		s.toasts.Success("Camera created")
	} else {
		s.toasts.Success("Camera updated")
	}
	return true
}

// DeleteCamera removes a camera and reloads the collection on success.
func (s *Store) DeleteCamera(ctx context.Context, id int64) {
	env, err := s.api.Delete(ctx, fmt.Sprintf("/api/cameras/%d", id))
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error deleting camera"))
		return
	}
	s.LoadCameras(ctx)
	s.toasts.Success("Camera deleted")
}

// SyncCameras triggers the backend discovery job. Informational toast while
// the job is in flight, server-provided summary when done.
func (s *Store) SyncCameras(ctx context.Context) {
	s.toasts.Info("Syncing cameras...")
	env, err := s.api.Post(ctx, "/api/cameras/sync", nil)
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Sync failed"))
		return
	}
	var msg string
	_ = env.Decode(&msg)
	if msg == "" {
		msg = "Sync complete"
	}
	s.toasts.Success(msg)
}

// CameraThumbnail fetches the latest auto-generated thumbnail path for a
// camera. Silent on failure: thumbnails are decorative.
func (s *Store) CameraThumbnail(ctx context.Context, id int64) (string, bool) {
	env, err := s.api.Get(ctx, fmt.Sprintf("/api/cameras/%d/thumbnail", id))
	if err != nil || !env.Success {
		return "", false
	}
	var path string
	if env.Decode(&path) != nil || path == "" {
		return "", false
	}
	return path, true
}
