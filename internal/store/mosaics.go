package store

import (
	"context"
	"fmt"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// LoadMosaics refreshes the mosaic cache. Silent on failure: this load runs
// from timers and view switches, a toast here would spam.
func (s *Store) LoadMosaics(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/mosaics")
	if err != nil {
		return
	}
	var mosaics []models.MosaicWithCameras
	if env.Success && env.Decode(&mosaics) == nil {
		s.mu.Lock()
		s.mosaics = mosaics
		s.mu.Unlock()
	}
}

// SaveMosaic creates (id 0) or updates a mosaic. Returns "" on success,
// otherwise the inline form error.
func (s *Store) SaveMosaic(ctx context.Context, id int64, req models.SaveMosaicRequest) string {
	var env *models.Envelope
	var err error
	if id == 0 {
		env, err = s.api.Post(ctx, "/api/mosaics", req)
	} else {
		env, err = s.api.Put(ctx, fmt.Sprintf("/api/mosaics/%d", id), req)
	}
	if err != nil {
		return "Connection error"
	}
	if !env.Success {
		return env.ErrorOr("Error saving mosaic")
	}

	s.LoadMosaics(ctx)
	if id == 0 {
		s.toasts.Success("Mosaic created")
	} else {
		s.toasts.Success("Mosaic updated")
	}
	return ""
}

func (s *Store) DeleteMosaic(ctx context.Context, id int64) {
	env, err := s.api.Delete(ctx, fmt.Sprintf("/api/mosaics/%d", id))
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error deleting mosaic"))
		return
	}
	s.LoadMosaics(ctx)
	s.toasts.Success("Mosaic deleted")
}

// StartMosaic asks the backend to spawn the mosaic process. The process
// lifecycle is server-owned; this is only a proxy.
func (s *Store) StartMosaic(ctx context.Context, id int64) {
	s.toasts.Info("Starting mosaic...")
	env, err := s.api.Post(ctx, fmt.Sprintf("/api/mosaics/%d/start", id), nil)
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error starting mosaic"))
		return
	}
	var msg string
	_ = env.Decode(&msg)
	if msg == "" {
		msg = "Mosaic started"
	}
	s.toasts.Success(msg)
	s.LoadMosaics(ctx)
}

func (s *Store) StopMosaic(ctx context.Context, id int64) {
	env, err := s.api.Post(ctx, fmt.Sprintf("/api/mosaics/%d/stop", id), nil)
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error stopping mosaic"))
		return
	}
	s.toasts.Success("Mosaic stopped")
	s.LoadMosaics(ctx)
}
