package store

import (
	"context"
	"fmt"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

func (s *Store) LoadAreas(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/areas")
	if err != nil {
		s.toasts.Error("Error loading areas")
		return
	}
	var areas []models.AreaWithLocation
	if env.Success && env.Decode(&areas) == nil {
		s.mu.Lock()
		s.areas = areas
		s.mu.Unlock()
	}
}

// SaveArea creates (id 0) or updates an area. Returns "" on success,
// otherwise the inline form error.
func (s *Store) SaveArea(ctx context.Context, id int64, area models.Area) string {
	var env *models.Envelope
	var err error
	if id == 0 {
		env, err = s.api.Post(ctx, "/api/areas", area)
	} else {
		env, err = s.api.Put(ctx, fmt.Sprintf("/api/areas/%d", id), area)
	}
	if err != nil {
		return "Connection error"
	}
	if !env.Success {
		return env.ErrorOr("Error saving area")
	}

	s.LoadAreas(ctx)
	if id == 0 {
		s.toasts.Success("Area created")
	} else {
		s.toasts.Success("Area updated")
	}
	return ""
}

func (s *Store) DeleteArea(ctx context.Context, id int64) {
	env, err := s.api.Delete(ctx, fmt.Sprintf("/api/areas/%d", id))
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error deleting area"))
		return
	}
	s.LoadAreas(ctx)
	s.toasts.Success("Area deleted")
}
