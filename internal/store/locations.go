package store

import (
	"context"
	"fmt"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// ErrSystemLocation is the fixed rejection shown when a delete targets a
// system-flagged location. Checked before any network call; mirrors the
// server-side invariant.
const ErrSystemLocation = "System locations cannot be deleted"

func (s *Store) LoadLocations(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/locations")
	if err != nil {
		s.toasts.Error("Error loading locations")
		return
	}
	var locs []models.Location
	if env.Success && env.Decode(&locs) == nil {
		s.mu.Lock()
		s.locations = locs
		s.mu.Unlock()
	}
}

// SaveLocation creates (id 0) or updates a location. Returns "" on success,
// otherwise the message to render inline next to the form.
func (s *Store) SaveLocation(ctx context.Context, id int64, loc models.Location) string {
	var env *models.Envelope
	var err error
	if id == 0 {
		env, err = s.api.Post(ctx, "/api/locations", loc)
	} else {
		env, err = s.api.Put(ctx, fmt.Sprintf("/api/locations/%d", id), loc)
	}
	if err != nil {
		return "Connection error"
	}
	if !env.Success {
		return env.ErrorOr("Error saving location")
	}

	s.LoadLocations(ctx)
	if id == 0 {
		s.toasts.Success("Location created")
	} else {
		s.toasts.Success("Location updated")
	}
	return ""
}

// DeleteLocation removes a location. System locations are rejected locally
// with no network call. Areas reload too: their denormalized location names
// may have changed.
func (s *Store) DeleteLocation(ctx context.Context, id int64) {
	s.mu.RLock()
	var isSystem bool
	for _, l := range s.locations {
		if l.ID == id {
			isSystem = l.IsSystem
			break
		}
	}
	s.mu.RUnlock()
	if isSystem {
		s.toasts.Error(ErrSystemLocation)
		return
	}

	env, err := s.api.Delete(ctx, fmt.Sprintf("/api/locations/%d", id))
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error deleting location"))
		return
	}
	s.LoadLocations(ctx)
	s.LoadAreas(ctx)
	s.toasts.Success("Location deleted")
}
