package store

import (
	"context"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// LoadStatuses runs the liveness probe and folds the result into the
// per-camera status map. Silent on failure: this is the status poll body
// and whichever response lands last wins.
func (s *Store) LoadStatuses(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/cameras/status")
	if err != nil || !env.Success {
		return
	}
	var probes []models.CameraStatus
	if env.Decode(&probes) != nil {
		return
	}

	ready := make(map[string]bool, len(probes))
	for _, p := range probes {
		ready[p.Name] = p.Ready
	}

	s.mu.Lock()
	s.probe = ready
	s.rebuildStatusLocked()
	s.mu.Unlock()
}

// rebuildStatusLocked recomputes the status map so it holds exactly one
// entry per currently-loaded camera. Disabled cameras are always reported
// disabled, whatever the probe said. Caller holds s.mu.
func (s *Store) rebuildStatusLocked() {
	st := make(map[int64]string, len(s.cameras))
	for _, cam := range s.cameras {
		switch {
		case !cam.Enabled:
			st[cam.ID] = models.StatusDisabled
		case s.probe[cam.Name]:
			st[cam.ID] = models.StatusOnline
		default:
			st[cam.ID] = models.StatusOffline
		}
	}
	s.statuses = st
}
