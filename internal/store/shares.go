package store

import (
	"context"
	"fmt"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// LoadShares refreshes the share-link list. Silent on failure.
func (s *Store) LoadShares(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/shares")
	if err != nil {
		return
	}
	var shares []models.MosaicShare
	if env.Success && env.Decode(&shares) == nil {
		s.mu.Lock()
		s.shares = shares
		s.mu.Unlock()
	}
}

// CreateShare creates a tokenized share link for a mosaic and reloads the
// collection. Returns "" on success, otherwise the inline form error.
func (s *Store) CreateShare(ctx context.Context, req models.CreateShareRequest) string {
	env, err := s.api.Post(ctx, "/api/shares", req)
	if err != nil {
		return "Connection error"
	}
	if !env.Success {
		return env.ErrorOr("Error creating share link")
	}

	s.LoadShares(ctx)
	s.toasts.Success("Share link created")
	return ""
}

// ToggleShare flips a share link's active flag.
func (s *Store) ToggleShare(ctx context.Context, id int64) {
	env, err := s.api.Post(ctx, fmt.Sprintf("/api/shares/%d/toggle", id), nil)
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error updating share link"))
		return
	}
	s.LoadShares(ctx)
	s.toasts.Success("Share link updated")
}

func (s *Store) DeleteShare(ctx context.Context, id int64) {
	env, err := s.api.Delete(ctx, fmt.Sprintf("/api/shares/%d", id))
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error deleting share link"))
		return
	}
	s.LoadShares(ctx)
	s.toasts.Success("Share link deleted")
}
