package store

import (
	"context"
	"fmt"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

func (s *Store) LoadUsers(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/users")
	if err != nil {
		s.toasts.Error("Error loading users")
		return
	}
	var users []models.User
	if env.Success && env.Decode(&users) == nil {
		s.mu.Lock()
		s.users = users
		s.mu.Unlock()
	}
}

// SaveUser creates (id 0) or updates an account. Errors are toasted;
// returns whether the save went through.
func (s *Store) SaveUser(ctx context.Context, id int64, req models.SaveUserRequest) bool {
	var env *models.Envelope
	var err error
	if id == 0 {
		env, err = s.api.Post(ctx, "/api/users", req)
	} else {
		env, err = s.api.Put(ctx, fmt.Sprintf("/api/users/%d", id), req)
	}
	if err != nil {
		s.failToast(err)
		return false
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error saving user"))
		return false
	}

	s.LoadUsers(ctx)
	if id == 0 {
		s.toasts.Success("User created")
	} else {
		s.toasts.Success("User updated")
	}
	return true
}

func (s *Store) DeleteUser(ctx context.Context, id int64) {
	env, err := s.api.Delete(ctx, fmt.Sprintf("/api/users/%d", id))
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error deleting user"))
		return
	}
	s.LoadUsers(ctx)
	s.toasts.Success("User deleted")
}
