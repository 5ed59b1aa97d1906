package store

import (
	"context"
	"fmt"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// ErrSystemRole mirrors the server-side guard on seeded roles.
const ErrSystemRole = "System roles cannot be deleted"

func (s *Store) LoadRoles(ctx context.Context) {
	env, err := s.api.Get(ctx, "/api/roles")
	if err != nil {
		s.toasts.Error("Error loading roles")
		return
	}
	var roles []models.RoleWithPermissions
	if env.Success && env.Decode(&roles) == nil {
		s.mu.Lock()
		s.roles = roles
		s.mu.Unlock()
	}
}

// SaveRole creates (id 0) or updates a role with its permission set.
func (s *Store) SaveRole(ctx context.Context, id int64, req models.SaveRoleRequest) bool {
	var env *models.Envelope
	var err error
	if id == 0 {
		env, err = s.api.Post(ctx, "/api/roles", req)
	} else {
		env, err = s.api.Put(ctx, fmt.Sprintf("/api/roles/%d", id), req)
	}
	if err != nil {
		s.failToast(err)
		return false
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error saving role"))
		return false
	}

	s.LoadRoles(ctx)
	if id == 0 {
		s.toasts.Success("Role created")
	} else {
		s.toasts.Success("Role updated")
	}
	return true
}

// DeleteRole removes a role. System roles are rejected locally before any
// network call.
func (s *Store) DeleteRole(ctx context.Context, id int64) {
	s.mu.RLock()
	var isSystem bool
	for _, r := range s.roles {
		if r.ID == id {
			isSystem = r.IsSystem
			break
		}
	}
	s.mu.RUnlock()
	if isSystem {
		s.toasts.Error(ErrSystemRole)
		return
	}

	env, err := s.api.Delete(ctx, fmt.Sprintf("/api/roles/%d", id))
	if err != nil {
		s.failToast(err)
		return
	}
	if !env.Success {
		s.toasts.Error(env.ErrorOr("Error deleting role"))
		return
	}
	s.LoadRoles(ctx)
	s.toasts.Success("Role deleted")
}
