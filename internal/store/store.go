// Package store holds the client-side caches that mirror server-owned
// resources. Every mutation goes through the API client and refreshes the
// affected collection on success; a load replaces its collection wholesale,
// never partially.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/CARMI-Logistics/sarv-cli/internal/api"
	"github.com/CARMI-Logistics/sarv-cli/internal/toast"
	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// Store is the process-wide resource cache. Construct one instance at
// startup and pass it down; internals are only ever mutated by its own
// operations.
type Store struct {
	api    *api.Client
	toasts *toast.Queue
	log    zerolog.Logger

	mu            sync.RWMutex
	cameras       []models.Camera
	locations     []models.Location
	areas         []models.AreaWithLocation
	mosaics       []models.MosaicWithCameras
	users         []models.User
	roles         []models.RoleWithPermissions
	captures      []models.Capture
	notifications []models.Notification
	unreadCount   int64
	shares        []models.MosaicShare
	probe         map[string]bool
	statuses      map[int64]string
	thumbnails    bool
	criteria      Criteria

	statusPoll *Poller
	notifyPoll *Poller
}

// New wires a store to its API client and feedback queue.
func New(client *api.Client, toasts *toast.Queue, log zerolog.Logger) *Store {
	s := &Store{
		api:        client,
		toasts:     toasts,
		log:        log,
		probe:      map[string]bool{},
		statuses:   map[int64]string{},
		thumbnails: true,
		criteria:   DefaultCriteria(),
	}
	s.statusPoll = NewPoller("status", PollInterval, s.LoadStatuses, log)
	s.notifyPoll = NewPoller("notifications", PollInterval, s.LoadNotificationSummary, log)
	return s
}

// LoadAll fans out the initial loads concurrently, waits for all of them to
// settle (a slow or failing load never blocks the others), then starts both
// polling jobs.
func (s *Store) LoadAll(ctx context.Context) {
	loads := []func(context.Context){
		s.LoadLocations,
		s.LoadAreas,
		s.LoadCameras,
		s.LoadMosaics,
		s.LoadUsers,
		s.LoadRoles,
		s.LoadCaptures,
		s.LoadShares,
		s.LoadThumbnailSetting,
	}

	var wg sync.WaitGroup
	for _, load := range loads {
		load := load
		wg.Add(1)
		go func() {
			defer wg.Done()
			load(ctx)
		}()
	}
	wg.Wait()

	s.statusPoll.Start()
	s.notifyPoll.Start()
}

// StopAll stops both polling jobs. Required counterpart of LoadAll on
// teardown; in-flight requests still complete.
func (s *Store) StopAll() {
	s.statusPoll.Stop()
	s.notifyPoll.Stop()
}

// failToast reports a transport-level failure for a user-initiated
// mutation. Session loss gets its own message; everything else is a
// generic connectivity error.
func (s *Store) failToast(err error) {
	if errors.Is(err, api.ErrSessionExpired) || errors.Is(err, api.ErrNoCredential) {
		s.toasts.Error("Session expired, please log in again")
		return
	}
	s.toasts.Error("Connection error")
}

// Snapshot accessors. Each returns a copy so callers cannot reach into the
// cache.

func (s *Store) Cameras() []models.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Camera(nil), s.cameras...)
}

func (s *Store) Locations() []models.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Location(nil), s.locations...)
}

func (s *Store) Areas() []models.AreaWithLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AreaWithLocation(nil), s.areas...)
}

func (s *Store) Mosaics() []models.MosaicWithCameras {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MosaicWithCameras(nil), s.mosaics...)
}

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

func (s *Store) Roles() []models.RoleWithPermissions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.RoleWithPermissions(nil), s.roles...)
}

func (s *Store) Captures() []models.Capture {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Capture(nil), s.captures...)
}

func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}

func (s *Store) UnreadCount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadCount
}

func (s *Store) Shares() []models.MosaicShare {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MosaicShare(nil), s.shares...)
}

// Statuses returns the liveness state per currently-loaded camera id.
func (s *Store) Statuses() map[int64]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int64]string, len(s.statuses))
	for k, v := range s.statuses {
		out[k] = v
	}
	return out
}

func (s *Store) ThumbnailsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.thumbnails
}
