package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CARMI-Logistics/sarv-cli/internal/api"
	"github.com/CARMI-Logistics/sarv-cli/internal/toast"
	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

type memStore struct{ token string }

func (m *memStore) Load() string            { return m.token }
func (m *memStore) Save(token string) error { m.token = token; return nil }
func (m *memStore) Clear() error            { m.token = ""; return nil }

func writeOK(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(models.Envelope{Success: true, Data: raw})
}

func writeErr(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(models.Envelope{Success: false, Error: msg})
}

func newTestStore(t *testing.T, h http.Handler) (*Store, *toast.Queue) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	sess := api.NewSession(api.NewBearerCredentials(&memStore{token: "tok"}), nil, zerolog.Nop())
	client := api.New(srv.URL, sess, zerolog.Nop())
	toasts := toast.NewWithTTL(time.Minute)
	return New(client, toasts, zerolog.Nop()), toasts
}

func toastMessages(q *toast.Queue) []string {
	var out []string
	for _, it := range q.Items() {
		out = append(out, it.Message)
	}
	return out
}

func TestLoadCamerasReplacesCacheAndFeedsFilter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cameras", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, []models.Camera{{
			ID: 1, Name: "Cam1", Host: "10.0.0.5", Port: 554,
			Enabled: true, Record: true, Location: "Lobby", Area: "Entrance",
		}})
	})
	s, _ := newTestStore(t, mux)

	s.LoadCameras(context.Background())

	cams := s.Cameras()
	require.Len(t, cams, 1)
	assert.Equal(t, "Cam1", cams[0].Name)

	s.SetSearch("lobby")
	require.Len(t, s.FilteredCameras(), 1)
	assert.Equal(t, int64(1), s.FilteredCameras()[0].ID)

	// Enabled-only filter excludes a disabled camera.
	mux2 := http.NewServeMux()
	mux2.HandleFunc("/api/cameras", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, []models.Camera{{ID: 2, Name: "Cam2", Host: "10.0.0.6", Record: true}})
	})
	s2, _ := newTestStore(t, mux2)
	s2.LoadCameras(context.Background())
	s2.SetEnabledFilter(true)
	assert.Empty(t, s2.FilteredCameras())
}

func TestLoadCamerasConnectivityFailureToasts(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // dead endpoint

	sess := api.NewSession(api.NewBearerCredentials(&memStore{token: "tok"}), nil, zerolog.Nop())
	client := api.New(srv.URL, sess, zerolog.Nop())
	toasts := toast.NewWithTTL(time.Minute)
	s := New(client, toasts, zerolog.Nop())

	s.LoadCameras(context.Background())
	assert.Contains(t, toastMessages(toasts), "Error loading cameras")

	// Mosaic load stays silent on the same failure.
	s.LoadMosaics(context.Background())
	assert.Len(t, toasts.Items(), 1)
}

func TestSaveCameraReloadsOnSuccess(t *testing.T) {
	var loads int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cameras", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			atomic.AddInt32(&loads, 1)
			writeOK(w, []models.Camera{{ID: 7, Name: "New"}})
			return
		}
		writeOK(w, 7)
	})
	s, toasts := newTestStore(t, mux)

	require.True(t, s.SaveCamera(context.Background(), 0, models.Camera{Name: "New", Host: "h"}))
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
	require.Len(t, s.Cameras(), 1)
	assert.Contains(t, toastMessages(toasts), "Camera created")
}

func TestSaveCameraApplicationFailureSurfacesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cameras", func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, "duplicate name")
	})
	s, toasts := newTestStore(t, mux)

	assert.False(t, s.SaveCamera(context.Background(), 0, models.Camera{Name: "dup"}))
	assert.Contains(t, toastMessages(toasts), "duplicate name")
}

func TestDeleteSystemLocationNeverHitsNetwork(t *testing.T) {
	var deletes int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/locations", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, []models.Location{{ID: 1, Name: "Default", IsSystem: true}})
	})
	mux.HandleFunc("/api/locations/1", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&deletes, 1)
		writeOK(w, true)
	})
	s, toasts := newTestStore(t, mux)

	s.LoadLocations(context.Background())
	s.DeleteLocation(context.Background(), 1)

	assert.Equal(t, int32(0), atomic.LoadInt32(&deletes))
	assert.Contains(t, toastMessages(toasts), ErrSystemLocation)
}

func TestDeleteLocationReloadsAreasToo(t *testing.T) {
	var areaLoads int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/locations", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, []models.Location{{ID: 2, Name: "HQ"}})
	})
	mux.HandleFunc("/api/locations/2", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, true)
	})
	mux.HandleFunc("/api/areas", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&areaLoads, 1)
		writeOK(w, []models.AreaWithLocation{})
	})
	s, _ := newTestStore(t, mux)

	s.LoadLocations(context.Background())
	s.DeleteLocation(context.Background(), 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&areaLoads))
}

func TestCreateShareReloadsCollection(t *testing.T) {
	created := false
	mux := http.NewServeMux()
	mux.HandleFunc("/api/shares", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			created = true
			writeOK(w, models.MosaicShare{ID: 1, MosaicID: 1})
			return
		}
		if created {
			writeOK(w, []models.MosaicShare{{ID: 1, MosaicID: 1, Token: "abc"}})
			return
		}
		writeOK(w, []models.MosaicShare{})
	})
	s, _ := newTestStore(t, mux)

	msg := s.CreateShare(context.Background(), models.CreateShareRequest{
		MosaicID:      1,
		Emails:        []string{"a@x.com"},
		DurationHours: 4,
	})
	require.Empty(t, msg)

	shares := s.Shares()
	require.Len(t, shares, 1)
	assert.Equal(t, int64(1), shares[0].MosaicID)
}

func TestCreateShareReturnsInlineError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/shares", func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, "at least one email required")
	})
	s, _ := newTestStore(t, mux)

	msg := s.CreateShare(context.Background(), models.CreateShareRequest{MosaicID: 1})
	assert.Equal(t, "at least one email required", msg)
}

func TestToggleThumbnailsRoundTrips(t *testing.T) {
	enabled := true
	mux := http.NewServeMux()
	mux.HandleFunc("/api/captures/thumbnails/setting", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, enabled)
	})
	mux.HandleFunc("/api/captures/thumbnails/toggle", func(w http.ResponseWriter, r *http.Request) {
		enabled = !enabled
		writeOK(w, enabled)
	})
	s, _ := newTestStore(t, mux)

	ctx := context.Background()
	s.LoadThumbnailSetting(ctx)
	original := s.ThumbnailsEnabled()

	s.ToggleThumbnails(ctx)
	assert.Equal(t, !original, s.ThumbnailsEnabled())
	s.ToggleThumbnails(ctx)
	assert.Equal(t, original, s.ThumbnailsEnabled())
}

func TestSessionExpiryForcesLogoutWithoutRetry(t *testing.T) {
	var hits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cameras", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	navigated := false
	sess := api.NewSession(api.NewBearerCredentials(&memStore{token: "tok"}), func() { navigated = true }, zerolog.Nop())
	client := api.New(srv.URL, sess, zerolog.Nop())
	toasts := toast.NewWithTTL(time.Minute)
	s := New(client, toasts, zerolog.Nop())

	ok := s.SaveCamera(context.Background(), 0, models.Camera{Name: "x"})

	assert.False(t, ok)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.False(t, sess.IsAuthenticated())
	assert.True(t, navigated)
	assert.Contains(t, toastMessages(toasts), "Session expired, please log in again")
}

func TestStatusMapCoversEveryCameraAndPinsDisabled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cameras", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, []models.Camera{
			{ID: 1, Name: "front", Enabled: true, Record: true},
			{ID: 2, Name: "back", Enabled: true, Record: true},
			{ID: 3, Name: "old", Enabled: false, Record: true},
		})
	})
	mux.HandleFunc("/api/cameras/status", func(w http.ResponseWriter, r *http.Request) {
		// "old" reports ready, but it is disabled and must stay disabled.
		writeOK(w, []models.CameraStatus{
			{Name: "front", Ready: true},
			{Name: "old", Ready: true},
		})
	})
	s, _ := newTestStore(t, mux)

	ctx := context.Background()
	s.LoadCameras(ctx)
	s.LoadStatuses(ctx)

	st := s.Statuses()
	require.Len(t, st, 3)
	assert.Equal(t, models.StatusOnline, st[1])
	assert.Equal(t, models.StatusOffline, st[2])
	assert.Equal(t, models.StatusDisabled, st[3])
}

func TestNotificationSummaryAndOptimisticRead(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/notifications/summary", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, models.NotificationSummary{
			UnreadCount: 2,
			Notifications: []models.Notification{
				{ID: 1, Title: "a"},
				{ID: 2, Title: "b"},
			},
		})
	})
	mux.HandleFunc("/api/notifications/1/read", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, "ok")
	})
	mux.HandleFunc("/api/notifications/read-all", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, "ok")
	})
	s, _ := newTestStore(t, mux)

	ctx := context.Background()
	s.LoadNotificationSummary(ctx)
	require.Equal(t, int64(2), s.UnreadCount())

	s.MarkNotificationRead(ctx, 1)
	assert.Equal(t, int64(1), s.UnreadCount())
	assert.True(t, s.Notifications()[0].Read)

	// Marking the same one again must not decrement further.
	s.MarkNotificationRead(ctx, 1)
	assert.Equal(t, int64(1), s.UnreadCount())

	s.MarkAllNotificationsRead(ctx)
	assert.Equal(t, int64(0), s.UnreadCount())
	for _, n := range s.Notifications() {
		assert.True(t, n.Read)
	}
}

func TestLoadAllStartsPollersAndStopAllStopsThem(t *testing.T) {
	s, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, json.RawMessage("null"))
	}))

	s.LoadAll(context.Background())
	assert.True(t, s.statusPoll.Running())
	assert.True(t, s.notifyPoll.Running())

	s.StopAll()
	assert.False(t, s.statusPoll.Running())
	assert.False(t, s.notifyPoll.Running())
}
