package store

import (
	"strings"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// Criteria drives the derived camera view. Enabled and Recording default to
// true: the dashboard opens showing only live, recording cameras.
type Criteria struct {
	Search    string
	Locations []string
	Areas     []string
	Enabled   bool
	Recording bool
}

// DefaultCriteria is the state ClearFilters resets to.
func DefaultCriteria() Criteria {
	return Criteria{Enabled: true, Recording: true}
}

// matches is the five-way AND predicate of the derived view.
func matches(cam models.Camera, c Criteria) bool {
	search := strings.ToLower(c.Search)
	matchesSearch := search == "" ||
		strings.Contains(strings.ToLower(cam.Name), search) ||
		strings.Contains(strings.ToLower(cam.Host), search) ||
		strings.Contains(strings.ToLower(cam.Location), search) ||
		strings.Contains(strings.ToLower(cam.Area), search)
	matchesLocation := len(c.Locations) == 0 || contains(c.Locations, cam.Location)
	matchesArea := len(c.Areas) == 0 || contains(c.Areas, cam.Area)
	matchesEnabled := !c.Enabled || cam.Enabled
	matchesRecording := !c.Recording || cam.Record

	return matchesSearch && matchesLocation && matchesArea && matchesEnabled && matchesRecording
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// FilteredCameras recomputes the derived view from the current collection
// and criteria. Pure over its inputs; recomputed on every read.
func (s *Store) FilteredCameras() []models.Camera {
	s.mu.RLock()
	cams := append([]models.Camera(nil), s.cameras...)
	c := s.criteria
	s.mu.RUnlock()

	out := make([]models.Camera, 0, len(cams))
	for _, cam := range cams {
		if matches(cam, c) {
			out = append(out, cam)
		}
	}
	return out
}

// Criteria returns the current filter state.
func (s *Store) Criteria() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

func (s *Store) SetSearch(q string) {
	s.mu.Lock()
	s.criteria.Search = q
	s.mu.Unlock()
}

func (s *Store) SetLocationFilter(names []string) {
	s.mu.Lock()
	s.criteria.Locations = names
	s.mu.Unlock()
}

func (s *Store) SetAreaFilter(names []string) {
	s.mu.Lock()
	s.criteria.Areas = names
	s.mu.Unlock()
}

func (s *Store) SetEnabledFilter(on bool) {
	s.mu.Lock()
	s.criteria.Enabled = on
	s.mu.Unlock()
}

func (s *Store) SetRecordingFilter(on bool) {
	s.mu.Lock()
	s.criteria.Recording = on
	s.mu.Unlock()
}

// ClearFilters resets every filter field atomically.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.criteria = DefaultCriteria()
	s.mu.Unlock()
}
