// Package registry owns the ordered habit collection and its persistence.
// Habits are stored as one JSON document of tagged records; the registry
// never inspects which concrete kind it is holding.
package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"tally/internal/habit"
	"tally/internal/logging"
)

// Registry is the single owner of the habit collection. Access is
// single-threaded by design; the bubbletea update loop is the only caller
// while the program runs.
type Registry struct {
	path   string
	habits []habit.Tracker
}

// New returns an empty registry persisting to path.
func New(path string) *Registry {
	return &Registry{path: path}
}

// Load reads the habit collection from path. A missing file yields an
// empty registry; a malformed file or unknown habit kind fails the load.
func Load(path string) (*Registry, error) {
	r := New(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("read habits: %w", err)
	}
	trackers, err := habit.DecodeTrackers(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	r.habits = trackers
	logging.L().Info("habits loaded",
		zap.String("path", path),
		zap.Int("count", len(trackers)))
	return r, nil
}

// Reload replaces the collection with the current on-disk state. Used when
// the watcher reports an external edit.
func (r *Registry) Reload() error {
	fresh, err := Load(r.path)
	if err != nil {
		return err
	}
	r.habits = fresh.habits
	return nil
}

// Save writes the collection atomically: encode, write to a temp file in
// the same directory, rename over the target.
func (r *Registry) Save() error {
	data, err := habit.EncodeTrackers(r.habits)
	if err != nil {
		return fmt.Errorf("encode habits: %w", err)
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".habits-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write habits: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace habits file: %w", err)
	}
	logging.L().Info("habits saved",
		zap.String("path", r.path),
		zap.Int("count", len(r.habits)))
	return nil
}

// Path returns the persistence location.
func (r *Registry) Path() string { return r.path }

// Len returns the number of habits.
func (r *Registry) Len() int { return len(r.habits) }

// All returns the ordered collection. Callers mutate habits through the
// Tracker interface; the slice itself belongs to the registry.
func (r *Registry) All() []habit.Tracker { return r.habits }

// Add appends a habit. Names are not unique-constrained; a duplicate is
// permitted and logged.
func (r *Registry) Add(t habit.Tracker) {
	if _, exists := r.Get(t.Name()); exists {
		logging.L().Warn("adding habit with duplicate name", zap.String("name", t.Name()))
	}
	r.habits = append(r.habits, t)
}

// Get returns the first habit with the given name.
func (r *Registry) Get(name string) (habit.Tracker, bool) {
	for _, t := range r.habits {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// DeleteByName removes the first habit with the given name and reports
// whether one was found.
func (r *Registry) DeleteByName(name string) bool {
	for i, t := range r.habits {
		if t.Name() == name {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			return true
		}
	}
	return false
}
