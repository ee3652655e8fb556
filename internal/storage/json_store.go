package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/InternatManhole/route-catalog/internal/console"
	"github.com/InternatManhole/route-catalog/internal/logging"
	"github.com/InternatManhole/route-catalog/internal/routes"
)

// JSONStore persists the routes catalog as a single JSON file.
type JSONStore struct {
	path string
	sink *console.Sink
}

func NewJSONStore(path string, sink *console.Sink) *JSONStore {
	return &JSONStore{path: path, sink: sink}
}

func (s *JSONStore) Path() string {
	return s.path
}

// Load reads every route from the file. A missing file is an empty catalog.
func (s *JSONStore) Load() ([]routes.Route, error) {
	logger := logging.GetLogger()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Verbose("Data file %s does not exist, starting with an empty catalog", s.path)
		return []routes.Route{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load routes: open %q: %w", s.path, err)
	}
	defer f.Close()

	rs, err := Decode(f, s.sink)
	if err != nil {
		return nil, fmt.Errorf("load routes: %q: %w", s.path, err)
	}
	logger.Verbose("Loaded %d routes from %s", len(rs), s.path)
	return rs, nil
}

// Save replaces the file content with rs.
func (s *JSONStore) Save(rs []routes.Route) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("save routes: create %q: %w", s.path, err)
	}
	if err := Encode(f, rs); err != nil {
		f.Close()
		return fmt.Errorf("save routes: write %q: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save routes: close %q: %w", s.path, err)
	}
	logging.GetLogger().Verbose("Saved %d routes to %s", len(rs), s.path)
	return nil
}
