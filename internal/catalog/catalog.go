// Package catalog runs one invocation's lifecycle over the routes data file:
// load, apply one operation, save when the operation changed the catalog.
package catalog

import (
	"github.com/InternatManhole/route-catalog/internal/config"
	"github.com/InternatManhole/route-catalog/internal/console"
	"github.com/InternatManhole/route-catalog/internal/logging"
	"github.com/InternatManhole/route-catalog/internal/routes"
	"github.com/InternatManhole/route-catalog/internal/storage"
)

type Catalog struct {
	store  *storage.JSONStore
	sink   *console.Sink
	routes []routes.Route
	dirty  bool
}

// Open loads the catalog stored in cfg.DataFile.
func Open(cfg *config.Config, sink *console.Sink) (*Catalog, error) {
	store := storage.NewJSONStore(cfg.DataFile, sink)
	rs, err := store.Load()
	if err != nil {
		return nil, err
	}
	if !routes.IsSorted(rs) {
		logging.GetLogger().Verbose("Routes in %s are not ordered by number, new routes may land out of order", cfg.DataFile)
	}
	return &Catalog{
		store:  store,
		sink:   sink,
		routes: rs,
	}, nil
}

func (c *Catalog) Routes() []routes.Route {
	return c.routes
}

// Add inserts a route. The catalog is saved on Close even when the route was a duplicate.
func (c *Catalog) Add(origin, destination string, number int) {
	c.routes = routes.Add(c.sink, c.routes, origin, destination, number)
	c.dirty = true
}

func (c *Catalog) Select(point string) []routes.Route {
	return routes.Select(c.routes, point)
}

// Render prints rs to the catalog's console.
func (c *Catalog) Render(rs []routes.Route) error {
	return routes.Render(c.sink.Writer(), rs)
}

// Close saves the catalog if an operation modified it.
func (c *Catalog) Close() error {
	if !c.dirty {
		logging.GetLogger().EvenMoreVerbose("Catalog unchanged, not saving %s", c.store.Path())
		return nil
	}
	if err := c.store.Save(c.routes); err != nil {
		return err
	}
	c.dirty = false
	return nil
}
