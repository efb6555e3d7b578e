package areamap

import (
	"sync"

	"areamap/internal/scene"
)

// BuildFunc derives the map of one area.
type BuildFunc func(area scene.AreaID) *Data

// Cache keeps the most recently built map per area. Entries are never
// refreshed on their own: if the host moves colliders after the first build
// the cache keeps serving the old geometry until Invalidate is called.
type Cache struct {
	build BuildFunc

	mu      sync.Mutex
	entries map[scene.AreaID]*Data
}

func NewCache(build BuildFunc) *Cache {
	return &Cache{build: build, entries: map[scene.AreaID]*Data{}}
}

// NewCatalogCache builds from a catalog with Build.
func NewCatalogCache(cat scene.Catalog) *Cache {
	return NewCache(func(area scene.AreaID) *Data { return Build(area, cat) })
}

// GetOrBuild returns the cached map of area, building it on first use.
func (c *Cache) GetOrBuild(area scene.AreaID) *Data {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.entries[area]; ok {
		return d
	}
	d := c.build(area)
	c.entries[area] = d
	return d
}

// Invalidate drops the entry for area so the next lookup rebuilds it.
func (c *Cache) Invalidate(area scene.AreaID) {
	c.mu.Lock()
	delete(c.entries, area)
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
