package graphcache

import (
	"strconv"
	"sync"

	"castnet/pkg/graph"

	"golang.org/x/sync/singleflight"
)

// Cache builds interaction graphs from a fixed record table, one per minimum
// scene threshold. Graphs are immutable after build, so a cached graph is
// shared by every reader at that threshold; changing the threshold selects a
// different cached graph instead of mutating one in place.
type Cache struct {
	records []graph.Record

	cache   map[int]*graph.Graph
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// New creates a Cache over the given co-appearance records.
func New(records []graph.Record) *Cache {
	return &Cache{
		records: records,
		cache:   make(map[int]*graph.Graph),
	}
}

// Get returns the graph for the given threshold, building it on first use.
// Concurrent callers at the same threshold share a single build.
func (c *Cache) Get(minScenes int) *graph.Graph {
	c.cacheMu.RLock()
	if cached, ok := c.cache[minScenes]; ok {
		c.cacheMu.RUnlock()
		return cached
	}
	c.cacheMu.RUnlock()

	result, _, _ := c.group.Do(strconv.Itoa(minScenes), func() (any, error) {
		c.cacheMu.RLock()
		if cached, ok := c.cache[minScenes]; ok {
			c.cacheMu.RUnlock()
			return cached, nil
		}
		c.cacheMu.RUnlock()

		built := graph.Build(c.records, minScenes)

		c.cacheMu.Lock()
		c.cache[minScenes] = built
		c.cacheMu.Unlock()

		return built, nil
	})

	return result.(*graph.Graph)
}
