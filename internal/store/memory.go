package store

import (
	"sync"

	"github.com/AngelCh415/ROI_GO/internal/models"
)

// Cache holds the four tables for the lifetime of the process. The load
// runs once; every later call returns the same snapshot (or the same
// error). Invalidation is restart only; nothing mutates after load.
type Cache struct {
	load func() (*models.Tables, error)

	once   sync.Once
	tables *models.Tables
	err    error
}

func NewCache(load func() (*models.Tables, error)) *Cache {
	return &Cache{load: load}
}

// Tables returns the loaded snapshot, loading on first use.
func (c *Cache) Tables() (*models.Tables, error) {
	c.once.Do(func() {
		c.tables, c.err = c.load()
	})
	return c.tables, c.err
}
