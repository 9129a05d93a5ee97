package schedule

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateKey is returned when a keyed collection already holds a site key.
var ErrDuplicateKey = errors.New("duplicate site key")

// Collection holds the records of one source in insertion order.
// A keyed collection indexes records by site key and rejects duplicates;
// an unkeyed one is a plain list.
type Collection struct {
	name    string
	keyed   bool
	records []*WorkDay
	index   map[string]*WorkDay
}

// NewCollection creates an empty collection.
func NewCollection(name string, keyed bool) *Collection {
	return &Collection{
		name:  name,
		keyed: keyed,
		index: make(map[string]*WorkDay),
	}
}

// Name returns the source name.
func (c *Collection) Name() string {
	return c.name
}

// Keyed reports whether records are indexed by site key.
func (c *Collection) Keyed() bool {
	return c.keyed
}

// Add appends a record. Adding a site key twice to a keyed collection fails.
func (c *Collection) Add(wd *WorkDay) error {
	if c.keyed {
		if prev, exists := c.index[wd.SiteKey]; exists {
			return fmt.Errorf("%w: %s in %s (rows %d and %d)", ErrDuplicateKey, wd.SiteKey, c.name, prev.Row, wd.Row)
		}
		c.index[wd.SiteKey] = wd
	}
	c.records = append(c.records, wd)
	return nil
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Records returns the records in insertion order.
func (c *Collection) Records() []*WorkDay {
	return c.records
}

// Get looks a record up by site key. Always misses on an unkeyed collection.
func (c *Collection) Get(key string) (*WorkDay, bool) {
	wd, ok := c.index[key]
	return wd, ok
}

// Keys returns the site keys in ascending order.
func (c *Collection) Keys() []string {
	keys := make([]string, 0, len(c.index))
	for key := range c.index {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Active returns the records with the given status, in insertion order.
func (c *Collection) Active(status string) []*WorkDay {
	var out []*WorkDay
	for _, wd := range c.records {
		if wd.IsActive(status) {
			out = append(out, wd)
		}
	}
	return out
}
