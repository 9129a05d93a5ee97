package reconcile

import (
	"workday-audit/core/reconcile"
	"workday-audit/feature/schedule"
)

// CollectionSource exposes a schedule collection as a reconcile.Source.
type CollectionSource struct {
	collection *schedule.Collection
}

// NewSource wraps a collection.
func NewSource(c *schedule.Collection) *CollectionSource {
	return &CollectionSource{collection: c}
}

// Name returns the collection name.
func (s *CollectionSource) Name() string {
	return s.collection.Name()
}

// Keyed reports whether the collection is indexed by site key.
func (s *CollectionSource) Keyed() bool {
	return s.collection.Keyed()
}

// Index returns the records by site key.
func (s *CollectionSource) Index() map[string]reconcile.Item {
	index := make(map[string]reconcile.Item, s.collection.Len())
	for _, key := range s.collection.Keys() {
		wd, _ := s.collection.Get(key)
		index[key] = wd
	}
	return index
}
