package reconcile

// Adapter defines the model-specific part of a reconciliation.
// The engine owns key matching and presence; the adapter decides which pairs
// are compared and how their fields differ.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "workday").
	Name() string

	// ResolveName returns the display name of an entity given the items of both sources.
	// Either item may be nil if not present in that source.
	ResolveName(a, b Item) string

	// Participates reports whether a pair present in both sources is field-compared.
	// A pair that does not participate is neither compared nor skipped.
	Participates(a, b Item) bool

	// SkipReason returns a non-empty reason when a participating pair cannot be
	// compared, e.g. because one side holds unusable data.
	SkipReason(a, b Item) string

	// CompareFields compares mapped fields and returns one Mismatch per differing field.
	// Every field is evaluated; the first difference does not stop the comparison.
	// Both items are guaranteed to be non-nil when this is called.
	CompareFields(key string, a, b Item) []Mismatch
}

// Source is one side of a reconciliation.
type Source interface {
	// Name identifies the source in results (e.g., "first").
	Name() string

	// Keyed reports whether items can be matched by key. Unkeyed sources cannot be reconciled.
	Keyed() bool

	// Index returns the items indexed by entity key.
	Index() map[string]Item
}
