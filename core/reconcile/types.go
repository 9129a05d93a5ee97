package reconcile

// Item is an entity of one source. Adapters define the concrete type.
type Item any

// Mismatch is a single field difference between the two sources.
type Mismatch struct {
	// Key is the entity key.
	Key string `json:"key" yaml:"key"`

	// Field is the label of the compared field, e.g. "name".
	Field string `json:"field" yaml:"field"`

	// A is the value in the first source.
	A string `json:"a" yaml:"a"`

	// B is the value in the second source.
	B string `json:"b" yaml:"b"`
}

// Result is the reconciliation output for a single key.
type Result struct {
	// Key is the entity key.
	Key string `json:"key" yaml:"key"`

	// Name is the display name of the entity.
	Name string `json:"name" yaml:"name"`

	// InA indicates whether the entity exists in the first source.
	InA bool `json:"in_a" yaml:"in_a"`

	// InB indicates whether the entity exists in the second source.
	InB bool `json:"in_b" yaml:"in_b"`

	// Compared is true when the fields of both items were compared.
	Compared bool `json:"compared" yaml:"compared"`

	// SkipReason is set when a participating pair could not be compared.
	SkipReason string `json:"skip_reason,omitempty" yaml:"skip_reason,omitempty"`

	// Mismatches holds the field differences, in adapter order.
	Mismatches []Mismatch `json:"mismatches" yaml:"mismatches"`
}

// Matched reports whether the key is present on both sides without differences.
func (r *Result) Matched() bool {
	return r.InA && r.InB && r.SkipReason == "" && len(r.Mismatches) == 0
}

// Skip is a pair excluded from field comparison.
type Skip struct {
	Key    string `json:"key" yaml:"key"`
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

// Report is the outcome of a full reconciliation.
type Report struct {
	// Adapter is the name of the adapter used.
	Adapter string `json:"adapter" yaml:"adapter"`

	// NameA and NameB are the source names.
	NameA string `json:"name_a" yaml:"name_a"`
	NameB string `json:"name_b" yaml:"name_b"`

	// Results contains one entry per key of the union, sorted by key.
	Results []Result `json:"results" yaml:"results"`

	// OnlyInA lists the keys missing from the second source, sorted.
	OnlyInA []string `json:"only_in_a" yaml:"only_in_a"`

	// OnlyInB lists the keys missing from the first source, sorted.
	OnlyInB []string `json:"only_in_b" yaml:"only_in_b"`

	// Mismatches lists every field difference, ordered by key.
	Mismatches []Mismatch `json:"mismatches" yaml:"mismatches"`

	// Skipped lists the participating pairs that could not be compared.
	Skipped []Skip `json:"skipped" yaml:"skipped"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary" yaml:"summary"`
}

// KeysMatched reports whether both sources hold the same key set.
func (r *Report) KeysMatched() bool {
	return len(r.OnlyInA) == 0 && len(r.OnlyInB) == 0
}

// FieldsMatched reports whether every compared pair agrees and none was skipped.
func (r *Report) FieldsMatched() bool {
	return len(r.Mismatches) == 0 && len(r.Skipped) == 0
}

// AllMatched reports whether the reconciliation found no difference at all.
func (r *Report) AllMatched() bool {
	return r.KeysMatched() && r.FieldsMatched()
}

// Summary provides aggregate statistics for a reconciliation.
type Summary struct {
	// TotalKeys is the number of distinct keys in either source.
	TotalKeys int `json:"total_keys" yaml:"total_keys"`

	// OnlyInA counts keys missing from the second source.
	OnlyInA int `json:"only_in_a" yaml:"only_in_a"`

	// OnlyInB counts keys missing from the first source.
	OnlyInB int `json:"only_in_b" yaml:"only_in_b"`

	// Compared counts pairs whose fields were compared.
	Compared int `json:"compared" yaml:"compared"`

	// Mismatched counts compared pairs with at least one differing field.
	Mismatched int `json:"mismatched" yaml:"mismatched"`

	// Skipped counts participating pairs that could not be compared.
	Skipped int `json:"skipped" yaml:"skipped"`
}

// Spec defines the configuration for a reconciliation operation.
type Spec struct {
	// Adapter provides model-specific reconciliation logic.
	Adapter Adapter
}
