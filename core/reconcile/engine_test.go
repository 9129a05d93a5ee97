package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockItem is a test entity
type mockItem struct {
	name   string
	active bool
	broken bool
}

// mockAdapter is a simple test adapter
type mockAdapter struct{}

func (m *mockAdapter) Name() string {
	return "mock"
}

func (m *mockAdapter) ResolveName(a, b Item) string {
	if a != nil {
		return a.(mockItem).name
	}
	if b != nil {
		return b.(mockItem).name
	}
	return ""
}

func (m *mockAdapter) Participates(a, _ Item) bool {
	return a.(mockItem).active
}

func (m *mockAdapter) SkipReason(a, b Item) string {
	if a.(mockItem).broken || b.(mockItem).broken {
		return "broken"
	}
	return ""
}

func (m *mockAdapter) CompareFields(key string, a, b Item) []Mismatch {
	if a.(mockItem).name != b.(mockItem).name {
		return []Mismatch{{Key: key, Field: "name", A: a.(mockItem).name, B: b.(mockItem).name}}
	}
	return nil
}

// mockSource is a simple test source
type mockSource struct {
	name  string
	keyed bool
	items map[string]Item
}

func (s *mockSource) Name() string { return s.name }
func (s *mockSource) Keyed() bool { return s.keyed }
func (s *mockSource) Index() map[string]Item { return s.items }

func source(name string, items map[string]Item) *mockSource {
	return &mockSource{name: name, keyed: true, items: items}
}

// TestReconcileAll_UnionKeys tests that the union of all keys is built correctly.
func TestReconcileAll_UnionKeys(t *testing.T) {
	a := source("first", map[string]Item{
		"A": mockItem{name: "a", active: true},
		"B": mockItem{name: "b", active: true},
	})
	b := source("second", map[string]Item{
		"B": mockItem{name: "b"},
		"C": mockItem{name: "c"},
	})

	report, err := ReconcileAll(&Spec{Adapter: &mockAdapter{}}, a, b)
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	assert.Equal(t, "A", report.Results[0].Key)
	assert.Equal(t, "B", report.Results[1].Key)
	assert.Equal(t, "C", report.Results[2].Key)

	assert.Equal(t, []string{"A"}, report.OnlyInA)
	assert.Equal(t, []string{"C"}, report.OnlyInB)
	assert.False(t, report.KeysMatched())
	assert.True(t, report.FieldsMatched())
	assert.False(t, report.AllMatched())

	assert.Equal(t, "mock", report.Adapter)
	assert.Equal(t, "first", report.NameA)
	assert.Equal(t, "second", report.NameB)
}

// TestReconcileAll_PresenceFlags tests that presence flags are set correctly.
func TestReconcileAll_PresenceFlags(t *testing.T) {
	a := source("first", map[string]Item{"A": mockItem{name: "a"}, "B": mockItem{name: "b"}})
	b := source("second", map[string]Item{"B": mockItem{name: "b"}, "C": mockItem{name: "c"}})

	report, err := ReconcileAll(&Spec{Adapter: &mockAdapter{}}, a, b)
	require.NoError(t, err)

	resultMap := make(map[string]Result)
	for _, r := range report.Results {
		resultMap[r.Key] = r
	}

	assert.True(t, resultMap["A"].InA)
	assert.False(t, resultMap["A"].InB)
	assert.True(t, resultMap["B"].InA)
	assert.True(t, resultMap["B"].InB)
	assert.False(t, resultMap["C"].InA)
	assert.True(t, resultMap["C"].InB)
	assert.Equal(t, "c", resultMap["C"].Name)
}

func TestReconcileAll_Mismatches(t *testing.T) {
	a := source("first", map[string]Item{
		"A": mockItem{name: "same", active: true},
		"B": mockItem{name: "left", active: true},
		"C": mockItem{name: "left"},
		"D": mockItem{name: "x", active: true, broken: true},
	})
	b := source("second", map[string]Item{
		"A": mockItem{name: "same"},
		"B": mockItem{name: "right"},
		"C": mockItem{name: "right"},
		"D": mockItem{name: "y"},
	})

	report, err := ReconcileAll(&Spec{Adapter: &mockAdapter{}}, a, b)
	require.NoError(t, err)

	assert.True(t, report.KeysMatched())
	assert.Equal(t, []Mismatch{{Key: "B", Field: "name", A: "left", B: "right"}}, report.Mismatches)
	assert.Equal(t, []Skip{{Key: "D", Name: "x", Reason: "broken"}}, report.Skipped)
	assert.False(t, report.AllMatched())

	assert.Equal(t, Summary{TotalKeys: 4, Compared: 2, Mismatched: 1, Skipped: 1}, report.Summary)

	// inactive pair is neither compared nor skipped
	assert.False(t, report.Results[2].Compared)
	assert.Empty(t, report.Results[2].SkipReason)
	assert.True(t, report.Results[0].Matched())
}

func TestReconcileAll_Symmetry(t *testing.T) {
	a := source("first", map[string]Item{"A": mockItem{name: "a", active: true}, "B": mockItem{name: "b", active: true}, "X": mockItem{}})
	b := source("second", map[string]Item{"B": mockItem{name: "b", active: true}, "Y": mockItem{}, "Z": mockItem{}})

	spec := &Spec{Adapter: &mockAdapter{}}
	forward, err := ReconcileAll(spec, a, b)
	require.NoError(t, err)
	backward, err := ReconcileAll(spec, b, a)
	require.NoError(t, err)

	assert.Equal(t, forward.OnlyInA, backward.OnlyInB)
	assert.Equal(t, forward.OnlyInB, backward.OnlyInA)
	assert.Equal(t, forward.Summary.OnlyInA, backward.Summary.OnlyInB)
}

func TestReconcileAll_Empty(t *testing.T) {
	report, err := ReconcileAll(&Spec{Adapter: &mockAdapter{}}, source("first", nil), source("second", nil))
	require.NoError(t, err)
	assert.True(t, report.AllMatched())
	assert.Empty(t, report.Results)
}

func TestReconcile_Unkeyed(t *testing.T) {
	a := source("first", nil)
	b := &mockSource{name: "second"}

	_, err := ReconcileAll(&Spec{Adapter: &mockAdapter{}}, a, b)
	assert.ErrorIs(t, err, ErrUnkeyed)
	assert.Contains(t, err.Error(), "second")

	_, err = ReconcileOne(&Spec{Adapter: &mockAdapter{}}, b, a, "K")
	assert.ErrorIs(t, err, ErrUnkeyed)
}

func TestReconcileOne(t *testing.T) {
	a := source("first", map[string]Item{"A": mockItem{name: "left", active: true}})
	b := source("second", map[string]Item{"A": mockItem{name: "right"}})
	spec := &Spec{Adapter: &mockAdapter{}}

	result, err := ReconcileOne(spec, a, b, "A")
	require.NoError(t, err)
	assert.True(t, result.InA)
	assert.True(t, result.InB)
	assert.True(t, result.Compared)
	assert.Len(t, result.Mismatches, 1)

	missing, err := ReconcileOne(spec, a, b, "nope")
	require.NoError(t, err)
	assert.False(t, missing.InA)
	assert.False(t, missing.InB)
	assert.Empty(t, missing.Name)
}

func TestPresence(t *testing.T) {
	assert.Equal(t, "present in both", Presence(Result{InA: true, InB: true}, "first", "second"))
	assert.Equal(t, "missing in second", Presence(Result{InA: true}, "first", "second"))
	assert.Equal(t, "missing in first", Presence(Result{InB: true}, "first", "second"))
	assert.Equal(t, "missing in first and second", Presence(Result{}, "first", "second"))
}
