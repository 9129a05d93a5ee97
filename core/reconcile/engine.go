package reconcile

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnkeyed is returned when a source without keys is reconciled.
var ErrUnkeyed = errors.New("source has no site key")

// ReconcileAll performs a full reconciliation between a and b.
// It computes the union of keys, sets presence flags, and compares the fields
// of every participating pair present in both sources.
// Swapping a and b swaps OnlyInA and OnlyInB.
func ReconcileAll(spec *Spec, a, b Source) (*Report, error) {
	if err := checkKeyed(a, b); err != nil {
		return nil, err
	}

	indexA, indexB := a.Index(), b.Index()
	unionKeys := buildUnion(indexA, indexB)

	report := &Report{
		Adapter:    spec.Adapter.Name(),
		NameA:      a.Name(),
		NameB:      b.Name(),
		Results:    make([]Result, 0, len(unionKeys)),
		OnlyInA:    []string{},
		OnlyInB:    []string{},
		Mismatches: []Mismatch{},
		Skipped:    []Skip{},
	}
	for key := range unionKeys {
		report.Results = append(report.Results, buildResult(key, indexA, indexB, spec.Adapter))
	}

	// Sort results by key for deterministic output
	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Key < report.Results[j].Key
	})

	for _, result := range report.Results {
		switch {
		case result.InA && !result.InB:
			report.OnlyInA = append(report.OnlyInA, result.Key)
		case result.InB && !result.InA:
			report.OnlyInB = append(report.OnlyInB, result.Key)
		}
		if result.SkipReason != "" {
			report.Skipped = append(report.Skipped, Skip{Key: result.Key, Name: result.Name, Reason: result.SkipReason})
		}
		report.Mismatches = append(report.Mismatches, result.Mismatches...)
	}
	report.Summary = buildSummary(report.Results)

	return report, nil
}

// ReconcileOne performs a targeted reconciliation for a single key.
// A key present in neither source yields a result with both presence flags unset.
func ReconcileOne(spec *Spec, a, b Source, key string) (*Result, error) {
	if err := checkKeyed(a, b); err != nil {
		return nil, err
	}
	result := buildResult(key, a.Index(), b.Index(), spec.Adapter)
	return &result, nil
}

func checkKeyed(a, b Source) error {
	for _, src := range []Source{a, b} {
		if !src.Keyed() {
			return fmt.Errorf("reconcile %s: %w", src.Name(), ErrUnkeyed)
		}
	}
	return nil
}

// buildUnion creates a set of all keys present in either source.
func buildUnion(indexA, indexB map[string]Item) map[string]struct{} {
	union := make(map[string]struct{}, len(indexA)+len(indexB))
	for key := range indexA {
		union[key] = struct{}{}
	}
	for key := range indexB {
		union[key] = struct{}{}
	}
	return union
}

// buildResult creates a Result for a single key.
func buildResult(key string, indexA, indexB map[string]Item, adapter Adapter) Result {
	itemA, inA := indexA[key]
	itemB, inB := indexB[key]

	result := Result{
		Key:        key,
		InA:        inA,
		InB:        inB,
		Mismatches: []Mismatch{},
	}
	if !inA && !inB {
		return result
	}
	if !inA {
		itemA = nil
	}
	if !inB {
		itemB = nil
	}
	result.Name = adapter.ResolveName(itemA, itemB)

	// Compare fields if both present
	if inA && inB && adapter.Participates(itemA, itemB) {
		if reason := adapter.SkipReason(itemA, itemB); reason != "" {
			result.SkipReason = reason
			return result
		}
		result.Compared = true
		if mismatches := adapter.CompareFields(key, itemA, itemB); len(mismatches) > 0 {
			result.Mismatches = mismatches
		}
	}

	return result
}
