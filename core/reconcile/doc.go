// Package reconcile provides a generic system for reconciling two keyed sources
// of the same entities.
//
// # Architecture
//
// The reconcile system consists of two components:
//
// 1. Engine: core reconciliation logic that builds a union of keys from both sources,
// detects presence/absence, and collects field mismatches into a Report.
//
// 2. Adapter: model-specific logic that decides which pairs are compared, which
// pairs must be skipped, and how fields differ.
//
// Sources that cannot be matched by key are rejected with ErrUnkeyed.
//
// # Usage Example
//
//	spec := &reconcile.Spec{Adapter: workdays.NewAdapter(statusAtWork)}
//
//	// Full reconciliation
//	report, err := reconcile.ReconcileAll(spec, first, second)
//
//	// Targeted reconciliation
//	result, err := reconcile.ReconcileOne(spec, first, second, "S-001-0001")
package reconcile
