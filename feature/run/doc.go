// Package run wires loading, validation, the day query and reconciliation
// into the three user-facing operations: Check, Day and Site.
//
// Each operation returns a Summary holding every per-check result and the
// rendered report sections. AllPassed is the conjunction of the results.
package run
