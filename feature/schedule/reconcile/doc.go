// Package reconcile plugs work-day collections into the generic reconcile engine.
//
// Records are matched by site key. A pair is compared only when the first
// record carries the active status, and never when either record has a date
// error. Name, declared day count, listed date total and the date sets are all
// compared; each difference is reported as its own mismatch.
package reconcile
