// Package timex provides stateless helpers for common calendar arithmetic
// on time.Time values: day, week and month boundaries, leap years, age
// calculation and simple comparisons.
//
// All boundary helpers keep the input's location, so "start of day" means
// midnight in the time's own zone, not UTC.
package timex
