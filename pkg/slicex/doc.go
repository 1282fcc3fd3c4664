// Package slicex provides generic slice helpers: transformation (Map,
// Filter, Reduce), search (Contains, IndexOf, First, Last), set-style
// operations (Unique, Difference, Intersection) and grouping.
//
// Helpers never mutate their input; where the result can share the input's
// backing array (Chunk) the documentation says so.
package slicex
