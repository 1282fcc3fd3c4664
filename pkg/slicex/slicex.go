package slicex

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Map transforms every element of s with fn, preserving order.
func Map[T, U any](s []T, fn func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of s for which fn is true.
func Filter[T any](s []T, fn func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reject returns the elements of s for which fn is false.
func Reject[T any](s []T, fn func(T) bool) []T {
	return Filter(s, func(v T) bool { return !fn(v) })
}

// Reduce folds s into a single value, starting from initial.
func Reduce[T, U any](s []T, initial U, fn func(U, T) U) U {
	acc := initial
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// Contains reports whether v occurs in s.
func Contains[T comparable](s []T, v T) bool {
	return IndexOf(s, v) >= 0
}

// IndexOf returns the index of the first occurrence of v, or -1.
func IndexOf[T comparable](s []T, v T) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}

// Unique returns s with duplicates removed, keeping first occurrences.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Chunk splits s into consecutive slices of at most size elements. A size
// below one yields nil. The chunks share s's backing array.
func Chunk[T any](s []T, size int) [][]T {
	if size < 1 || len(s) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		out = append(out, s[start:end])
	}
	return out
}

// First returns the first element and true, or the zero value and false
// for an empty slice.
func First[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

// Last returns the last element and true, or the zero value and false for
// an empty slice.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// Shuffle returns a random permutation of s without mutating the input.
func Shuffle[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Min returns the smallest element and true, or the zero value and false
// for an empty slice.
func Min[T constraints.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	lo := s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
	}
	return lo, true
}

// Max returns the largest element and true, or the zero value and false
// for an empty slice.
func Max[T constraints.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	hi := s[0]
	for _, v := range s[1:] {
		if v > hi {
			hi = v
		}
	}
	return hi, true
}

// Sum adds up all elements of s; zero for an empty slice.
func Sum[T constraints.Integer | constraints.Float](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// GroupBy buckets the elements of s by the key fn derives, preserving
// element order within each bucket.
func GroupBy[T any, K comparable](s []T, fn func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range s {
		k := fn(v)
		out[k] = append(out[k], v)
	}
	return out
}

// Difference returns the elements of a that do not occur in b.
func Difference[T comparable](a, b []T) []T {
	drop := make(map[T]struct{}, len(b))
	for _, v := range b {
		drop[v] = struct{}{}
	}
	return Filter(a, func(v T) bool {
		_, found := drop[v]
		return !found
	})
}

// Intersection returns the elements of a that also occur in b, without
// duplicates.
func Intersection[T comparable](a, b []T) []T {
	keep := make(map[T]struct{}, len(b))
	for _, v := range b {
		keep[v] = struct{}{}
	}
	return Unique(Filter(a, func(v T) bool {
		_, found := keep[v]
		return found
	}))
}
