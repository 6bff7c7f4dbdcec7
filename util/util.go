// Package util holds small generic helpers shared across packages, kept
// to the one the teacher's util package still earns its keep with once
// STON has no name-keyed maps to iterate deterministically.
package util

// TransformSlice applies converter to each element of in and returns the
// results, preserving order and length.
func TransformSlice[T any, R any](in []T, converter func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = converter(v)
	}
	return out
}
