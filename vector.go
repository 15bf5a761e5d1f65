package fixedvec

import (
	"fmt"
	"slices"
)

// Vector is the read capability of a fixed-length vector: a length
// fixed for the lifetime of the value, and positional element access.
//
// Operations in this package accept any Vector and return concrete Vec
// values.
type Vector[E any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at index i. i must be in [0, Len()).
	At(i int) E
}

// Number is the constraint satisfied by the built-in numeric kinds.
// Sum and Basis require it.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Vec is the canonical fixed-length vector, backed by a slice whose
// length is fixed at construction. Vec values are immutable:
// constructors copy their input and operations return new values.
//
// The zero value is the empty vector.
type Vec[E any] struct {
	elems []E
}

var _ Vector[int] = Vec[int]{}

// Len returns the number of elements.
func (v Vec[E]) Len() int { return len(v.elems) }

// At returns the element at index i.
// It panics if i is not in [0, Len()).
func (v Vec[E]) At(i int) E {
	if i < 0 || i >= len(v.elems) {
		panic(fmt.Sprintf("fixedvec: index %d out of range [0,%d)", i, len(v.elems)))
	}
	return v.elems[i]
}

// Mk1 returns the vector (x1).
func Mk1[E any](x1 E) Vec[E] { return Vec[E]{elems: []E{x1}} }

// Mk2 returns the vector (x1, x2).
func Mk2[E any](x1, x2 E) Vec[E] { return Vec[E]{elems: []E{x1, x2}} }

// Mk3 returns the vector (x1, x2, x3).
func Mk3[E any](x1, x2, x3 E) Vec[E] { return Vec[E]{elems: []E{x1, x2, x3}} }

// Mk4 returns the vector (x1, x2, x3, x4).
func Mk4[E any](x1, x2, x3, x4 E) Vec[E] { return Vec[E]{elems: []E{x1, x2, x3, x4}} }

// Mk5 returns the vector (x1, x2, x3, x4, x5).
func Mk5[E any](x1, x2, x3, x4, x5 E) Vec[E] { return Vec[E]{elems: []E{x1, x2, x3, x4, x5}} }

// FromSlice returns a vector of length n holding a copy of xs.
// It panics unless len(xs) == n: a mismatched input is a caller bug
// and is never truncated or padded.
func FromSlice[E any](n int, xs []E) Vec[E] {
	if len(xs) != n {
		panic(fmt.Sprintf("fixedvec: FromSlice: got %d elements, want %d", len(xs), n))
	}
	return Vec[E]{elems: slices.Clone(xs)}
}

// ToSlice returns v's elements as a fresh slice, in index order.
func ToSlice[E any](v Vector[E]) []E {
	out := make([]E, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

// Replicate returns the length-n vector whose elements are all x.
func Replicate[E any](n int, x E) Vec[E] {
	elems := make([]E, n)
	for i := range elems {
		elems[i] = x
	}
	return Vec[E]{elems: elems}
}

// ReplicateM builds a length-n vector from n calls to f, made in index
// order. It stops at the first error and returns it.
func ReplicateM[E any](n int, f func() (E, error)) (Vec[E], error) {
	elems := make([]E, n)
	for i := range elems {
		x, err := f()
		if err != nil {
			return Vec[E]{}, err
		}
		elems[i] = x
	}
	return Vec[E]{elems: elems}, nil
}

// Generate returns the length-n vector whose element at index i is
// f(i).
func Generate[E any](n int, f func(i int) E) Vec[E] {
	elems := make([]E, n)
	for i := range elems {
		elems[i] = f(i)
	}
	return Vec[E]{elems: elems}
}

// GenerateM is Generate with a fallible f, called in index order,
// stopping at the first error.
func GenerateM[E any](n int, f func(i int) (E, error)) (Vec[E], error) {
	elems := make([]E, n)
	for i := range elems {
		x, err := f(i)
		if err != nil {
			return Vec[E]{}, err
		}
		elems[i] = x
	}
	return Vec[E]{elems: elems}, nil
}

// Unfold builds a length-n vector left to right from seed: each step
// produces the element at the current index and the seed for the next
// step.
func Unfold[E, S any](n int, seed S, f func(S) (E, S)) Vec[E] {
	elems := make([]E, n)
	for i := range elems {
		elems[i], seed = f(seed)
	}
	return Vec[E]{elems: elems}
}

// Basis returns the length-n unit vector along axis i: 1 at index i,
// 0 elsewhere. It panics if i is not in [0, n).
func Basis[E Number](n, i int) Vec[E] {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("fixedvec: Basis axis %d out of range [0,%d)", i, n))
	}
	elems := make([]E, n)
	elems[i] = 1
	return Vec[E]{elems: elems}
}
