package mono

import (
	"cmp"

	"github.com/hupe1980/fixedvec"
)

// Foldl folds v's components left to right.
func Foldl[A, E any](v Vector[E], acc A, f func(A, E) A) A {
	return fixedvec.Foldl[A, E](Bridge(v), acc, f)
}

// Foldr folds v's components right to left.
func Foldr[A, E any](v Vector[E], acc A, f func(E, A) A) A {
	return fixedvec.Foldr[A, E](Bridge(v), acc, f)
}

// Foldl1 folds left to right using the first component as the seed.
// Arity must be at least 1; it panics otherwise.
func Foldl1[E any](v Vector[E], f func(E, E) E) E {
	return fixedvec.Foldl1[E](Bridge(v), f)
}

// IFoldl is Foldl with the component index passed to f.
func IFoldl[A, E any](v Vector[E], acc A, f func(A, int, E) A) A {
	return fixedvec.IFoldl[A, E](Bridge(v), acc, f)
}

// IFoldr is Foldr with the component index passed to f.
func IFoldr[A, E any](v Vector[E], acc A, f func(int, E, A) A) A {
	return fixedvec.IFoldr[A, E](Bridge(v), acc, f)
}

// Fold combines v's components with m, left to right, starting from
// m.Empty.
func Fold[M any](v Vector[M], m fixedvec.Monoid[M]) M {
	return fixedvec.Fold[M](Bridge(v), m)
}

// FoldMap maps each component through f and combines the images with
// m, left to right, starting from m.Empty.
func FoldMap[M, E any](v Vector[E], m fixedvec.Monoid[M], f func(E) M) M {
	return fixedvec.FoldMap[M, E](Bridge(v), m, f)
}

// FoldlM is Foldl with a fallible step, applied in ascending index
// order and stopping at the first error.
func FoldlM[A, E any](v Vector[E], acc A, f func(A, E) (A, error)) (A, error) {
	return fixedvec.FoldlM[A, E](Bridge(v), acc, f)
}

// IFoldlM is IFoldl with a fallible step, applied in ascending index
// order and stopping at the first error.
func IFoldlM[A, E any](v Vector[E], acc A, f func(A, int, E) (A, error)) (A, error) {
	return fixedvec.IFoldlM[A, E](Bridge(v), acc, f)
}

// Sum returns the sum of v's components.
func Sum[E fixedvec.Number](v Vector[E]) E {
	return fixedvec.Sum[E](Bridge(v))
}

// Max returns the largest component. Arity must be at least 1; it
// panics otherwise.
func Max[E cmp.Ordered](v Vector[E]) E {
	return fixedvec.Max[E](Bridge(v))
}

// Min returns the smallest component. Arity must be at least 1; it
// panics otherwise.
func Min[E cmp.Ordered](v Vector[E]) E {
	return fixedvec.Min[E](Bridge(v))
}

// And reports whether every component is true.
func And(v Vector[bool]) bool {
	return fixedvec.And(Bridge(v))
}

// Or reports whether at least one component is true.
func Or(v Vector[bool]) bool {
	return fixedvec.Or(Bridge(v))
}

// All reports whether pred holds for every component.
func All[E any](v Vector[E], pred func(E) bool) bool {
	return fixedvec.All[E](Bridge(v), pred)
}

// Any reports whether pred holds for at least one component.
func Any[E any](v Vector[E], pred func(E) bool) bool {
	return fixedvec.Any[E](Bridge(v), pred)
}

// Find returns the first component satisfying pred, in index order.
// The second result reports whether one was found.
func Find[E any](v Vector[E], pred func(E) bool) (E, bool) {
	return fixedvec.Find[E](Bridge(v), pred)
}
