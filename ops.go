package fixedvec

// At returns v's element at index i. It is Vector.At as a free
// function, for symmetry with the rest of the operation set.
func At[E any](v Vector[E], i int) E { return v.At(i) }

// Head returns the first element. It panics if v is empty.
func Head[E any](v Vector[E]) E {
	if v.Len() == 0 {
		panic("fixedvec: Head of empty vector")
	}
	return v.At(0)
}

// Tail returns a vector holding all elements but the first, in order.
// It panics if v is empty.
func Tail[E any](v Vector[E]) Vec[E] {
	n := v.Len()
	if n == 0 {
		panic("fixedvec: Tail of empty vector")
	}
	elems := make([]E, n-1)
	for i := range elems {
		elems[i] = v.At(i + 1)
	}
	return Vec[E]{elems: elems}
}

// Reverse returns v's elements in reverse index order.
func Reverse[E any](v Vector[E]) Vec[E] {
	n := v.Len()
	elems := make([]E, n)
	for i := range elems {
		elems[i] = v.At(n - 1 - i)
	}
	return Vec[E]{elems: elems}
}

// Equal reports whether a and b have the same length and equal
// elements at every index. Vectors of different lengths are
// structurally unequal, not a precondition violation.
func Equal[E comparable](a, b Vector[E]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}
