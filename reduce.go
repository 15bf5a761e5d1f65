package fixedvec

import "cmp"

// Sum returns the sum of v's elements, 0 for the empty vector.
func Sum[E Number](v Vector[E]) E {
	var acc E
	for i := 0; i < v.Len(); i++ {
		acc += v.At(i)
	}
	return acc
}

// Max returns the largest element. It panics if v is empty.
func Max[E cmp.Ordered](v Vector[E]) E {
	if v.Len() == 0 {
		panic("fixedvec: Max of empty vector")
	}
	best := v.At(0)
	for i := 1; i < v.Len(); i++ {
		if x := v.At(i); x > best {
			best = x
		}
	}
	return best
}

// Min returns the smallest element. It panics if v is empty.
func Min[E cmp.Ordered](v Vector[E]) E {
	if v.Len() == 0 {
		panic("fixedvec: Min of empty vector")
	}
	best := v.At(0)
	for i := 1; i < v.Len(); i++ {
		if x := v.At(i); x < best {
			best = x
		}
	}
	return best
}

// And reports whether every element is true; true for the empty
// vector.
func And(v Vector[bool]) bool {
	for i := 0; i < v.Len(); i++ {
		if !v.At(i) {
			return false
		}
	}
	return true
}

// Or reports whether at least one element is true; false for the
// empty vector.
func Or(v Vector[bool]) bool {
	for i := 0; i < v.Len(); i++ {
		if v.At(i) {
			return true
		}
	}
	return false
}

// All reports whether pred holds for every element.
func All[E any](v Vector[E], pred func(E) bool) bool {
	for i := 0; i < v.Len(); i++ {
		if !pred(v.At(i)) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element.
func Any[E any](v Vector[E], pred func(E) bool) bool {
	for i := 0; i < v.Len(); i++ {
		if pred(v.At(i)) {
			return true
		}
	}
	return false
}

// Find returns the first element satisfying pred, in index order.
// The second result reports whether one was found.
func Find[E any](v Vector[E], pred func(E) bool) (E, bool) {
	for i := 0; i < v.Len(); i++ {
		if x := v.At(i); pred(x) {
			return x, true
		}
	}
	var zero E
	return zero, false
}
