package fixedvec

import "fmt"

func zipLen(n, m int) int {
	if n != m {
		panic(fmt.Sprintf("fixedvec: zip of vectors with different lengths: %d and %d", n, m))
	}
	return n
}

// ZipWith combines a and b pairwise with f. The vectors must have the
// same length; it panics otherwise.
func ZipWith[A, B, C any](a Vector[A], b Vector[B], f func(A, B) C) Vec[C] {
	elems := make([]C, zipLen(a.Len(), b.Len()))
	for i := range elems {
		elems[i] = f(a.At(i), b.At(i))
	}
	return Vec[C]{elems: elems}
}

// IZipWith is ZipWith with the element index passed to f.
func IZipWith[A, B, C any](a Vector[A], b Vector[B], f func(int, A, B) C) Vec[C] {
	elems := make([]C, zipLen(a.Len(), b.Len()))
	for i := range elems {
		elems[i] = f(i, a.At(i), b.At(i))
	}
	return Vec[C]{elems: elems}
}

// ZipWithM is ZipWith with a fallible f, applied once per index pair
// in ascending order, stopping at the first error.
func ZipWithM[A, B, C any](a Vector[A], b Vector[B], f func(A, B) (C, error)) (Vec[C], error) {
	elems := make([]C, zipLen(a.Len(), b.Len()))
	for i := range elems {
		x, err := f(a.At(i), b.At(i))
		if err != nil {
			return Vec[C]{}, err
		}
		elems[i] = x
	}
	return Vec[C]{elems: elems}, nil
}

// IZipWithM is IZipWith with a fallible f, applied once per index
// pair in ascending order, stopping at the first error.
func IZipWithM[A, B, C any](a Vector[A], b Vector[B], f func(int, A, B) (C, error)) (Vec[C], error) {
	elems := make([]C, zipLen(a.Len(), b.Len()))
	for i := range elems {
		x, err := f(i, a.At(i), b.At(i))
		if err != nil {
			return Vec[C]{}, err
		}
		elems[i] = x
	}
	return Vec[C]{elems: elems}, nil
}
