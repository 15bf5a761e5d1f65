package fixedvec

// Monoid is an associative Combine together with its identity Empty.
// Fold and FoldMap use it to collapse a vector.
type Monoid[M any] struct {
	Empty   M
	Combine func(M, M) M
}

// Foldl folds v left to right: f(...f(f(acc, v[0]), v[1])..., v[n-1]).
func Foldl[A, E any](v Vector[E], acc A, f func(A, E) A) A {
	for i := 0; i < v.Len(); i++ {
		acc = f(acc, v.At(i))
	}
	return acc
}

// Foldr folds v right to left: f(v[0], f(v[1], ...f(v[n-1], acc)...)).
func Foldr[A, E any](v Vector[E], acc A, f func(E, A) A) A {
	for i := v.Len() - 1; i >= 0; i-- {
		acc = f(v.At(i), acc)
	}
	return acc
}

// Foldl1 folds v left to right using the first element as the seed.
// It panics if v is empty.
func Foldl1[E any](v Vector[E], f func(E, E) E) E {
	if v.Len() == 0 {
		panic("fixedvec: Foldl1 of empty vector")
	}
	acc := v.At(0)
	for i := 1; i < v.Len(); i++ {
		acc = f(acc, v.At(i))
	}
	return acc
}

// IFoldl is Foldl with the element index passed to f.
func IFoldl[A, E any](v Vector[E], acc A, f func(A, int, E) A) A {
	for i := 0; i < v.Len(); i++ {
		acc = f(acc, i, v.At(i))
	}
	return acc
}

// IFoldr is Foldr with the element index passed to f.
func IFoldr[A, E any](v Vector[E], acc A, f func(int, E, A) A) A {
	for i := v.Len() - 1; i >= 0; i-- {
		acc = f(i, v.At(i), acc)
	}
	return acc
}

// Fold combines v's elements with m, left to right, starting from
// m.Empty.
func Fold[M any](v Vector[M], m Monoid[M]) M {
	acc := m.Empty
	for i := 0; i < v.Len(); i++ {
		acc = m.Combine(acc, v.At(i))
	}
	return acc
}

// FoldMap maps each element through f and combines the images with m,
// left to right, starting from m.Empty.
func FoldMap[M, E any](v Vector[E], m Monoid[M], f func(E) M) M {
	acc := m.Empty
	for i := 0; i < v.Len(); i++ {
		acc = m.Combine(acc, f(v.At(i)))
	}
	return acc
}

// FoldlM is Foldl with a fallible step, applied in ascending index
// order and stopping at the first error.
func FoldlM[A, E any](v Vector[E], acc A, f func(A, E) (A, error)) (A, error) {
	var err error
	for i := 0; i < v.Len(); i++ {
		acc, err = f(acc, v.At(i))
		if err != nil {
			var zero A
			return zero, err
		}
	}
	return acc, nil
}

// IFoldlM is IFoldl with a fallible step, applied in ascending index
// order and stopping at the first error.
func IFoldlM[A, E any](v Vector[E], acc A, f func(A, int, E) (A, error)) (A, error) {
	var err error
	for i := 0; i < v.Len(); i++ {
		acc, err = f(acc, i, v.At(i))
		if err != nil {
			var zero A
			return zero, err
		}
	}
	return acc, nil
}
