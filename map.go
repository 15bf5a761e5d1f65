package fixedvec

// Map returns the vector with f applied to every element.
func Map[E, F any](v Vector[E], f func(E) F) Vec[F] {
	elems := make([]F, v.Len())
	for i := range elems {
		elems[i] = f(v.At(i))
	}
	return Vec[F]{elems: elems}
}

// IMap is Map with the element index passed to f.
func IMap[E, F any](v Vector[E], f func(int, E) F) Vec[F] {
	elems := make([]F, v.Len())
	for i := range elems {
		elems[i] = f(i, v.At(i))
	}
	return Vec[F]{elems: elems}
}

// MapM is Map with a fallible f, applied once per element in
// ascending index order, stopping at the first error.
func MapM[E, F any](v Vector[E], f func(E) (F, error)) (Vec[F], error) {
	elems := make([]F, v.Len())
	for i := range elems {
		x, err := f(v.At(i))
		if err != nil {
			return Vec[F]{}, err
		}
		elems[i] = x
	}
	return Vec[F]{elems: elems}, nil
}

// IMapM is IMap with a fallible f, applied once per element in
// ascending index order, stopping at the first error.
func IMapM[E, F any](v Vector[E], f func(int, E) (F, error)) (Vec[F], error) {
	elems := make([]F, v.Len())
	for i := range elems {
		x, err := f(i, v.At(i))
		if err != nil {
			return Vec[F]{}, err
		}
		elems[i] = x
	}
	return Vec[F]{elems: elems}, nil
}
