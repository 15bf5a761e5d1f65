package mono

import "github.com/hupe1980/fixedvec"

// At returns v's component at index i. It is an alias for Component
// and shares its contract.
func At[E any](v Vector[E], i int) E { return Component(v, i) }

// Head returns the first component. Arity must be at least 1; it
// panics otherwise.
func Head[E any](v Vector[E]) E {
	return fixedvec.Head[E](Bridge(v))
}

// Tail returns v's components after the first, materialized as the
// monomorphic type W, whose arity must be v.Dim() - 1:
//
//	xy := mono.Tail[geom.Vec2](v)
func Tail[W Vector[E], E any, PW Ptr[W, E]](v Vector[E]) W {
	return unbridge[W, E, PW](fixedvec.Tail[E](Bridge(v)))
}

// Reverse returns v with its components in reverse index order.
func Reverse[V Vector[E], E any, PV Ptr[V, E]](v V) V {
	return unbridge[V, E, PV](fixedvec.Reverse[E](Bridge[E](v)))
}

// Equal reports whether a and b agree at every index. Values of
// different arity are structurally unequal.
func Equal[E comparable](a, b Vector[E]) bool {
	return fixedvec.Equal[E](Bridge(a), Bridge(b))
}

// Convert rebuilds v as the monomorphic type W, which must share v's
// element type and arity:
//
//	p := mono.Convert[geom.Point3](v)
func Convert[W Vector[E], E any, PW Ptr[W, E]](v Vector[E]) W {
	return unbridge[W, E, PW](fixedvec.FromSlice(v.Dim(), fixedvec.ToSlice[E](Bridge(v))))
}

// Map returns v with f applied to every component. The element type is
// fixed by V, so f is component-type preserving.
func Map[V Vector[E], E any, PV Ptr[V, E]](v V, f func(E) E) V {
	return unbridge[V, E, PV](fixedvec.Map[E, E](Bridge[E](v), f))
}

// IMap is Map with the component index passed to f.
func IMap[V Vector[E], E any, PV Ptr[V, E]](v V, f func(int, E) E) V {
	return unbridge[V, E, PV](fixedvec.IMap[E, E](Bridge[E](v), f))
}

// MapM is Map with a fallible f, applied once per component in
// ascending index order, stopping at the first error.
func MapM[V Vector[E], E any, PV Ptr[V, E]](v V, f func(E) (E, error)) (V, error) {
	g, err := fixedvec.MapM[E, E](Bridge[E](v), f)
	if err != nil {
		var zero V
		return zero, err
	}
	return unbridge[V, E, PV](g), nil
}

// IMapM is IMap with a fallible f, applied once per component in
// ascending index order, stopping at the first error.
func IMapM[V Vector[E], E any, PV Ptr[V, E]](v V, f func(int, E) (E, error)) (V, error) {
	g, err := fixedvec.IMapM[E, E](Bridge[E](v), f)
	if err != nil {
		var zero V
		return zero, err
	}
	return unbridge[V, E, PV](g), nil
}

// ZipWith combines a and b pairwise with f. Both values share V's
// arity by construction, so no length precondition can fail.
func ZipWith[V Vector[E], E any, PV Ptr[V, E]](a, b V, f func(E, E) E) V {
	return unbridge[V, E, PV](fixedvec.ZipWith[E, E, E](Bridge[E](a), Bridge[E](b), f))
}

// IZipWith is ZipWith with the component index passed to f.
func IZipWith[V Vector[E], E any, PV Ptr[V, E]](a, b V, f func(int, E, E) E) V {
	return unbridge[V, E, PV](fixedvec.IZipWith[E, E, E](Bridge[E](a), Bridge[E](b), f))
}

// ZipWithM is ZipWith with a fallible f, applied once per index pair
// in ascending order, stopping at the first error.
func ZipWithM[V Vector[E], E any, PV Ptr[V, E]](a, b V, f func(E, E) (E, error)) (V, error) {
	g, err := fixedvec.ZipWithM[E, E, E](Bridge[E](a), Bridge[E](b), f)
	if err != nil {
		var zero V
		return zero, err
	}
	return unbridge[V, E, PV](g), nil
}

// IZipWithM is IZipWith with a fallible f, applied once per index
// pair in ascending order, stopping at the first error.
func IZipWithM[V Vector[E], E any, PV Ptr[V, E]](a, b V, f func(int, E, E) (E, error)) (V, error) {
	g, err := fixedvec.IZipWithM[E, E, E](Bridge[E](a), Bridge[E](b), f)
	if err != nil {
		var zero V
		return zero, err
	}
	return unbridge[V, E, PV](g), nil
}
