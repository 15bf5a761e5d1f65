package mono

import "github.com/hupe1980/fixedvec"

// Len returns v's arity.
func Len[E any](v Vector[E]) int { return v.Dim() }

// Mk1 builds the arity-1 type V from (x1).
func Mk1[V Vector[E], E any, PV Ptr[V, E]](x1 E) V {
	return unbridge[V, E, PV](fixedvec.Mk1(x1))
}

// Mk2 builds the arity-2 type V from (x1, x2).
func Mk2[V Vector[E], E any, PV Ptr[V, E]](x1, x2 E) V {
	return unbridge[V, E, PV](fixedvec.Mk2(x1, x2))
}

// Mk3 builds the arity-3 type V from (x1, x2, x3).
func Mk3[V Vector[E], E any, PV Ptr[V, E]](x1, x2, x3 E) V {
	return unbridge[V, E, PV](fixedvec.Mk3(x1, x2, x3))
}

// Mk4 builds the arity-4 type V from (x1, x2, x3, x4).
func Mk4[V Vector[E], E any, PV Ptr[V, E]](x1, x2, x3, x4 E) V {
	return unbridge[V, E, PV](fixedvec.Mk4(x1, x2, x3, x4))
}

// Mk5 builds the arity-5 type V from (x1, x2, x3, x4, x5).
func Mk5[V Vector[E], E any, PV Ptr[V, E]](x1, x2, x3, x4, x5 E) V {
	return unbridge[V, E, PV](fixedvec.Mk5(x1, x2, x3, x4, x5))
}

// Replicate builds the V whose components are all x.
func Replicate[V Vector[E], E any, PV Ptr[V, E]](x E) V {
	return unbridge[V, E, PV](fixedvec.Replicate(dim[V, E, PV](), x))
}

// ReplicateM builds a V from Dim calls to f, made in index order,
// stopping at the first error.
func ReplicateM[V Vector[E], E any, PV Ptr[V, E]](f func() (E, error)) (V, error) {
	g, err := fixedvec.ReplicateM(dim[V, E, PV](), f)
	if err != nil {
		var zero V
		return zero, err
	}
	return unbridge[V, E, PV](g), nil
}

// Generate builds the V whose component at index i is f(i).
func Generate[V Vector[E], E any, PV Ptr[V, E]](f func(i int) E) V {
	return unbridge[V, E, PV](fixedvec.Generate(dim[V, E, PV](), f))
}

// GenerateM is Generate with a fallible f, called in index order,
// stopping at the first error.
func GenerateM[V Vector[E], E any, PV Ptr[V, E]](f func(i int) (E, error)) (V, error) {
	g, err := fixedvec.GenerateM(dim[V, E, PV](), f)
	if err != nil {
		var zero V
		return zero, err
	}
	return unbridge[V, E, PV](g), nil
}

// Unfold builds a V left to right from seed: each step produces the
// component at the current index and the seed for the next step.
func Unfold[V Vector[E], E any, S any, PV Ptr[V, E]](seed S, f func(S) (E, S)) V {
	return unbridge[V, E, PV](fixedvec.Unfold(dim[V, E, PV](), seed, f))
}

// Basis builds the unit V along axis i: 1 at index i, 0 elsewhere.
// It panics if i is not in [0, Dim):
//
//	y := mono.Basis[geom.Vec3](1) // (0, 1, 0)
func Basis[V Vector[E], E fixedvec.Number, PV Ptr[V, E]](i int) V {
	return unbridge[V, E, PV](fixedvec.Basis[E](dim[V, E, PV](), i))
}

// FromSlice builds a V from exactly Dim components in index order.
// It panics unless len(xs) == Dim: a mismatched input is a caller bug
// and is never truncated or padded.
func FromSlice[V Vector[E], E any, PV Ptr[V, E]](xs []E) V {
	return unbridge[V, E, PV](fixedvec.FromSlice(dim[V, E, PV](), xs))
}

// ToSlice returns v's components as a fresh slice, in index order.
func ToSlice[E any](v Vector[E]) []E {
	return fixedvec.ToSlice[E](Bridge(v))
}
