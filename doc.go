// Package fixedvec provides generic fixed-length vectors for Go.
//
// A fixed-length vector is a sequence whose length is established at
// construction and never changes. The package defines the read
// capability as a small interface, Vector, a canonical slice-backed
// implementation, Vec, and the full operation surface over any Vector:
//
//   - Construction: Mk1..Mk5, Replicate, Generate, Unfold, Basis, FromSlice
//   - Access: Head, Tail, Reverse, At
//   - Folding: Foldl, Foldr, Foldl1, IFoldl, IFoldr, Fold, FoldMap, FoldlM
//   - Reductions: Sum, Max, Min, And, Or, All, Any, Find
//   - Transformation: Map, IMap, MapM, IMapM
//   - Combination: ZipWith, IZipWith, ZipWithM, IZipWithM
//   - Conversion: ToSlice, FromSlice
//
// Operations accept the Vector interface and return concrete Vec
// values, so any type exposing Len/At participates. The mono
// subpackage builds on this to drive hand-written monomorphic product
// types (a 3-double struct, say) through the same operation set.
//
// # Quick Start
//
//	v := fixedvec.Mk3(1.0, 2.0, 3.0)
//	total := fixedvec.Sum[float64](v)          // 6
//	rev := fixedvec.Reverse[float64](v)        // (3, 2, 1)
//	doubled := fixedvec.Map(v, func(x float64) float64 { return 2 * x })
//
// # Effectful Variants
//
// The ...M variants thread a fallible step across the components in
// ascending index order, stopping at the first error:
//
//	w, err := fixedvec.MapM(v, func(x float64) (float64, error) {
//	    if x < 0 {
//	        return 0, fmt.Errorf("negative component: %v", x)
//	    }
//	    return math.Sqrt(x), nil
//	})
//
// # Failure Semantics
//
// Precondition violations (index out of range, FromSlice arity
// mismatch, Head/Foldl1/Max/Min on an empty vector, zipping vectors of
// different lengths) are caller bugs and panic, matching slice-index
// semantics. No operation returns an error of its own; the ...M
// variants only propagate the caller's.
package fixedvec
