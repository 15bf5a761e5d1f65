// Package mono bridges hand-written monomorphic product types onto
// the generic fixed-length vector operations of the root package.
//
// A monomorphic vector is a fixed-arity product type whose components
// all share one element type, such as a 3-double struct. Unlike the
// root package's Vec, such a type is not parametric in its element
// type: element type and arity are properties of the type itself. This
// package lets a type like that implement a minimal capability set
// once and gain the whole operation surface (construction, folds,
// maps, zips, conversion) by forwarding through the generic versions.
//
// # Implementing the Capability
//
// A concrete type implements Vector on its value receiver and Settable
// on its pointer receiver:
//
//	type RGB struct{ R, G, B float32 }
//
//	func (c RGB) Dim() int { return 3 }
//
//	func (c RGB) Components() iter.Seq[float32] {
//	    return func(yield func(float32) bool) {
//	        _ = yield(c.R) && yield(c.G) && yield(c.B)
//	    }
//	}
//
//	func (c *RGB) SetComponent(i int, e float32) {
//	    switch i {
//	    case 0:
//	        c.R = e
//	    case 1:
//	        c.G = e
//	    case 2:
//	        c.B = e
//	    default:
//	        panic("RGB component out of range")
//	    }
//	}
//
// Optionally, the type may also implement Indexed to serve component
// reads directly instead of through a Components scan. Both paths must
// agree.
//
// With that in place every operation applies:
//
//	c := mono.Mk3[RGB](float32(0.2), 0.5, 0.8)
//	sum := mono.Sum(c)
//	inv := mono.Map(c, func(x float32) float32 { return 1 - x })
//	white := mono.Replicate[RGB](float32(1))
//
// Operations that build a value from scratch (Mk1..Mk5, Replicate,
// Generate, Unfold, Basis, FromSlice, Tail, Convert) take the target
// type as an explicit type argument, as above; the remaining type
// parameters are inferred.
//
// # How It Works
//
// Every operation wraps its argument in Bridged, a thin adapter that
// presents the monomorphic value as a fixedvec.Vector, invokes the
// identically-named root operation, and materializes vector-typed
// results back into the concrete type through its Settable pointer.
// The bridge adds no failure modes of its own: preconditions and their
// panics are the root package's, plus an arity check when a generic
// result is materialized.
package mono
