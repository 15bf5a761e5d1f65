package mono

import (
	"fmt"
	"iter"

	"github.com/hupe1980/fixedvec"
)

// Vector is the minimal capability a monomorphic fixed-arity type
// implements to participate in this package's operations.
type Vector[E any] interface {
	// Dim returns the arity. It is a property of the type and must not
	// depend on the value.
	Dim() int

	// Components yields the components in index order, exactly Dim of
	// them.
	Components() iter.Seq[E]
}

// Settable is the construct half of the capability, implemented on the
// pointer receiver so operations can materialize new values.
type Settable[E any] interface {
	// SetComponent stores e as component i. i must be in [0, Dim()).
	SetComponent(i int, e E)
}

// Indexed is optionally implemented for direct component access,
// bypassing a Components scan. When a type implements both, the two
// paths must agree at every index.
type Indexed[E any] interface {
	Component(i int) E
}

// Ptr constrains a pointer to a concrete monomorphic type carrying
// both capability halves. Operations use it to instantiate result
// values via new.
type Ptr[V any, E any] interface {
	*V
	Vector[E]
	Settable[E]
}

// Component returns v's component at index i, using the Indexed fast
// path when v provides one and falling back to a Components scan
// otherwise. It panics if i is not in [0, v.Dim()).
func Component[E any](v Vector[E], i int) E {
	if i < 0 || i >= v.Dim() {
		panic(fmt.Sprintf("mono: component %d out of range [0,%d)", i, v.Dim()))
	}
	if ix, ok := v.(Indexed[E]); ok {
		return ix.Component(i)
	}
	var out E
	j := 0
	for e := range v.Components() {
		if j == i {
			out = e
			break
		}
		j++
	}
	return out
}

// Bridged presents a monomorphic value through the generic
// fixedvec.Vector capability. It exists for the duration of a single
// operation; construct it with Bridge immediately before use.
type Bridged[E any] struct {
	v Vector[E]
}

// Bridge wraps v for use with the root package's operations.
func Bridge[E any](v Vector[E]) Bridged[E] { return Bridged[E]{v: v} }

var _ fixedvec.Vector[float64] = Bridged[float64]{}

// Len returns the wrapped value's arity.
func (b Bridged[E]) Len() int { return b.v.Dim() }

// At returns the wrapped value's component at index i.
func (b Bridged[E]) At(i int) E { return Component(b.v, i) }

// dim returns the arity of the concrete type V without a value.
func dim[V any, E any, PV Ptr[V, E]]() int {
	var v V
	return PV(&v).Dim()
}

// unbridge materializes a generic result as a concrete monomorphic
// value. The result length must match V's arity.
func unbridge[V any, E any, PV Ptr[V, E]](g fixedvec.Vec[E]) V {
	var v V
	p := PV(&v)
	if g.Len() != p.Dim() {
		panic(fmt.Sprintf("mono: cannot materialize %d components into %T (arity %d)", g.Len(), v, p.Dim()))
	}
	for i := 0; i < g.Len(); i++ {
		p.SetComponent(i, g.At(i))
	}
	return v
}
