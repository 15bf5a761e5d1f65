package geom

import (
	"fmt"
	"iter"

	"github.com/hupe1980/fixedvec/mono"
)

// Vec2 is a 2-component double-precision vector.
type Vec2 struct{ X, Y float64 }

// Vec3 is a 3-component double-precision vector.
type Vec3 struct{ X, Y, Z float64 }

// Vec4 is a 4-component double-precision vector.
type Vec4 struct{ X, Y, Z, W float64 }

// Point3 is a 3-component double-precision point. It shares Vec3's
// element type and arity, so the two convert into each other.
type Point3 struct{ X, Y, Z float64 }

var (
	_ mono.Vector[float64]   = Vec2{}
	_ mono.Indexed[float64]  = Vec2{}
	_ mono.Settable[float64] = (*Vec2)(nil)
	_ mono.Vector[float64]   = Vec3{}
	_ mono.Indexed[float64]  = Vec3{}
	_ mono.Settable[float64] = (*Vec3)(nil)
	_ mono.Vector[float64]   = Vec4{}
	_ mono.Indexed[float64]  = Vec4{}
	_ mono.Settable[float64] = (*Vec4)(nil)
	_ mono.Vector[float64]   = Point3{}
	_ mono.Indexed[float64]  = Point3{}
	_ mono.Settable[float64] = (*Point3)(nil)
)

// V2 returns the vector (x, y).
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// V3 returns the vector (x, y, z).
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// V4 returns the vector (x, y, z, w).
func V4(x, y, z, w float64) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// P3 returns the point (x, y, z).
func P3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

// Dim returns 2.
func (v Vec2) Dim() int { return 2 }

// Components yields X, Y.
func (v Vec2) Components() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		_ = yield(v.X) && yield(v.Y)
	}
}

// Component returns the component at index i.
func (v Vec2) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("geom: Vec2 component %d out of range [0,2)", i))
}

// SetComponent stores e as component i.
func (v *Vec2) SetComponent(i int, e float64) {
	switch i {
	case 0:
		v.X = e
	case 1:
		v.Y = e
	default:
		panic(fmt.Sprintf("geom: Vec2 component %d out of range [0,2)", i))
	}
}

// Dim returns 3.
func (v Vec3) Dim() int { return 3 }

// Components yields X, Y, Z.
func (v Vec3) Components() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		_ = yield(v.X) && yield(v.Y) && yield(v.Z)
	}
}

// Component returns the component at index i.
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("geom: Vec3 component %d out of range [0,3)", i))
}

// SetComponent stores e as component i.
func (v *Vec3) SetComponent(i int, e float64) {
	switch i {
	case 0:
		v.X = e
	case 1:
		v.Y = e
	case 2:
		v.Z = e
	default:
		panic(fmt.Sprintf("geom: Vec3 component %d out of range [0,3)", i))
	}
}

// Dim returns 4.
func (v Vec4) Dim() int { return 4 }

// Components yields X, Y, Z, W.
func (v Vec4) Components() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		_ = yield(v.X) && yield(v.Y) && yield(v.Z) && yield(v.W)
	}
}

// Component returns the component at index i.
func (v Vec4) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("geom: Vec4 component %d out of range [0,4)", i))
}

// SetComponent stores e as component i.
func (v *Vec4) SetComponent(i int, e float64) {
	switch i {
	case 0:
		v.X = e
	case 1:
		v.Y = e
	case 2:
		v.Z = e
	case 3:
		v.W = e
	default:
		panic(fmt.Sprintf("geom: Vec4 component %d out of range [0,4)", i))
	}
}

// Dim returns 3.
func (p Point3) Dim() int { return 3 }

// Components yields X, Y, Z.
func (p Point3) Components() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		_ = yield(p.X) && yield(p.Y) && yield(p.Z)
	}
}

// Component returns the component at index i.
func (p Point3) Component(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	panic(fmt.Sprintf("geom: Point3 component %d out of range [0,3)", i))
}

// SetComponent stores e as component i.
func (p *Point3) SetComponent(i int, e float64) {
	switch i {
	case 0:
		p.X = e
	case 1:
		p.Y = e
	case 2:
		p.Z = e
	default:
		panic(fmt.Sprintf("geom: Point3 component %d out of range [0,3)", i))
	}
}
