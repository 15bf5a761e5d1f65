package mono_test

import (
	"fmt"

	"github.com/hupe1980/fixedvec/geom"
	"github.com/hupe1980/fixedvec/mono"
)

// Example_vec3 drives a hand-written 3-double vector through the
// generic operation surface.
func Example_vec3() {
	v := geom.V3(1, 2, 3)

	fmt.Println(mono.Sum(v))
	fmt.Println(mono.ToSlice[float64](v))
	fmt.Println(mono.Head[float64](v))
	fmt.Println(mono.Tail[geom.Vec2](v))
	fmt.Println(mono.Reverse(v))
	// Output:
	// 6
	// [1 2 3]
	// 1
	// {2 3}
	// {3 2 1}
}

// Example_basis constructs a unit vector along a chosen axis.
func Example_basis() {
	fmt.Println(mono.Basis[geom.Vec3](1))
	// Output:
	// {0 1 0}
}

// Example_convert rebuilds a value as another type of the same shape.
func Example_convert() {
	v := geom.V3(1, 2, 3)

	p := mono.Convert[geom.Point3](v)
	fmt.Printf("%T%v\n", p, p)
	// Output:
	// geom.Point3{1 2 3}
}
