// Package geom provides ready-made monomorphic vector types for use
// with the mono bridge: small double-precision product types that
// implement the full capability set (Dim, Components, Component,
// SetComponent) and therefore every operation in mono.
//
//	v := geom.V3(1, 2, 3)
//	total := mono.Sum(v)             // 6
//	unit := mono.Basis[geom.Vec3](1) // (0, 1, 0)
//
// Vec3 and Point3 share element type and arity, so they convert into
// each other with mono.Convert.
package geom
