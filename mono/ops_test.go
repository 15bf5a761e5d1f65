package mono_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fixedvec/geom"
	"github.com/hupe1980/fixedvec/mono"
)

// The canonical walkthrough: a 3-double vector driven end to end
// through the bridge.
func TestVec3Walkthrough(t *testing.T) {
	v := geom.V3(1, 2, 3)

	assert.Equal(t, 3, mono.Len[float64](v))
	assert.Equal(t, 6.0, mono.Sum(v))
	assert.Equal(t, []float64{1, 2, 3}, mono.ToSlice[float64](v))
	assert.Equal(t, 1.0, mono.Head[float64](v))
	assert.Equal(t, geom.V2(2, 3), mono.Tail[geom.Vec2](v))
	assert.Equal(t, geom.V3(3, 2, 1), mono.Reverse(v))
	assert.True(t, mono.Equal[float64](v, geom.V3(1, 2, 3)))
}

func TestAt(t *testing.T) {
	v := geom.V3(10, 20, 30)

	assert.Equal(t, 10.0, mono.At[float64](v, 0))
	assert.Equal(t, 30.0, mono.At[float64](v, 2))
	assert.Panics(t, func() { mono.At[float64](v, 3) })
}

func TestHead(t *testing.T) {
	assert.Equal(t, "x", mono.Head[string](pair{a: "x", b: "y"}))
}

func TestTailArityMismatch(t *testing.T) {
	// The tail of a Vec3 has arity 2 and cannot materialize as Vec3.
	assert.Panics(t, func() { mono.Tail[geom.Vec3](geom.V3(1, 2, 3)) })
}

func TestReverse(t *testing.T) {
	assert.Equal(t, geom.V4(4, 3, 2, 1), mono.Reverse(geom.V4(1, 2, 3, 4)))
	assert.Equal(t, pair{a: "y", b: "x"}, mono.Reverse(pair{a: "x", b: "y"}))
}

func TestEqual(t *testing.T) {
	assert.True(t, mono.Equal[float64](geom.V2(1, 2), geom.V2(1, 2)))
	assert.False(t, mono.Equal[float64](geom.V2(1, 2), geom.V2(1, 3)))

	// Same element type, different arity: structurally unequal.
	assert.False(t, mono.Equal[float64](geom.V2(1, 2), geom.V3(1, 2, 3)))
}

func TestConvert(t *testing.T) {
	v := geom.V3(1, 2, 3)

	p := mono.Convert[geom.Point3](v)
	assert.Equal(t, geom.P3(1, 2, 3), p)

	// Round-trip back to the original type.
	back := mono.Convert[geom.Vec3](p)
	assert.Equal(t, v, back)

	assert.Panics(t, func() { mono.Convert[geom.Vec2](v) })
}

func TestMap(t *testing.T) {
	v := geom.V3(1, 2, 3)

	doubled := mono.Map(v, func(e float64) float64 { return 2 * e })
	assert.Equal(t, geom.V3(2, 4, 6), doubled)

	identity := mono.Map(v, func(e float64) float64 { return e })
	assert.Equal(t, v, identity)
}

func TestIMap(t *testing.T) {
	v := geom.V3(10, 20, 30)

	got := mono.IMap(v, func(i int, e float64) float64 { return e + float64(i) })
	assert.Equal(t, geom.V3(10, 21, 32), got)
}

func TestMapM(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		got, err := mono.MapM(geom.V3(1, 2, 3), func(e float64) (float64, error) {
			return -e, nil
		})

		require.NoError(t, err)
		assert.Equal(t, geom.V3(-1, -2, -3), got)
	})

	t.Run("StopsAtFirstError", func(t *testing.T) {
		boom := errors.New("boom")
		var seen []float64
		_, err := mono.MapM(geom.V3(1, 2, 3), func(e float64) (float64, error) {
			seen = append(seen, e)
			if e == 2 {
				return 0, boom
			}
			return e, nil
		})

		require.ErrorIs(t, err, boom)
		assert.Equal(t, []float64{1, 2}, seen)
	})
}

func TestIMapM(t *testing.T) {
	boom := errors.New("boom")
	_, err := mono.IMapM(geom.V2(1, 2), func(i int, e float64) (float64, error) {
		if i == 1 {
			return 0, boom
		}
		return e, nil
	})

	require.ErrorIs(t, err, boom)
}

func TestZipWith(t *testing.T) {
	a := geom.V3(1, 2, 3)
	b := geom.V3(10, 20, 30)

	sum := mono.ZipWith(a, b, func(x, y float64) float64 { return x + y })
	assert.Equal(t, geom.V3(11, 22, 33), sum)
}

func TestIZipWith(t *testing.T) {
	a := geom.V2(1, 2)
	b := geom.V2(3, 4)

	got := mono.IZipWith(a, b, func(i int, x, y float64) float64 {
		return float64(i) * (x + y)
	})
	assert.Equal(t, geom.V2(0, 6), got)
}

func TestZipWithM(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := mono.ZipWithM(geom.V3(1, 2, 3), geom.V3(4, 5, 6), func(x, y float64) (float64, error) {
		calls++
		if calls == 2 {
			return 0, boom
		}
		return x * y, nil
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestIZipWithM(t *testing.T) {
	got, err := mono.IZipWithM(geom.V2(1, 2), geom.V2(3, 4), func(i int, x, y float64) (float64, error) {
		return x + y + float64(i), nil
	})

	require.NoError(t, err)
	assert.Equal(t, geom.V2(4, 7), got)
}
