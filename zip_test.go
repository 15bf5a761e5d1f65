package fixedvec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipWith(t *testing.T) {
	a := Mk3(1, 2, 3)
	b := Mk3(10, 20, 30)

	sum := ZipWith(a, b, func(x, y int) int { return x + y })
	assert.Equal(t, []int{11, 22, 33}, ToSlice[int](sum))

	// Result element type may differ from the inputs.
	labels := ZipWith(a, Mk3("x", "y", "z"), func(n int, s string) string {
		return fmt.Sprintf("%s=%d", s, n)
	})
	assert.Equal(t, []string{"x=1", "y=2", "z=3"}, ToSlice[string](labels))
}

func TestZipWithLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		ZipWith(Mk3(1, 2, 3), Mk2(1, 2), func(x, y int) int { return x + y })
	})
}

func TestIZipWith(t *testing.T) {
	a := Mk3(1, 2, 3)
	b := Mk3(4, 5, 6)

	got := IZipWith(a, b, func(i, x, y int) int { return i * (x + y) })
	assert.Equal(t, []int{0, 7, 18}, ToSlice[int](got))
}

func TestZipWithM(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		got, err := ZipWithM(Mk2(6, 8), Mk2(2, 4), func(x, y int) (int, error) {
			return x / y, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []int{3, 2}, ToSlice[int](got))
	})

	t.Run("StopsAtFirstError", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		_, err := ZipWithM(Mk3(1, 2, 3), Mk3(4, 5, 6), func(x, y int) (int, error) {
			calls++
			if calls == 2 {
				return 0, boom
			}
			return x + y, nil
		})

		require.ErrorIs(t, err, boom)
		assert.Equal(t, 2, calls)
	})
}

func TestIZipWithM(t *testing.T) {
	got, err := IZipWithM(Mk2("a", "b"), Mk2("c", "d"), func(i int, x, y string) (string, error) {
		return fmt.Sprintf("%d:%s%s", i, x, y), nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"0:ac", "1:bd"}, ToSlice[string](got))

	boom := errors.New("boom")
	_, err = IZipWithM(Mk2(1, 2), Mk2(3, 4), func(i, x, y int) (int, error) {
		if i == 1 {
			return 0, boom
		}
		return x + y, nil
	})
	require.ErrorIs(t, err, boom)
}
