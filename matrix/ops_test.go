package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFromSlice builds a matrix or fails the test immediately.
func mustFromSlice(t *testing.T, rows, cols int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromSlice(rows, cols, data)
	require.NoError(t, err)

	return m
}

// TestTranspose verifies swapped dimensions, transposed values, and the
// double-transpose round trip.
func TestTranspose(t *testing.T) {
	m := mustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())

	want := mustFromSlice(t, 3, 2, []float64{1, 4, 2, 5, 3, 6})
	assert.True(t, tr.Equal(want), "transposed values must follow result[j][i] = m[i][j]")

	assert.True(t, tr.Transpose().Equal(m), "Transpose must be an involution")
}

// TestAdd verifies the element-wise sum and its commutativity.
func TestAdd(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustFromSlice(t, 2, 2, []float64{5, 6, 7, 8})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equal(mustFromSlice(t, 2, 2, []float64{6, 8, 10, 12})))

	rev, err := b.Add(a)
	require.NoError(t, err)
	assert.True(t, sum.Equal(rev), "addition must be commutative")
}

// TestAdd_DimensionMismatch verifies that differing shapes fail with
// ErrDimensionMismatch carrying both operand shapes.
func TestAdd_DimensionMismatch(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})
	b := matrix.Zeros(2, 3)

	_, err := a.Add(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "Add")
	assert.Contains(t, err.Error(), "2x2")
	assert.Contains(t, err.Error(), "2x3")
}

// TestMul verifies the reference 2x3 × 3x2 product from the exercise.
func TestMul(t *testing.T) {
	a := mustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustFromSlice(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, 2, prod.Rows())
	assert.Equal(t, 2, prod.Cols())
	assert.True(t, prod.Equal(mustFromSlice(t, 2, 2, []float64{58, 64, 139, 154})))
}

// TestMul_DimensionMismatch verifies that Mul fails iff a.Cols != b.Rows.
func TestMul_DimensionMismatch(t *testing.T) {
	a := mustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := matrix.Zeros(2, 2)

	_, err := a.Mul(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "Mul")
}

// TestFindPosition covers the brute-force scan: typical hits, the
// row-major-first rule under duplicates, misses, and the empty matrix.
func TestFindPosition(t *testing.T) {
	m := mustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	r, c, err := m.FindPosition(2)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 1}, [2]int{r, c})

	r, c, err = m.FindPosition(5)
	require.NoError(t, err)
	assert.Equal(t, [2]int{1, 1}, [2]int{r, c})

	_, _, err = m.FindPosition(7)
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrElementNotFound)
	assert.Contains(t, err.Error(), "element 7")

	// Duplicates: the first coordinate in row-major order wins.
	dup := mustFromSlice(t, 2, 2, []float64{1, 2, 2, 3})
	r, c, err = dup.FindPosition(2)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 1}, [2]int{r, c}, "row-major-first occurrence")

	// Empty matrix misses everything.
	_, _, err = matrix.Zeros(0, 0).FindPosition(1)
	assert.ErrorIs(t, err, matrix.ErrElementNotFound)
}

// TestFindPosition_ExactEquality documents the intentional exact-equality
// limitation: a runtime 0.1+0.2 does not match the literal 0.3.
func TestFindPosition_ExactEquality(t *testing.T) {
	// The sum must happen at runtime: as untyped constants, 0.1+0.2
	// folds at compile time to exactly the literal 0.3.
	tenth, fifth := 0.1, 0.2
	m := mustFromSlice(t, 2, 2, []float64{tenth + fifth, 0.4, 0.5, 0.6})

	_, _, err := m.FindPosition(0.3)
	assert.ErrorIs(t, err, matrix.ErrElementNotFound,
		"runtime 0.1+0.2 != 0.3 under exact float64 comparison")

	// Plain literals round-trip fine.
	r, c, err := m.FindPosition(0.4)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 1}, [2]int{r, c})
}
