// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geotour/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestNumericPolicy covers the finite-only default and the +Inf exception.
func TestNumericPolicy(t *testing.T) {
	strict, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 1, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)

	inf, err := matrix.NewDense(2, 2, matrix.WithAllowInfDistances())
	require.NoError(t, err)
	require.NoError(t, inf.Set(0, 1, math.Inf(1)))
	require.ErrorIs(t, inf.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, inf.Set(0, 1, math.NaN()), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(2, 2, matrix.WithNoNaNInfValidation())
	require.NoError(t, err)
	require.NoError(t, loose.Set(1, 0, math.NaN()))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithAllowInfDistances())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))
	require.NoError(t, clone.Set(1, 0, math.Inf(1))) // policy travels with the clone

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)

	got, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
}

// TestFromRows covers literal construction and ragged input.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 1, 0}, m.RowMajor())
	require.Equal(t, "[0, 1]\n[1, 0]\n", m.String())

	_, err = matrix.FromRows([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{0, math.NaN()}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestRowMajorIsCopy ensures callers cannot mutate the backing buffer.
func TestRowMajorIsCopy(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	flat := m.RowMajor()
	flat[0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}
