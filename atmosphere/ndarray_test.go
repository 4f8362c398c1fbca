package atmosphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorgepiloto/scikit-aero/constants"
)

// A 0-dimensional input yields four 0-dimensional outputs with the scalar
// values, not bare scalars with a lost shape.
func Test_CoesaArray_0d(t *testing.T) {
	alt := Scalar0d(0.0)

	h, T, p, rho, err := CoesaArray(alt)
	assert.NoError(t, err)

	for _, o := range []*NDArray{h, T, p, rho} {
		assert.True(t, o.IsScalar())
		assert.Equal(t, 1, o.Size())
	}
	assert.Equal(t, 0.0, h.Float())
	assert.InDelta(t, constants.CelsiusToKelvin(15), T.Float(), 0.001)
	assert.InDelta(t, constants.Atm, p.Float(), 0.001)
	assert.InDelta(t, 1.2250, rho.Float(), 0.001)
}

// An n-dimensional input yields four outputs of the identical shape, with
// values in corresponding positions.
func Test_CoesaArray_nd(t *testing.T) {
	alt, err := NewNDArray([]int{2, 3}, []float64{0.0, 500.0, 2500.0, 6500.0, 9000.0, 11000.0})
	require.NoError(t, err)

	h, T, p, rho, err := CoesaArray(alt)
	assert.NoError(t, err)

	for _, o := range []*NDArray{h, T, p, rho} {
		assert.Equal(t, []int{2, 3}, o.Shape)
		assert.Equal(t, 6, o.Size())
	}
	assert.Equal(t, alt.Data, h.Data)

	for i, a := range alt.Data {
		_, Ti, pi, rhoi, err := Coesa(a)
		assert.NoError(t, err)
		assert.Equal(t, Ti, T.Data[i])
		assert.Equal(t, pi, p.Data[i])
		assert.Equal(t, rhoi, rho.Data[i])
	}
}

func Test_CoesaArray_input_untouched(t *testing.T) {
	alt, err := NewNDArray([]int{3}, []float64{0.0, 5500.0, 11000.0})
	require.NoError(t, err)

	h, _, _, _, err := CoesaArray(alt)
	assert.NoError(t, err)

	h.Data[0] = -1.0
	h.Shape[0] = 99
	assert.Equal(t, []float64{0.0, 5500.0, 11000.0}, alt.Data)
	assert.Equal(t, []int{3}, alt.Shape)
}

func Test_NewNDArray_shape_mismatch(t *testing.T) {
	_, err := NewNDArray([]int{2, 2}, []float64{1.0, 2.0, 3.0})
	assert.ErrorIs(t, err, ErrShape)

	_, err = NewNDArray([]int{-1}, nil)
	assert.ErrorIs(t, err, ErrShape)

	// a malformed array handed straight to the evaluator fails the same way
	bad := &NDArray{Shape: []int{4}, Data: []float64{0.0}}
	_, _, _, _, err = CoesaArray(bad)
	assert.ErrorIs(t, err, ErrShape)
}

func Test_CoesaArray_out_of_range(t *testing.T) {
	_, _, _, _, err := CoesaArray(Scalar0d(-1.0))
	assert.ErrorIs(t, err, ErrAltitudeRange)

	alt, err := NewNDArray([]int{2}, []float64{100.0, TopOfTable + 10.0})
	require.NoError(t, err)
	_, _, _, _, err = CoesaArray(alt)
	assert.ErrorIs(t, err, ErrAltitudeRange)
}
