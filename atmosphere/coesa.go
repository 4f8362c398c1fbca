// Package atmosphere implements the U.S. Standard Atmosphere, 1976 (COESA).
// It is a port of the coesa module of the Python scikit-aero package.
package atmosphere

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/jorgepiloto/scikit-aero/constants"
)

var (
	// ErrAltitudeRange reports an altitude below sea level or above the top
	// of the layer table.
	ErrAltitudeRange = errors.New("altitude out of range")

	// ErrShape reports an NDArray whose data length does not match its shape.
	ErrShape = errors.New("shape mismatch")
)

// """Resolves the atmospheric layer containing geopotential altitude h.
// Args:
//
//	h(float64): geopotential altitude [m]
//
// Returns:
//
//	int: index of the layer whose base is the greatest value <= h; an
//	     altitude equal to a boundary belongs to the layer starting there
//
// """
func resolveLayer(h float64) (int, error) {
	if h < 0 || h > TopOfTable {
		return 0, fmt.Errorf("%w: %g m (model is defined for 0 m to %g m)", ErrAltitudeRange, h, TopOfTable)
	}
	layers := layerTable()
	// first base strictly above h, minus one
	i := sort.Search(len(layers), func(i int) bool { return layers[i].BaseHeight > h })
	return i - 1, nil
}

// evaluate computes temperature [K], pressure [Pa] and density [kg/m3] at
// geopotential altitude h [m] inside the given layer.
func evaluate(h float64, lay *Layer) (t, p, rho float64) {
	t = lay.BaseTemp + lay.LapseRate*(h-lay.BaseHeight)
	p = pressureIn(lay, h)
	rho = p * constants.M0 / (constants.R * t)
	return t, p, rho
}

// """Computes the standard atmosphere state at one geopotential altitude.
// Args:
//
//	alt(float64): geopotential altitude [m], 0 <= alt <= 84852
//
// Returns:
//
//	float64: geopotential altitude, echoed back [m]
//	float64: temperature [K]
//	float64: pressure [Pa]
//	float64: density [kg/m3]
//	error:   ErrAltitudeRange when alt is outside the table
//
// """
func Coesa(alt float64) (h, t, p, rho float64, err error) {
	i, err := resolveLayer(alt)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	t, p, rho = evaluate(alt, &layerTable()[i])
	return alt, t, p, rho, nil
}

// CoesaSlice evaluates the model element-wise over a slice of altitudes [m].
// The whole input is range-checked before any element is evaluated, so a
// slice with one bad altitude yields no partial results. The input slice is
// not modified; the four outputs are freshly allocated with the same length.
func CoesaSlice(alt []float64) (h, t, p, rho []float64, err error) {
	if len(alt) > 0 {
		if lo := floats.Min(alt); lo < 0 {
			return nil, nil, nil, nil, fmt.Errorf("%w: %g m (model is defined for 0 m to %g m)", ErrAltitudeRange, lo, TopOfTable)
		}
		if hi := floats.Max(alt); hi > TopOfTable {
			return nil, nil, nil, nil, fmt.Errorf("%w: %g m (model is defined for 0 m to %g m)", ErrAltitudeRange, hi, TopOfTable)
		}
	}
	layers := layerTable()
	h = make([]float64, len(alt))
	t = make([]float64, len(alt))
	p = make([]float64, len(alt))
	rho = make([]float64, len(alt))
	copy(h, alt)
	for i, a := range alt {
		j := sort.Search(len(layers), func(k int) bool { return layers[k].BaseHeight > a }) - 1
		t[i], p[i], rho[i] = evaluate(a, &layers[j])
	}
	return h, t, p, rho, nil
}

// CoesaArray evaluates the model over an n-dimensional array of altitudes,
// preserving its shape exactly: a 0-d array yields four 0-d arrays, an array
// of shape S yields four arrays of shape S. The input array is not modified.
func CoesaArray(alt *NDArray) (h, t, p, rho *NDArray, err error) {
	if err := alt.check(); err != nil {
		return nil, nil, nil, nil, err
	}
	hd, td, pd, rhod, err := CoesaSlice(alt.Data)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return alt.withData(hd), alt.withData(td), alt.withData(pd), alt.withData(rhod), nil
}

// SoundSpeed returns the speed of sound [m/s] in air at temperature t [K].
func SoundSpeed(t float64) float64 {
	return math.Sqrt(constants.Gamma * constants.Rd * t)
}
