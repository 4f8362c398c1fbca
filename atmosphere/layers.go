package atmosphere

import (
	"math"
	"sync"

	"github.com/jorgepiloto/scikit-aero/constants"
)

// layerKind tags the closed-form pressure solution that is valid inside a
// layer, so the evaluator branches on the tag instead of comparing a stored
// lapse rate against zero.
type layerKind int

const (
	gradientLayer   layerKind = iota // temperature varies linearly with altitude
	isothermalLayer                  // constant temperature, exponential pressure decay
)

// Layer is one stratum of the 1976 standard atmosphere.
type Layer struct {
	BaseHeight float64 // base geopotential altitude [m]
	BaseTemp   float64 // temperature at BaseHeight [K]
	BasePress  float64 // pressure at BaseHeight [Pa]
	LapseRate  float64 // temperature gradient within the layer [K/m]

	kind layerKind
}

// TopOfTable is the geopotential altitude [m] at the top of the last defined
// layer (86 km geometric). Altitudes above it are outside the model domain.
const TopOfTable = 84852.0

// Base geopotential altitudes [m], base temperatures [K] and lapse rates
// [K/m] of the seven layers of the 1976 standard, sea level through 84 852 m.
var (
	baseHeights = [7]float64{0.0, 11000.0, 20000.0, 32000.0, 47000.0, 51000.0, 71000.0}
	baseTemps   = [7]float64{288.15, 216.65, 216.65, 228.65, 270.65, 270.65, 214.65}
	lapseRates  = [7]float64{-0.0065, 0.0, 0.001, 0.0028, 0.0, -0.0028, -0.002}
)

var (
	tableOnce sync.Once
	table     []Layer
)

// layerTable returns the layer table, building it on first use. Base
// pressures are obtained by integrating the hydrostatic equation upward from
// the standard sea-level pressure, so temperature and pressure are exactly
// continuous across every layer boundary. The table is never modified after
// construction and is safe to share between goroutines.
func layerTable() []Layer {
	tableOnce.Do(func() {
		table = make([]Layer, len(baseHeights))
		pb := constants.Atm
		for i := range table {
			lay := Layer{
				BaseHeight: baseHeights[i],
				BaseTemp:   baseTemps[i],
				BasePress:  pb,
				LapseRate:  lapseRates[i],
			}
			if lay.LapseRate == 0 {
				lay.kind = isothermalLayer
			}
			table[i] = lay

			// pressure at the base of the next layer
			top := TopOfTable
			if i+1 < len(table) {
				top = baseHeights[i+1]
			}
			pb = pressureIn(&table[i], top)
		}
	})
	return table
}

// pressureIn evaluates the layer's closed-form pressure solution at
// geopotential altitude h, which must lie within the layer.
func pressureIn(lay *Layer, h float64) float64 {
	dh := h - lay.BaseHeight
	if lay.kind == isothermalLayer {
		return lay.BasePress * math.Exp(-constants.G0*constants.M0*dh/(constants.R*lay.BaseTemp))
	}
	t := lay.BaseTemp + lay.LapseRate*dh
	return lay.BasePress * math.Pow(t/lay.BaseTemp, -constants.G0*constants.M0/(constants.R*lay.LapseRate))
}

// Layers returns a copy of the layer table, ordered by increasing base
// altitude. The copy keeps callers from aliasing the shared table.
func Layers() []Layer {
	src := layerTable()
	out := make([]Layer, len(src))
	copy(out, src)
	return out
}
