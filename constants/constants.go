// Package constants provides the physical constants used by the atmosphere
// model, in SI units. Values follow the U.S. Standard Atmosphere, 1976
// (NASA-TM-X-74335) and CODATA.
package constants

const (
	// G0 standard acceleration of gravity [m/s2]
	G0 = 9.80665

	// M0 mean molar mass of dry air at sea level [kg/mol]
	M0 = 0.0289644

	// R universal gas constant [J/(mol·K)], value adopted by the 1976 standard
	R = 8.31432

	// Rd specific gas constant of dry air, R/M0 [J/(kg·K)]
	Rd = R / M0

	// Gamma adiabatic index of air (heat capacity ratio)
	Gamma = 1.4

	// Atm standard atmospheric pressure at sea level [Pa]
	Atm = 101325.0

	// ZeroCelsius 0 ℃ expressed in kelvin
	ZeroCelsius = 273.15

	// SeaLevelTemp standard sea-level temperature [K] (15 ℃)
	SeaLevelTemp = 288.15
)

// CelsiusToKelvin converts a temperature in ℃ to K.
func CelsiusToKelvin(tc float64) float64 {
	return tc + ZeroCelsius
}

// KelvinToCelsius converts a temperature in K to ℃.
func KelvinToCelsius(tk float64) float64 {
	return tk - ZeroCelsius
}
