package skymap

import "math"

// Radians per degree. Angular widths are stored in degrees and scaled by
// this factor wherever radians are needed.
const Degree float64 = math.Pi / 180

// Converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * Degree
}

// Converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad / Degree
}
