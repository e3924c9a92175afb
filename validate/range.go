// Package validate holds range checks for physical parameters.
package validate

const floatingPointTolerance = 0.000001

// InRange reports whether value lies in [start, end].
func InRange(start float64, end float64, value float64) bool {
	return value >= start && value <= end
}

// InRangeAzimuth reports whether value is a valid azimuth in degrees, [0, 360).
func InRangeAzimuth(value float64) bool {
	return value >= 0 && value < 360
}

// InRangeZenith reports whether value is a valid zenith in degrees, [0, 90].
func InRangeZenith(value float64) bool {
	return value >= 0 && value <= 90+floatingPointTolerance
}

// MaxProjectedZenith is the largest zenith in degrees for which a footprint
// can be projected onto ground, 1/cos(zenith) diverges towards 90.
const MaxProjectedZenith = 88.0

// InRangeProjectedZenith reports whether value is a zenith in [0, MaxProjectedZenith].
func InRangeProjectedZenith(value float64) bool {
	return InRange(0, MaxProjectedZenith, value)
}

// InRangeLog10Energy reports whether log10(E/GeV) is within what the simulator
// accepts for a primary, 10 GeV up to 1e12 GeV.
func InRangeLog10Energy(value float64) bool {
	return InRange(1, 12, value)
}
