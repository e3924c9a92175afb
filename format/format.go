// Package format holds number formatting shared by the simulator file writers.
package format

import (
	"fmt"
	"math"
	"strconv"
)

// Shortest renders n in the shortest decimal form that parses back to n,
// without exponent: 30 -> "30", 123.45 -> "123.45".
func Shortest(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Compact renders n in the shortest form, switching to exponent notation for
// small and large magnitudes: 1e-06 -> "1e-06".
func Compact(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// Scientific renders n with 11 digits after the decimal point and an
// upper-case exponent of at least two digits: 1e8 -> "1.00000000000E+08".
func Scientific(n float64) string {
	return fmt.Sprintf("%.11E", n)
}

// Finite reports whether n is neither NaN nor infinite.
func Finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// RunID is the six digit run identifier used in simulator file names.
func RunID(runNumber int) string {
	return fmt.Sprintf("%06d", runNumber)
}
