// Package sweep describes simulation runs, expands sweeps into runs and
// defines where the files of a run live.
package sweep

import (
	"math"

	"github.com/corsika-radio/corsikasub/format"
)

// Run identifies one simulated shower.
type Run struct {
	Number      int     `yaml:"number"`
	Primary     int     `yaml:"primary"`
	Log10Energy float64 `yaml:"log10Energy"`
	ZenithDeg   float64 `yaml:"zenith"`
	AzimuthDeg  float64 `yaml:"azimuth"`
	ObsLevelCm  float64 `yaml:"obsLevel"`
}

// ID is the six digit identifier used in simulator file names.
func (r Run) ID() string {
	return format.RunID(r.Number)
}

// Name is the simulator name of the run, SIMxxxxxx.
func (r Run) Name() string {
	return "SIM" + r.ID()
}

// EnergyGeV of the primary.
func (r Run) EnergyGeV() float64 {
	return math.Pow(10, r.Log10Energy)
}
