// Package seed derives the six random generator seeds of a run.
//
// Seeds 1..3 have the form pprrrrrr where pp is a categorical ID (primary,
// azimuth bucket, zenith bucket) and rrrrrr the run number, taken modulo
// 900_000_001 so they never exceed the simulator maximum. Seeds 4..6 are
// seeds 1..3 shifted by 3, 4 and 5.
package seed

import (
	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/registry"
)

var errs = errors.MakeComponentErrors("seed")

const (
	// Max is the largest seed accepted by the simulator.
	Max = 900_000_000
	// MaxRunNumber is the largest RUNNR, which has six digits.
	MaxRunNumber = 999_999

	categoryStride = 1_000_000
	modulus        = Max + 1
)

// Set holds the six seeds of a run.
type Set [6]int

// Derive computes seeds from run number and categorical IDs.
func Derive(runNumber, particleID, azimuthID, zenithID int) (Set, error) {
	if runNumber < 1 || runNumber > MaxRunNumber {
		return Set{}, errs.Formatting("run number %d outside [1, %d]", runNumber, MaxRunNumber)
	}

	var set Set
	for i, categoryID := range []int{particleID, azimuthID, zenithID} {
		if categoryID < 0 {
			return Set{}, errs.UnknownCategory("negative category ID %d", categoryID)
		}
		set[i] = (runNumber + categoryID*categoryStride) % modulus
		set[i+3] = set[i] + 3 + i
	}

	for _, value := range set {
		if value < 1 || value > Max {
			return Set{}, errs.Formatting("seed %d outside [1, %d] for run %d", value, Max, runNumber)
		}
	}
	return set, nil
}

// Deriver resolves categorical IDs from registries before deriving seeds.
type Deriver struct {
	tables registry.Tables
}

// NewDeriver constructor.
func NewDeriver(tables registry.Tables) Deriver {
	return Deriver{tables: tables}
}

// ForRun derives seeds of one run.
func (d Deriver) ForRun(runNumber, primary int, azimuthDeg, zenithDeg float64) (Set, error) {
	particleID, err := d.tables.Particles.ID(primary)
	if err != nil {
		return Set{}, err
	}
	azimuthID, err := d.tables.Angles.AzimuthBucket(azimuthDeg)
	if err != nil {
		return Set{}, err
	}
	zenithID, err := d.tables.Angles.ZenithBucket(zenithDeg)
	if err != nil {
		return Set{}, err
	}
	return Derive(runNumber, particleID, azimuthID, zenithID)
}
