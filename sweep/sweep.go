package sweep

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/format"
	"github.com/corsika-radio/corsikasub/validate"
)

var errs = errors.MakeComponentErrors("sweep")

// MaxRunNumber is the largest run number the simulator accepts.
const MaxRunNumber = 999_999

// angleStream separates the angle generator from other streams seeded with
// the same run number.
const angleStream = 0xa21e

// Sweep is a parameterized range of runs.
// Energies are log10(E/GeV), angles in degrees, observation level in cm.
type Sweep struct {
	Primary     int     `yaml:"primary"`
	StartRun    int     `yaml:"startRun"`
	EndRun      int     `yaml:"endRun"`
	EnergyStart float64 `yaml:"energyStart"`
	EnergyEnd   float64 `yaml:"energyEnd"`
	EnergyStep  float64 `yaml:"energyStep"`
	ZenithStart float64 `yaml:"zenithStart"`
	ZenithEnd   float64 `yaml:"zenithEnd"`
	ObsLevel    float64 `yaml:"obsLevel"`
}

// Validate reports every invalid field.
func (s Sweep) Validate() error {
	result := errors.FormError{}

	if s.StartRun < 1 {
		result["startRun"] = fmt.Errorf("should be positive")
	}
	if s.EndRun < s.StartRun {
		result["endRun"] = fmt.Errorf("should not be lower than startRun")
	}
	if !validate.InRangeLog10Energy(s.EnergyStart) {
		result["energyStart"] = fmt.Errorf("log10(E/GeV) should be between 1 and 12")
	}
	if !validate.InRangeLog10Energy(s.EnergyEnd) || s.EnergyEnd < s.EnergyStart {
		result["energyEnd"] = fmt.Errorf("log10(E/GeV) should be between energyStart and 12")
	}
	if !format.Finite(s.EnergyStep) || s.EnergyStep < 0 {
		result["energyStep"] = fmt.Errorf("should not be negative")
	}
	if !validate.InRangeProjectedZenith(s.ZenithStart) {
		result["zenithStart"] = fmt.Errorf("should be between 0 and %v", validate.MaxProjectedZenith)
	}
	if !validate.InRangeProjectedZenith(s.ZenithEnd) || s.ZenithEnd < s.ZenithStart {
		result["zenithEnd"] = fmt.Errorf("should be between zenithStart and %v", validate.MaxProjectedZenith)
	}
	if !format.Finite(s.ObsLevel) || s.ObsLevel < 0 {
		result["obsLevel"] = fmt.Errorf("should be a non negative height in cm")
	}

	if err := result.OrNil(); err != nil {
		return errs.Configuration("%v", err)
	}
	return nil
}

// binCount is kept as float, a tiny step makes it exceed any int.
func (s Sweep) binCount() float64 {
	if s.EnergyStep == 0 || s.EnergyEnd == s.EnergyStart {
		return 1
	}
	return math.Floor((s.EnergyEnd-s.EnergyStart)/s.EnergyStep+1e-9) + 1
}

// EnergyBins lists log10 energies from EnergyStart up to EnergyEnd.
// Every bin needs its own run number, so more bins than MaxRunNumber are
// rejected before anything is allocated.
func (s Sweep) EnergyBins() ([]float64, error) {
	count := s.binCount()
	if math.IsNaN(count) || count > MaxRunNumber {
		return nil, errs.Formatting(
			"energy step %v gives %v bins between %v and %v, at most %d are possible",
			s.EnergyStep, count, s.EnergyStart, s.EnergyEnd, MaxRunNumber,
		)
	}
	bins := make([]float64, int(count))
	for i := range bins {
		bins[i] = roundTo(s.EnergyStart+float64(i)*s.EnergyStep, 1e6)
	}
	return bins, nil
}

// RunsPerBin is the number of runs simulated per energy bin.
func (s Sweep) RunsPerBin() int {
	return s.EndRun - s.StartRun + 1
}

// Expand the sweep into runs.
//
// Runs are ordered energy bin first. Run number of bin i and offset k is
// StartRun + i*RunsPerBin() + k, so with a single bin run numbers are exactly
// StartRun..EndRun and they never repeat within a sweep.
func (s Sweep) Expand() ([]Run, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	perBin := s.RunsPerBin()
	if last := float64(s.StartRun) + s.binCount()*float64(perBin) - 1; last > MaxRunNumber {
		return nil, errs.Formatting(
			"sweep needs run numbers up to %.0f, simulator maximum is %d", last, MaxRunNumber,
		)
	}
	bins, err := s.EnergyBins()
	if err != nil {
		return nil, err
	}

	runs := make([]Run, 0, len(bins)*perBin)
	for i, log10Energy := range bins {
		for k := 0; k < perBin; k++ {
			number := s.StartRun + i*perBin + k
			zenith, azimuth := s.angles(number)
			runs = append(runs, Run{
				Number:      number,
				Primary:     s.Primary,
				Log10Energy: log10Energy,
				ZenithDeg:   zenith,
				AzimuthDeg:  azimuth,
				ObsLevelCm:  s.ObsLevel,
			})
		}
	}
	return runs, nil
}

// Select returns the run with given number.
func (s Sweep) Select(runNumber int) (Run, error) {
	runs, err := s.Expand()
	if err != nil {
		return Run{}, err
	}
	for _, run := range runs {
		if run.Number == runNumber {
			return run, nil
		}
	}
	return Run{}, errs.Configuration(
		"run %d is not part of sweep %d..%d", runNumber, runs[0].Number, runs[len(runs)-1].Number,
	)
}

// angles draws zenith, uniform in cos, and azimuth for a run. The generator is
// seeded with the run number only, so a run keeps its angles across
// invocations.
func (s Sweep) angles(runNumber int) (zenith, azimuth float64) {
	rng := rand.New(rand.NewPCG(uint64(runNumber), angleStream))

	zenith = s.ZenithStart
	if s.ZenithEnd > s.ZenithStart {
		cosLow := math.Cos(s.ZenithEnd * math.Pi / 180)
		cosHigh := math.Cos(s.ZenithStart * math.Pi / 180)
		cosZenith := cosLow + rng.Float64()*(cosHigh-cosLow)
		zenith = roundTo(math.Acos(cosZenith)*180/math.Pi, 100)
		zenith = math.Min(math.Max(zenith, s.ZenithStart), s.ZenithEnd)
	}

	azimuth = math.Mod(roundTo(rng.Float64()*360, 100), 360)
	return zenith, azimuth
}

// roundTo keeps 1/scale precision. Dividing last gives the float closest to
// the decimal value, which formats back without noise digits.
func roundTo(value, scale float64) float64 {
	return math.Round(value*scale) / scale
}
