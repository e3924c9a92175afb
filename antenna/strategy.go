// Package antenna places radio antennas around the shower core and writes
// the CoREAS antenna list and parameter file.
package antenna

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/corsika-radio/corsikasub/config"
	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/sweep"
	"github.com/corsika-radio/corsikasub/validate"
)

var log = config.NamedLogger("antenna")

var errs = errors.MakeComponentErrors("antenna")

// layoutStream separates the antenna generator from other streams seeded with
// the run number.
const layoutStream = 0x5ca77e

// Position of an antenna in simulator coordinates, in cm.
type Position struct {
	North    float64
	West     float64
	Vertical float64
	Name     string
}

// Strategy computes antenna positions for a run.
type Strategy interface {
	Name() string
	Positions(run sweep.Run) ([]Position, error)
}

// NewStrategy selects layout by kind.
func NewStrategy(kind string, options config.Antennas) (Strategy, error) {
	switch kind {
	case config.AntennaRandom:
		return random{count: options.Count, radius: options.FootprintRadius}, nil
	case config.AntennaStarshape:
		return starshape{arms: options.Arms, onArm: options.AntennasOnArm, spacing: options.ArmSpacing}, nil
	default:
		return nil, errs.Configuration("unknown antenna layout %q", kind)
	}
}

// showerPlanePoint is a point in the plane perpendicular to the shower axis,
// u along the projected shower azimuth, in meters.
type showerPlanePoint struct {
	u, v float64
	name string
}

// random scatters antennas uniformly inside a disk in the shower plane.
type random struct {
	count  int
	radius float64
}

func (random) Name() string {
	return config.AntennaRandom
}

func (r random) Positions(run sweep.Run) ([]Position, error) {
	rng := rand.New(rand.NewPCG(uint64(run.Number), layoutStream))
	points := make([]showerPlanePoint, r.count)
	for i := range points {
		distance := r.radius * math.Sqrt(rng.Float64())
		angle := 2 * math.Pi * rng.Float64()
		points[i] = showerPlanePoint{
			u:    distance * math.Cos(angle),
			v:    distance * math.Sin(angle),
			name: fmt.Sprintf("ant_%03d", i),
		}
	}
	return projectToGround(run, points)
}

// starshape places antennas on arms with equal angular spacing, the first arm
// along the shower azimuth.
type starshape struct {
	arms    int
	onArm   int
	spacing float64
}

func (starshape) Name() string {
	return config.AntennaStarshape
}

func (s starshape) Positions(run sweep.Run) ([]Position, error) {
	points := make([]showerPlanePoint, 0, s.arms*s.onArm)
	for ring := 1; ring <= s.onArm; ring++ {
		distance := float64(ring) * s.spacing
		for arm := 0; arm < s.arms; arm++ {
			angleDeg := float64(arm) * 360 / float64(s.arms)
			angle := angleDeg * math.Pi / 180
			points = append(points, showerPlanePoint{
				u:    distance * math.Cos(angle),
				v:    distance * math.Sin(angle),
				name: fmt.Sprintf("pos_%g_%g", distance, angleDeg),
			})
		}
	}
	return projectToGround(run, points)
}

// projectToGround stretches shower plane points by 1/cos(zenith) along the
// shower azimuth and rotates them into north/west coordinates at the
// observation level.
func projectToGround(run sweep.Run, points []showerPlanePoint) ([]Position, error) {
	if !validate.InRangeProjectedZenith(run.ZenithDeg) {
		return nil, errs.Formatting(
			"zenith %v of run %d outside [0, %v] for ground projection",
			run.ZenithDeg, run.Number, validate.MaxProjectedZenith,
		)
	}
	cosZenith := math.Cos(run.ZenithDeg * math.Pi / 180)
	azimuth := run.AzimuthDeg * math.Pi / 180
	cosAzimuth, sinAzimuth := math.Cos(azimuth), math.Sin(azimuth)

	positions := make([]Position, len(points))
	for i, point := range points {
		u := point.u / cosZenith
		positions[i] = Position{
			North:    roundCm((u*cosAzimuth - point.v*sinAzimuth) * 100),
			West:     roundCm((u*sinAzimuth + point.v*cosAzimuth) * 100),
			Vertical: run.ObsLevelCm,
			Name:     point.name,
		}
	}
	log.Debugf("%d antennas placed for run %d", len(positions), run.Number)
	return positions, nil
}

func roundCm(value float64) float64 {
	rounded := math.Round(value*100) / 100
	if rounded == 0 {
		return 0
	}
	return rounded
}
