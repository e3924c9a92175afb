// Package registry maps categorical shower parameters to the small integer
// IDs used in seed derivation. Tables are immutable once built and may be
// shared freely.
package registry

import (
	"fmt"
	"math"
	"sort"

	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/validate"
)

var errs = errors.MakeComponentErrors("registry")

// Particle is a primary known to the simulator.
type Particle struct {
	// Code is the CORSIKA particle code, A*100+Z for nuclei.
	Code int
	Name string
}

// DefaultParticles in the order defining their IDs. Appending is safe,
// reordering changes seeds of existing datasets.
var DefaultParticles = []Particle{
	{Code: 1, Name: "gamma"},
	{Code: 14, Name: "proton"},
	{Code: 402, Name: "helium"},
	{Code: 1608, Name: "oxygen"},
	{Code: 5626, Name: "iron"},
}

// Particles maps particle codes to sequential IDs.
type Particles struct {
	ids   map[int]int
	names map[int]string
}

// NewParticles builds table from an ordered particle list.
func NewParticles(particles []Particle) (Particles, error) {
	table := Particles{ids: map[int]int{}, names: map[int]string{}}
	for id, particle := range particles {
		if _, duplicated := table.ids[particle.Code]; duplicated {
			return Particles{}, errs.Configuration("particle code %d listed twice", particle.Code)
		}
		table.ids[particle.Code] = id
		table.names[particle.Code] = particle.Name
	}
	return table, nil
}

// ID returns compact ID of particle code.
func (p Particles) ID(code int) (int, error) {
	id, found := p.ids[code]
	if !found {
		return 0, errs.UnknownCategory("particle code %d, known codes: %v", code, p.Codes())
	}
	return id, nil
}

// Name returns particle name or the code itself for unknown particles.
func (p Particles) Name(code int) string {
	if name, found := p.names[code]; found {
		return name
	}
	return fmt.Sprintf("code%d", code)
}

// Codes sorted ascending.
func (p Particles) Codes() []int {
	codes := make([]int, 0, len(p.ids))
	for code := range p.ids {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Bucket widths in degrees.
const (
	AzimuthBucketWidth = 45.0
	ZenithBucketWidth  = 10.0
)

// Angles buckets azimuth and zenith angles.
//
// Azimuth [0, 360) is split into 45 degree buckets, IDs 0..7.
// Zenith [0, 90] is split into 10 degree buckets, IDs 0..8, where 90 belongs
// to the last bucket.
type Angles struct{}

// AzimuthBucket of angle in degrees.
func (Angles) AzimuthBucket(deg float64) (int, error) {
	if !validate.InRangeAzimuth(deg) {
		return 0, errs.UnknownCategory("azimuth %v outside [0, 360)", deg)
	}
	return int(math.Floor(deg / AzimuthBucketWidth)), nil
}

// ZenithBucket of angle in degrees.
func (Angles) ZenithBucket(deg float64) (int, error) {
	if !validate.InRangeZenith(deg) {
		return 0, errs.UnknownCategory("zenith %v outside [0, 90]", deg)
	}
	bucket := int(math.Floor(deg / ZenithBucketWidth))
	if last := int(90/ZenithBucketWidth) - 1; bucket > last {
		bucket = last
	}
	return bucket, nil
}

// Tables groups every registry used by the tool.
type Tables struct {
	Particles Particles
	Angles    Angles
}

// Default tables.
func Default() Tables {
	particles, err := NewParticles(DefaultParticles)
	if err != nil {
		panic(err)
	}
	return Tables{Particles: particles}
}
