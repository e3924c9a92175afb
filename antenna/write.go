package antenna

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/corsika-radio/corsikasub/config"
	"github.com/corsika-radio/corsikasub/format"
	"github.com/corsika-radio/corsikasub/sweep"
)

// The following values are available in the reas template:
//
// Run        sweep.Run
// Physics    config.Physics
// Layout     strategy name
// CardName   file name of the steering card
var reasTemplate = template.Must(template.New("reas").Funcs(template.FuncMap{
	"shortest": format.Shortest,
	"compact":  format.Compact,
}).Parse(`# CoREAS V1.4 parameter file

# parameters setting up the spatial observer configuration:

CoreCoordinateNorth = 0			; in cm
CoreCoordinateWest = 0			; in cm
CoreCoordinateVertical = {{shortest .Run.ObsLevelCm}}		; in cm

# parameters setting up the temporal observer configuration:

TimeResolution = {{compact .Physics.TimeResolution}}				; in s
AutomaticTimeBoundaries = {{compact .Physics.AutomaticTimeBoundaries}}			; 0: off, x: automatic boundaries with width x in s
TimeLowerBoundary = -1				; in s, only if AutomaticTimeBoundaries set to 0
TimeUpperBoundary = 1				; in s, only if AutomaticTimeBoundaries set to 0
ResolutionReductionScale = {{compact .Physics.ResolutionReductionScale}}			; 0: off, x: decrease time resolution linearly every x cm in radius

# parameters setting up the simulation functionality:
GroundLevelRefractiveIndex = {{shortest .Physics.GroundRefractiveIndex}}		; specify refractive index at 0 m asl

# event information for Offline simulations:

EventNumber = -1
RunNumber = {{.Run.Number}}
GPSSecs = 0
GPSNanoSecs = 0
CoreEastingOffline = 0.0000			; in meters
CoreNorthingOffline = 0.0000			; in meters
CoreVerticalOffline = 0.0000			; in meters
OfflineCoreCoordinateSystem = Reference
RotationAngleForMagfieldDeclination = {{shortest .Physics.MagneticDeclination}}		; in degrees
Comment = {{.Layout}} antenna layout
CorsikaFilePath = ./
CorsikaParameterFile = {{.CardName}}
ShowerZenithAngle = {{shortest .Run.ZenithDeg}}			; in degrees
ShowerAzimuthAngle = {{shortest .Run.AzimuthDeg}}			; in degrees
PrimaryParticleEnergy = {{compact .EnergyEV}}		; in eV
PrimaryParticleType = {{.Run.Primary}}
DepthOfShowerMaximum = -1			; in g/cm2
DistanceOfShowerMaximum = -1			; in cm
MagneticFieldStrength = -1			; in Gauss
MagneticFieldInclinationAngle = -1		; in degrees, >0: in northern hemisphere, <0: in southern hemisphere
GeomagneticAngle = -1				; in degrees
`))

// Writer writes radio files of runs with one strategy.
type Writer struct {
	strategy Strategy
	physics  config.Physics
}

// NewWriter selects strategy once for every run it writes.
func NewWriter(kind string, antennas config.Antennas, physics config.Physics) (*Writer, error) {
	strategy, err := NewStrategy(kind, antennas)
	if err != nil {
		return nil, err
	}
	return &Writer{strategy: strategy, physics: physics}, nil
}

// Strategy used by the writer.
func (w *Writer) Strategy() Strategy {
	return w.strategy
}

// Write creates the antenna list and the CoREAS parameter file of the run.
func (w *Writer) Write(layout sweep.Layout) error {
	run := layout.Run()
	positions, err := w.strategy.Positions(run)
	if err != nil {
		return err
	}
	if err := writeFile(layout.AntennaListPath(), SerializeList(positions)); err != nil {
		return err
	}

	reas, err := w.SerializeReas(layout)
	if err != nil {
		return err
	}
	return writeFile(layout.ReasPath(), reas)
}

// SerializeList renders the antenna list.
func SerializeList(positions []Position) string {
	writer := &bytes.Buffer{}
	for _, position := range positions {
		fmt.Fprintf(writer, "AntennaPosition = %s %s %s %s\n",
			format.Shortest(position.North),
			format.Shortest(position.West),
			format.Shortest(position.Vertical),
			position.Name,
		)
	}
	return writer.String()
}

// SerializeReas renders the CoREAS parameter file.
func (w *Writer) SerializeReas(layout sweep.Layout) (string, error) {
	run := layout.Run()
	writer := &bytes.Buffer{}
	err := reasTemplate.Execute(writer, struct {
		Run      sweep.Run
		Physics  config.Physics
		Layout   string
		CardName string
		EnergyEV float64
	}{
		Run:      run,
		Physics:  w.physics,
		Layout:   w.strategy.Name(),
		CardName: filepath.Base(layout.CardPath()),
		EnergyEV: run.EnergyGeV() * 1e9,
	})
	if err != nil {
		return "", errs.Formatting("reas template: %v", err)
	}
	return writer.String(), nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errs.IO("write %s: %w", path, err)
	}
	log.Debugf("%s written", path)
	return nil
}
