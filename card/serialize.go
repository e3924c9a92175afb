// Package card renders and reads the simulator steering card (.inp file).
package card

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/corsika-radio/corsikasub/config"
	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/format"
	"github.com/corsika-radio/corsikasub/seed"
	"github.com/corsika-radio/corsikasub/sweep"
	"github.com/corsika-radio/corsikasub/validate"
)

var log = config.NamedLogger("card")

var errs = errors.MakeComponentErrors("card")

// Physics constants which are the same for every run.
const (
	thinningLevel     = 1e-6 // THIN first field, fraction of primary energy
	parallelFraction  = 1e-3 // PARALLEL ECTMAX as fraction of primary energy
	keywordFieldWidth = 7
)

// Input holds everything rendered into one card.
type Input struct {
	Run     sweep.Run
	Seeds   seed.Set
	Physics config.Physics
	// Directory receives simulator output (DIRECT).
	Directory string
	// DataDir is the simulator run directory with data tables (DATDIR).
	DataDir  string
	Username string
}

type cardSerializerFunc func(in Input) []string

func single(value string) []string {
	return []string{value}
}

var cardSerializers = map[string]cardSerializerFunc{
	"RUNNR": func(in Input) []string { return single(fmt.Sprintf("%d", in.Run.Number)) },
	"EVTNR": func(in Input) []string { return single("1") },
	"SEED": func(in Input) []string {
		lines := make([]string, len(in.Seeds))
		for i, value := range in.Seeds {
			lines[i] = fmt.Sprintf("%d    0    0", value)
		}
		return lines
	},
	"NSHOW":  func(in Input) []string { return single("1") },
	"PRMPAR": func(in Input) []string { return single(fmt.Sprintf("%d", in.Run.Primary)) },
	"ERANGE": func(in Input) []string {
		energy := format.Scientific(in.Run.EnergyGeV())
		return single(energy + "    " + energy)
	},
	"THETAP": func(in Input) []string {
		zenith := format.Shortest(in.Run.ZenithDeg)
		return single(zenith + "    " + zenith)
	},
	"PHIP": func(in Input) []string {
		azimuth := format.Shortest(in.Run.AzimuthDeg)
		return single(azimuth + " " + azimuth)
	},
	"ECUTS": func(in Input) []string { return single("3.0E-01 1.0E-02 2.5E-04 2.5E-04") },
	"PARALLEL": func(in Input) []string {
		return single("1E3 " + format.Scientific(parallelFraction*in.Run.EnergyGeV()) + " 1 F")
	},
	"ELMFLG": func(in Input) []string { return single("T    T") },
	"THIN": func(in Input) []string {
		return single(format.Compact(thinningLevel) + " " +
			format.Scientific(thinningLevel*in.Run.EnergyGeV()) + " 5.0E+03")
	},
	"THINH":  func(in Input) []string { return single("1.000E+00 1.000E+02") },
	"STEPFC": func(in Input) []string { return single("1.0") },
	"OBSLEV": func(in Input) []string { return single(format.Shortest(in.Run.ObsLevelCm)) },
	"ECTMAP": func(in Input) []string { return single("1.E+15") },
	"MUMULT": func(in Input) []string { return single("T") },
	"MUADDI": func(in Input) []string { return single("T") },
	"MAXPRT": func(in Input) []string { return single("1") },
	"MAGNET": func(in Input) []string {
		return single(fmt.Sprintf("%.3f    %.3f", in.Physics.MagneticFieldHorizontal, in.Physics.MagneticFieldVertical))
	},
	"PAROUT": func(in Input) []string { return single("T  F") },
	"LONGI":  func(in Input) []string { return single("T   5.     T       T") },
	"RADNKG": func(in Input) []string { return single("5.E+05") },
	"ATMFILE": func(in Input) []string {
		return single(filepath.Join(in.DataDir, in.Physics.AtmosphereFile))
	},
	"DIRECT": func(in Input) []string { return single(in.Directory + "/") },
	"DATDIR": func(in Input) []string { return single(in.DataDir) },
	"USER":   func(in Input) []string { return single(in.Username) },
	"EXIT":   func(in Input) []string { return single("") },
}

var cardOrder = []string{
	"RUNNR", "EVTNR", "SEED", "NSHOW", "PRMPAR", "ERANGE", "THETAP", "PHIP",
	"ECUTS", "PARALLEL", "ELMFLG", "THIN", "THINH", "STEPFC", "OBSLEV", "ECTMAP",
	"MUMULT", "MUADDI", "MAXPRT", "MAGNET", "PAROUT", "LONGI", "RADNKG",
	"ATMFILE", "DIRECT", "DATDIR", "USER", "EXIT",
}

// Serialize renders card content.
func Serialize(in Input) (string, error) {
	if err := checkInput(in); err != nil {
		return "", err
	}

	writer := &bytes.Buffer{}
	for _, cardName := range cardOrder {
		cardSerializer := cardSerializers[cardName]
		for _, cardContent := range cardSerializer(in) {
			writer.WriteString(serializeCardLine(cardName, cardContent))
			writer.WriteString("\n")
		}
	}
	return writer.String(), nil
}

// Write renders card into path. The parent directory must exist.
func Write(path string, in Input) error {
	content, err := Serialize(in)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errs.IO("write %s: %w", path, err)
	}
	log.Debugf("card %s written for run %d", path, in.Run.Number)
	return nil
}

func serializeCardLine(name, content string) string {
	if content == "" {
		return name
	}
	return fmt.Sprintf("%-*s %s", keywordFieldWidth, name, content)
}

func checkInput(in Input) error {
	energy := in.Run.EnergyGeV()
	if !format.Finite(energy) || energy <= 0 {
		return errs.Formatting("energy %v GeV of run %d is not representable", energy, in.Run.Number)
	}
	if !validate.InRangeZenith(in.Run.ZenithDeg) {
		return errs.Formatting("zenith %v of run %d outside [0, 90]", in.Run.ZenithDeg, in.Run.Number)
	}
	if !validate.InRangeAzimuth(in.Run.AzimuthDeg) {
		return errs.Formatting("azimuth %v of run %d outside [0, 360)", in.Run.AzimuthDeg, in.Run.Number)
	}
	if !format.Finite(in.Run.ObsLevelCm) || in.Run.ObsLevelCm < 0 {
		return errs.Formatting("observation level %v of run %d", in.Run.ObsLevelCm, in.Run.Number)
	}
	for name, value := range map[string]string{
		"DIRECT": in.Directory, "DATDIR": in.DataDir, "USER": in.Username,
		"ATMFILE": in.Physics.AtmosphereFile,
	} {
		if value == "" || strings.ContainsAny(value, " \t\r\n") {
			return errs.Formatting("%s value %q must be a single non empty word", name, value)
		}
	}
	return nil
}
