package config

import (
	"fmt"
	"os"

	"github.com/corsika-radio/corsikasub/errors"
)

type checkFunc func(conf *Config) error

// Check validates conf before any file is generated.
// All failed checks are reported together.
func Check(conf *Config) error {
	checkFuncs := map[string]checkFunc{
		"username":       checkUsername,
		"dirSimulations": checkDirSimulations,
		"pathCorsika":    checkPathCorsika,
		"corsikaExe":     checkExecutable,
		"antenna_type":   checkAntennaType,
		"logging-level":  checkLoggingLevel,
		"site":           checkSite,
	}

	result := errors.FormError{}
	for name, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			result[name] = err
		}
	}

	if err := result.OrNil(); err != nil {
		return ConfigurationError("%v", err)
	}
	return nil
}

func checkUsername(conf *Config) error {
	if conf.Username == "" {
		return fmt.Errorf("username is empty")
	}
	return nil
}

func checkDirSimulations(conf *Config) error {
	return checkDirectory(conf.DirSimulations, "please create it!")
}

func checkPathCorsika(conf *Config) error {
	return checkDirectory(conf.PathCorsika, "unpack corsika package to this path!")
}

func checkDirectory(path, hint string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory %s does not exist, %s", path, hint)
	}
	return nil
}

func checkExecutable(conf *Config) error {
	info, err := os.Stat(conf.ExecutablePath())
	if err != nil || info.IsDir() {
		return fmt.Errorf(
			"corsika executable %s not found, check if you compiled the executable correctly",
			conf.CorsikaExe,
		)
	}
	if info.Mode().Perm()&0111 == 0 {
		return fmt.Errorf("corsika executable %s is not executable", conf.ExecutablePath())
	}
	return nil
}

func checkAntennaType(conf *Config) error {
	for _, antennaType := range AntennaTypes {
		if conf.AntennaType == antennaType {
			return nil
		}
	}
	return fmt.Errorf("invalid antenna type %q, one of: %v", conf.AntennaType, AntennaTypes)
}

func checkLoggingLevel(conf *Config) error {
	if !validateLoggingLevel(conf.LoggingLevel) {
		return fmt.Errorf("invalid logging level %q, one of: %s", conf.LoggingLevel, AvailableLoggingLevelsString)
	}
	return nil
}

func checkSite(conf *Config) error {
	cluster := conf.Site.Cluster
	if conf.Partition() == "" {
		return fmt.Errorf("partition is empty")
	}
	if cluster.SubmitCommand == "" {
		return fmt.Errorf("submit command is empty")
	}
	if _, err := cluster.SubmitTimeoutDuration(); err != nil {
		return fmt.Errorf("submit timeout: %v", err)
	}
	for name, resources := range map[string]Resources{"sweep": cluster.Sweep, "run": cluster.Run} {
		if resources.Nodes < 1 || resources.Tasks < 1 || resources.CpusPerTask < 1 {
			return fmt.Errorf("%s resources must be positive: %+v", name, resources)
		}
		if resources.Time == "" {
			return fmt.Errorf("%s time limit is empty", name)
		}
	}

	antennas := conf.Site.Antennas
	if antennas.Count < 1 || antennas.FootprintRadius <= 0 {
		return fmt.Errorf("random layout needs positive count and footprint radius")
	}
	if antennas.Arms < 1 || antennas.AntennasOnArm < 1 || antennas.ArmSpacing <= 0 {
		return fmt.Errorf("starshape layout needs positive arms, antennas on arm and spacing")
	}
	return nil
}
