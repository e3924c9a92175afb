// Package config provides configuration from command-line, environment and
// the TOML site file.
package config

import (
	"os"
	"path/filepath"

	"github.com/corsika-radio/corsikasub/errors"
)

// ConfigurationError ...
var ConfigurationError = errors.ConfigurationError

// Antenna layout kinds.
const (
	AntennaRandom    = "random"
	AntennaStarshape = "starshape"
)

// AntennaTypes lists accepted --antenna_type values.
var AntennaTypes = []string{AntennaRandom, AntennaStarshape}

// Config contains the whole tool configuration.
type Config struct {
	Username           string `env:"USERNAME"`
	DirSimulations     string `env:"DIR_SIMULATIONS"`
	PathCorsika        string `env:"PATH_CORSIKA"`
	CorsikaExe         string `env:"CORSIKA_EXE"`
	InputParameterFile string `env:"INPUT_PARAMETER_FILE"`
	AntennaType        string `env:"ANTENNA_TYPE"`
	SitePath           string `env:"SITE"`
	LoggingLevel       string `env:"LOGGING_LEVEL"`
	// GeneratorPath is the binary the sweep script re-invokes per run.
	GeneratorPath string `env:"GENERATOR"`

	DryRun bool
	Debug  bool

	Site Site
}

// ExecutablePath is full path of the simulator executable.
func (c *Config) ExecutablePath() string {
	return filepath.Join(c.PathCorsika, c.CorsikaExe)
}

// Partition selects the scheduler partition.
func (c *Config) Partition() string {
	if c.Debug {
		return c.Site.Cluster.DebugPartition
	}
	return c.Site.Cluster.Partition
}

// Default returns configuration with values used when nothing else is set.
func Default() *Config {
	workDir, _ := os.Getwd()
	generator, _ := os.Executable()
	return &Config{
		Username:           os.Getenv("USER"),
		DirSimulations:     filepath.Join(workDir, "..", "outputs"),
		PathCorsika:        filepath.Join(workDir, "..", "corsika-77550", "run"),
		CorsikaExe:         "mpi_corsika77550Linux_SIBYLL_urqmd_thin_coreas_parallel_runner",
		InputParameterFile: filepath.Join(workDir, "input_file.txt"),
		AntennaType:        AntennaRandom,
		LoggingLevel:       "info",
		GeneratorPath:      generator,
		Site:               DefaultSite(),
	}
}
