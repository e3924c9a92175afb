package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Site holds cluster and physics constants of one installation.
type Site struct {
	Cluster  Cluster  `toml:"cluster"`
	Physics  Physics  `toml:"physics"`
	Antennas Antennas `toml:"antennas"`
}

// Cluster describes how jobs are requested from the scheduler.
type Cluster struct {
	Partition      string `toml:"partition"`
	DebugPartition string `toml:"debug_partition"`
	// SubmitCommand is the scheduler CLI used for submission.
	SubmitCommand string `toml:"submit_command"`
	// SubmitTimeout bounds a single submission, e.g. "30s".
	SubmitTimeout string `toml:"submit_timeout"`
	// MPIRunner launches the parallel simulator executable.
	MPIRunner string `toml:"mpi_runner"`

	Sweep Resources `toml:"sweep"`
	Run   Resources `toml:"run"`
}

// Resources requested for one job.
type Resources struct {
	Nodes       int    `toml:"nodes"`
	Tasks       int    `toml:"tasks"`
	CpusPerTask int    `toml:"cpus_per_task"`
	Time        string `toml:"time"`
}

// Physics holds simulator constants which depend on the site location.
type Physics struct {
	// Horizontal and vertical components of the geomagnetic field in uT.
	MagneticFieldHorizontal float64 `toml:"magnetic_field_horizontal"`
	MagneticFieldVertical   float64 `toml:"magnetic_field_vertical"`
	AtmosphereFile          string  `toml:"atmosphere_file"`
	// RotationAngleForMagfieldDeclination in degrees, written to the CoREAS file.
	MagneticDeclination      float64 `toml:"magnetic_declination"`
	GroundRefractiveIndex    float64 `toml:"ground_refractive_index"`
	TimeResolution           float64 `toml:"time_resolution"`
	AutomaticTimeBoundaries  float64 `toml:"automatic_time_boundaries"`
	ResolutionReductionScale float64 `toml:"resolution_reduction_scale"`
}

// Antennas holds geometry of the antenna layouts, lengths in meters.
type Antennas struct {
	// random layout
	Count           int     `toml:"count"`
	FootprintRadius float64 `toml:"footprint_radius"`
	// starshape layout
	Arms          int     `toml:"arms"`
	AntennasOnArm int     `toml:"antennas_on_arm"`
	ArmSpacing    float64 `toml:"arm_spacing"`
}

// SubmitTimeoutDuration parses SubmitTimeout.
func (c Cluster) SubmitTimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.SubmitTimeout)
}

// DefaultSite values describe the Dunhuang site on the KIT HoreKa cluster.
func DefaultSite() Site {
	return Site{
		Cluster: Cluster{
			Partition:      "cpu_only",
			DebugPartition: "dev_cpuonly",
			SubmitCommand:  "sbatch",
			SubmitTimeout:  "30s",
			MPIRunner:      "mpirun",
			Sweep:          Resources{Nodes: 2, Tasks: 2, CpusPerTask: 12, Time: "03:00:00"},
			Run:            Resources{Nodes: 1, Tasks: 76, CpusPerTask: 1, Time: "48:00:00"},
		},
		Physics: Physics{
			MagneticFieldHorizontal:  26.860,
			MagneticFieldVertical:    49.687,
			AtmosphereFile:           "ATMOSPHERE_20170401120000_Dunhuang.DAT",
			MagneticDeclination:      0,
			GroundRefractiveIndex:    1.000292,
			TimeResolution:           2e-10,
			AutomaticTimeBoundaries:  4e-07,
			ResolutionReductionScale: 0,
		},
		Antennas: Antennas{
			Count:           160,
			FootprintRadius: 1000,
			Arms:            8,
			AntennasOnArm:   30,
			ArmSpacing:      25,
		},
	}
}

// LoadSite decodes the TOML site file on top of site. Keys missing in the
// file keep their current values.
func LoadSite(path string, site *Site) error {
	meta, err := toml.DecodeFile(path, site)
	if err != nil {
		return ConfigurationError("site file %s: %v", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return ConfigurationError("site file %s: unknown keys %v", path, undecoded)
	}
	return nil
}
