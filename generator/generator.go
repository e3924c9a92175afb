// Package generator writes every artifact of a run into its folder and hands
// job scripts to the scheduler.
package generator

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/corsika-radio/corsikasub/antenna"
	"github.com/corsika-radio/corsikasub/card"
	"github.com/corsika-radio/corsikasub/config"
	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/format"
	"github.com/corsika-radio/corsikasub/jobscript"
	"github.com/corsika-radio/corsikasub/manifest"
	"github.com/corsika-radio/corsikasub/registry"
	"github.com/corsika-radio/corsikasub/scheduler"
	"github.com/corsika-radio/corsikasub/seed"
	"github.com/corsika-radio/corsikasub/sweep"
)

var log = config.NamedLogger("generator")

var errs = errors.MakeComponentErrors("generator")

// PrepareOutputLayout creates data and log directories under dirSimulations.
// Existing directories and their content are kept, so calling it again or
// from concurrent sweeps is safe. dirSimulations itself must exist.
func PrepareOutputLayout(dirSimulations string) error {
	info, err := os.Stat(dirSimulations)
	if err != nil || !info.IsDir() {
		return errs.Configuration("simulations directory %s does not exist", dirSimulations)
	}
	for _, dir := range []string{sweep.DataDir(dirSimulations), sweep.LogDir(dirSimulations)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errs.IO("create %s: %w", dir, err)
		}
	}
	return nil
}

// NewSubmitter returns DryRun in dry run mode, sbatch otherwise.
func NewSubmitter(conf *config.Config) (scheduler.Submitter, error) {
	if conf.DryRun {
		return &scheduler.DryRun{}, nil
	}
	return scheduler.FromCluster(conf.Site.Cluster)
}

// Generator produces runs of one configuration.
type Generator struct {
	conf      *config.Config
	deriver   seed.Deriver
	antennas  *antenna.Writer
	submitter scheduler.Submitter
	options   jobscript.Options
	now       func() time.Time
}

// New Generator. Antenna layout kind is resolved here, so an invalid kind
// fails before any file is written.
func New(conf *config.Config, tables registry.Tables, submitter scheduler.Submitter) (*Generator, error) {
	antennas, err := antenna.NewWriter(conf.AntennaType, conf.Site.Antennas, conf.Site.Physics)
	if err != nil {
		return nil, err
	}
	return &Generator{
		conf:      conf,
		deriver:   seed.NewDeriver(tables),
		antennas:  antennas,
		submitter: submitter,
		options:   jobscript.Options{Partition: conf.Partition(), Cluster: conf.Site.Cluster},
		now:       time.Now,
	}, nil
}

// RunResult describes a generated run.
type RunResult struct {
	Layout sweep.Layout
	Seeds  seed.Set
	JobID  string
}

// Seeds derives seeds of run.
func (g *Generator) Seeds(run sweep.Run) (seed.Set, error) {
	return g.deriver.ForRun(run.Number, run.Primary, run.AzimuthDeg, run.ZenithDeg)
}

// GenerateRun writes card, antenna files and job script of run into its
// folder, then submits the job script. The run folder is created only after
// seeds and antenna positions of the run are known to be valid.
func (g *Generator) GenerateRun(ctx context.Context, run sweep.Run) (RunResult, error) {
	layout := sweep.NewLayout(g.conf.DirSimulations, run)
	result := RunResult{Layout: layout}

	if err := g.precheck([]sweep.Run{run}); err != nil {
		return result, err
	}
	seeds, err := g.Seeds(run)
	if err != nil {
		return result, err
	}
	result.Seeds = seeds

	if err := os.MkdirAll(layout.Folder(), 0755); err != nil {
		return result, errs.IO("create run folder %s: %w", layout.Folder(), err)
	}

	err = card.Write(layout.CardPath(), card.Input{
		Run:       run,
		Seeds:     seeds,
		Physics:   g.conf.Site.Physics,
		Directory: layout.Folder(),
		DataDir:   g.conf.PathCorsika,
		Username:  g.conf.Username,
	})
	if err != nil {
		return result, err
	}
	if err := g.antennas.Write(layout); err != nil {
		return result, err
	}
	if err := jobscript.WriteRunScript(layout, g.conf.ExecutablePath(), g.options); err != nil {
		return result, err
	}

	result.JobID, err = g.submitter.Submit(ctx, layout.ScriptPath())
	if err != nil {
		return result, err
	}
	log.Infof("run %s generated in %s", run.Name(), layout.Folder())
	return result, nil
}

// precheck derives seeds and antenna positions of every run without writing
// anything, so an invalid sweep fails before its first run folder exists.
func (g *Generator) precheck(runs []sweep.Run) error {
	for _, run := range runs {
		if _, err := g.Seeds(run); err != nil {
			return err
		}
		if _, err := g.antennas.Strategy().Positions(run); err != nil {
			return err
		}
	}
	return nil
}

// GenerateSweep generates every run of s in order. The first failure aborts
// the remaining runs.
func (g *Generator) GenerateSweep(ctx context.Context, s sweep.Sweep) ([]RunResult, error) {
	runs, err := s.Expand()
	if err != nil {
		return nil, err
	}
	if err := g.precheck(runs); err != nil {
		return nil, err
	}
	results := make([]RunResult, 0, len(runs))
	for _, run := range runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := g.GenerateRun(ctx, run)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// SweepResult describes a submitted sweep.
type SweepResult struct {
	Script       string
	ManifestPath string
	Manifest     *manifest.Manifest
	JobID        string
}

// ManifestPath is where the manifest of s is written.
func ManifestPath(dirSimulations string, s sweep.Sweep) string {
	return filepath.Join(dirSimulations, jobscript.SweepName(s)+".yaml")
}

// SubmitSweep writes the sweep script and its manifest, then submits the
// script and records the job ID in the manifest. Seeds of every run are
// derived upfront, so a sweep with an unknown category fails before anything
// reaches the scheduler. A script on disk always has its manifest next to it.
func (g *Generator) SubmitSweep(ctx context.Context, s sweep.Sweep) (SweepResult, error) {
	result := SweepResult{}
	runs, err := s.Expand()
	if err != nil {
		return result, err
	}
	if err := g.precheck(runs); err != nil {
		return result, err
	}

	m, err := manifest.New(s, runs, g.conf.DirSimulations, g.Seeds, g.now())
	if err != nil {
		return result, err
	}
	m.Username = g.conf.Username
	m.Partition = g.options.Partition
	m.AntennaType = g.conf.AntennaType
	result.Manifest = m

	invocation := jobscript.Invocation{
		DirSimulations: g.conf.DirSimulations,
		Generator:      g.conf.GeneratorPath,
		Flags:          GenerateArgs(g.conf, s),
	}
	result.Script, err = jobscript.WriteSweepScript(s, runs, invocation, g.options)
	if err != nil {
		return result, err
	}
	m.Script = result.Script

	result.ManifestPath = ManifestPath(g.conf.DirSimulations, s)
	if err := m.Write(result.ManifestPath); err != nil {
		return result, err
	}

	result.JobID, err = g.submitter.Submit(ctx, result.Script)
	if err != nil {
		return result, err
	}
	if result.JobID != "" {
		m.JobID = result.JobID
		if err := m.Write(result.ManifestPath); err != nil {
			return result, err
		}
	}
	log.Infof("sweep %s with %d runs, manifest %s", jobscript.SweepName(s), len(runs), result.ManifestPath)
	return result, nil
}

// GenerateArgs are the flags of the generate command reproducing conf and s.
func GenerateArgs(conf *config.Config, s sweep.Sweep) []string {
	args := []string{
		"--username", conf.Username,
		"--dirSimulations", conf.DirSimulations,
		"--pathCorsika", conf.PathCorsika,
		"--corsikaExe", conf.CorsikaExe,
		"--antenna_type", conf.AntennaType,
		"--logging-level", conf.LoggingLevel,
		"--primary", strconv.Itoa(s.Primary),
		"--startNumber", strconv.Itoa(s.StartRun),
		"--endNumber", strconv.Itoa(s.EndRun),
		"--energyStart", format.Shortest(s.EnergyStart),
		"--energyEnd", format.Shortest(s.EnergyEnd),
		"--energyStep", format.Shortest(s.EnergyStep),
		"--zenithStart", format.Shortest(s.ZenithStart),
		"--zenithEnd", format.Shortest(s.ZenithEnd),
		"--obslev", format.Shortest(s.ObsLevel),
	}
	if strings.TrimSpace(conf.SitePath) != "" {
		args = append(args, "--site", conf.SitePath)
	}
	if conf.Debug {
		args = append(args, "--debug")
	}
	return args
}
