// Package jobscript renders SLURM batch scripts: one per run, invoking the
// simulator, and one per sweep, invoking the per-run generator.
package jobscript

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/corsika-radio/corsikasub/config"
	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/sweep"
)

var log = config.NamedLogger("jobscript")

var errs = errors.MakeComponentErrors("jobscript")

// Options shared by every script of an invocation.
type Options struct {
	Partition string
	Cluster   config.Cluster
}

var funcs = template.FuncMap{"quote": quote}

// The following variables are available in the header template:
//
// Partition   scheduler partition
// JobName     unique per script
// Output      scheduler stdout path
// Error       scheduler stderr path
// Resources   config.Resources
var headerTemplate = `#!/bin/bash
#SBATCH --partition={{.Partition}}
#SBATCH --job-name={{.JobName}}
#SBATCH --output={{.Output}}
#SBATCH --error={{.Error}}
#SBATCH --nodes={{.Resources.Nodes}}
#SBATCH --ntasks={{.Resources.Tasks}}
#SBATCH --cpus-per-task={{.Resources.CpusPerTask}}
#SBATCH --time={{.Resources.Time}}
`

var runTemplate = template.Must(template.New("run").Funcs(funcs).Parse(headerTemplate + `
cd {{quote .Folder}}
{{.MPIRunner}} -np "$SLURM_NTASKS" {{quote .Executable}} {{quote .Card}} > {{quote .SimulatorLog}} 2>&1
`))

var sweepTemplate = template.Must(template.New("sweep").Funcs(funcs).Parse(headerTemplate + `
set -eu

GENERATOR={{quote .Generator}}
FLAGS=(
{{- range .Flags}}
  {{quote .}}
{{- end}}
)
{{range .Runs}}
"$GENERATOR" generate "${FLAGS[@]}" --run {{.Number}} > {{quote .Log}} 2>&1
{{- end}}
`))

type header struct {
	Partition string
	JobName   string
	Output    string
	Error     string
	Resources config.Resources
}

// RenderRunScript renders the job script of one run.
func RenderRunScript(layout sweep.Layout, executable string, options Options) (string, error) {
	run := layout.Run()
	data := struct {
		header
		Folder       string
		MPIRunner    string
		Executable   string
		Card         string
		SimulatorLog string
	}{
		header: header{
			Partition: options.Partition,
			JobName:   run.Name(),
			Output:    layout.SchedulerOutputPath(),
			Error:     layout.SchedulerErrorPath(),
			Resources: options.Cluster.Run,
		},
		Folder:       layout.Folder(),
		MPIRunner:    options.Cluster.MPIRunner,
		Executable:   executable,
		Card:         layout.CardPath(),
		SimulatorLog: layout.SimulatorLogPath(),
	}
	return render(runTemplate, data)
}

// WriteRunScript writes the job script of one run into its folder.
func WriteRunScript(layout sweep.Layout, executable string, options Options) error {
	content, err := RenderRunScript(layout, executable, options)
	if err != nil {
		return err
	}
	return writeScript(layout.ScriptPath(), content)
}

// Invocation describes how the sweep script calls the per-run generator.
type Invocation struct {
	DirSimulations string
	Generator      string
	// Flags passed to every generate call, --run is appended per run.
	Flags []string
}

type sweepRun struct {
	Number int
	Log    string
}

// SweepName identifies a sweep in job and file names.
func SweepName(s sweep.Sweep) string {
	return fmt.Sprintf("sweep_%06d-%06d", s.StartRun, s.EndRun)
}

// SweepScriptPath is where the sweep script is written.
func SweepScriptPath(dirSimulations string, s sweep.Sweep) string {
	return filepath.Join(dirSimulations, SweepName(s)+".sh")
}

// SweepScript renders the script which generates and submits every run of
// the sweep. Every run gets its own generate call and log file.
func SweepScript(s sweep.Sweep, runs []sweep.Run, invocation Invocation, options Options) (string, error) {
	if len(runs) == 0 {
		return "", errs.Configuration("sweep %s has no runs", SweepName(s))
	}
	logDir := sweep.LogDir(invocation.DirSimulations)
	data := struct {
		header
		Generator string
		Flags     []string
		Runs      []sweepRun
	}{
		header: header{
			Partition: options.Partition,
			JobName:   SweepName(s),
			Output:    filepath.Join(logDir, SweepName(s)+"_%j.out"),
			Error:     filepath.Join(logDir, SweepName(s)+"_%j.err"),
			Resources: options.Cluster.Sweep,
		},
		Generator: invocation.Generator,
		Flags:     invocation.Flags,
	}

	seen := map[int]bool{}
	for _, run := range runs {
		if seen[run.Number] {
			return "", errs.Configuration("run number %d appears twice in sweep", run.Number)
		}
		seen[run.Number] = true
		data.Runs = append(data.Runs, sweepRun{
			Number: run.Number,
			Log:    sweep.NewLayout(invocation.DirSimulations, run).GeneratorLogPath(),
		})
	}
	return render(sweepTemplate, data)
}

// WriteSweepScript renders and writes the sweep script, returning its path.
func WriteSweepScript(s sweep.Sweep, runs []sweep.Run, invocation Invocation, options Options) (string, error) {
	content, err := SweepScript(s, runs, invocation, options)
	if err != nil {
		return "", err
	}
	path := SweepScriptPath(invocation.DirSimulations, s)
	return path, writeScript(path, content)
}

func render(t *template.Template, data interface{}) (string, error) {
	writer := &bytes.Buffer{}
	if err := t.Execute(writer, data); err != nil {
		return "", errs.Formatting("%s template: %v", t.Name(), err)
	}
	return writer.String(), nil
}

func writeScript(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return errs.IO("write %s: %w", path, err)
	}
	log.Debugf("script %s written", path)
	return nil
}

// quote makes value a single shell word.
func quote(value string) string {
	if value != "" && strings.Trim(value, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_./=:,+%") == "" {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'"'"'`) + "'"
}
