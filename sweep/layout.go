package sweep

import (
	"fmt"
	"path/filepath"
)

// Layout names every file of one run. All writers of a run take paths from
// the same Layout, so they always target the same folder.
type Layout struct {
	base string
	run  Run
}

// NewLayout of run under the simulations directory.
func NewLayout(dirSimulations string, run Run) Layout {
	return Layout{base: dirSimulations, run: run}
}

// Run of the layout.
func (l Layout) Run() Run {
	return l.run
}

// Folder holds input card, radio files, job script and simulator output.
func (l Layout) Folder() string {
	return filepath.Join(DataDir(l.base), fmt.Sprintf("%03d", l.run.Number))
}

// CardPath of the simulator input card.
func (l Layout) CardPath() string {
	return l.file(".inp")
}

// AntennaListPath of the CoREAS antenna list.
func (l Layout) AntennaListPath() string {
	return l.file(".list")
}

// ReasPath of the CoREAS parameter file.
func (l Layout) ReasPath() string {
	return l.file(".reas")
}

// ScriptPath of the job script.
func (l Layout) ScriptPath() string {
	return l.file(".sh")
}

// SimulatorLogPath receives simulator stdout.
func (l Layout) SimulatorLogPath() string {
	return l.file(".log")
}

// SchedulerOutputPath with %j replaced by the scheduler with job ID.
func (l Layout) SchedulerOutputPath() string {
	return filepath.Join(LogDir(l.base), l.run.Name()+"_%j.out")
}

// SchedulerErrorPath with %j replaced by the scheduler with job ID.
func (l Layout) SchedulerErrorPath() string {
	return filepath.Join(LogDir(l.base), l.run.Name()+"_%j.err")
}

// GeneratorLogPath receives output of the per-run generator started by the
// sweep script.
func (l Layout) GeneratorLogPath() string {
	return filepath.Join(LogDir(l.base), "generate_"+l.run.Name()+".log")
}

func (l Layout) file(extension string) string {
	return filepath.Join(l.Folder(), l.run.Name()+extension)
}

// DataDir is the parent of every run folder.
func DataDir(dirSimulations string) string {
	return filepath.Join(dirSimulations, "data")
}

// LogDir holds scheduler logs.
func LogDir(dirSimulations string) string {
	return filepath.Join(dirSimulations, "logs")
}
