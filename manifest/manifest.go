// Package manifest records which runs a sweep produced, with their seeds and
// folders, so a sweep can be audited or resubmitted later.
package manifest

import (
	"bytes"
	"os"
	"time"

	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/seed"
	"github.com/corsika-radio/corsikasub/sweep"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var errs = errors.MakeComponentErrors("manifest")

// Manifest of one sweep submission.
type Manifest struct {
	ID          string      `yaml:"id"`
	Created     time.Time   `yaml:"created"`
	Username    string      `yaml:"username"`
	Partition   string      `yaml:"partition"`
	AntennaType string      `yaml:"antennaType"`
	Script      string      `yaml:"script"`
	JobID       string      `yaml:"jobID,omitempty"`
	Sweep       sweep.Sweep `yaml:"sweep"`
	Runs        []Entry     `yaml:"runs"`
}

// Entry describes a single run of the sweep.
type Entry struct {
	sweep.Run `yaml:",inline"`
	Seeds     seed.Set `yaml:"seeds,flow"`
	Folder    string   `yaml:"folder"`
}

// SeedFunc derives seeds of a run.
type SeedFunc = func(run sweep.Run) (seed.Set, error)

// New builds manifest of runs under dirSimulations with a fresh ID.
func New(s sweep.Sweep, runs []sweep.Run, dirSimulations string, seeds SeedFunc, created time.Time) (*Manifest, error) {
	m := &Manifest{
		ID:      uuid.New().String(),
		Created: created.UTC().Truncate(time.Second),
		Sweep:   s,
		Runs:    make([]Entry, 0, len(runs)),
	}
	for _, run := range runs {
		set, err := seeds(run)
		if err != nil {
			return nil, err
		}
		m.Runs = append(m.Runs, Entry{
			Run:    run,
			Seeds:  set,
			Folder: sweep.NewLayout(dirSimulations, run).Folder(),
		})
	}
	return m, nil
}

// Write manifest as YAML.
func (m *Manifest) Write(path string) error {
	buffer := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(m); err != nil {
		return errs.Formatting("encode manifest %s: %v", m.ID, err)
	}
	if err := encoder.Close(); err != nil {
		return errs.Formatting("encode manifest %s: %v", m.ID, err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return errs.IO("write %s: %w", path, err)
	}
	return nil
}

// Read manifest from YAML file.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.IO("read %s: %w", path, err)
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errs.Formatting("decode %s: %v", path, err)
	}
	return m, nil
}

// Run finds the entry of a run number.
func (m *Manifest) Run(number int) (Entry, bool) {
	for _, entry := range m.Runs {
		if entry.Number == number {
			return entry, true
		}
	}
	return Entry{}, false
}
