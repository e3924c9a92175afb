package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/registry"
	"github.com/corsika-radio/corsikasub/seed"
	"github.com/corsika-radio/corsikasub/sweep"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSweep = sweep.Sweep{
	Primary: 14, StartRun: 1, EndRun: 2,
	EnergyStart: 8, EnergyEnd: 8.1, EnergyStep: 0.1,
	ZenithStart: 30, ZenithEnd: 30, ObsLevel: 150000,
}

func deriveSeeds(run sweep.Run) (seed.Set, error) {
	return seed.NewDeriver(registry.Default()).ForRun(run.Number, run.Primary, run.AzimuthDeg, run.ZenithDeg)
}

func newTestManifest(t *testing.T) *Manifest {
	runs, err := testSweep.Expand()
	require.NoError(t, err)
	m, err := New(testSweep, runs, "/sims", deriveSeeds, time.Date(2026, 3, 1, 12, 0, 0, 5, time.UTC))
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	m := newTestManifest(t)

	_, err := uuid.Parse(m.ID)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), m.Created)
	require.Len(t, m.Runs, 4)

	for _, entry := range m.Runs {
		expected, err := deriveSeeds(entry.Run)
		require.NoError(t, err)
		assert.Equal(t, expected, entry.Seeds)
		assert.Equal(t, sweep.NewLayout("/sims", entry.Run).Folder(), entry.Folder)
	}

	third, ok := m.Run(3)
	require.True(t, ok)
	assert.Equal(t, 8.1, third.Log10Energy)
	assert.Equal(t, "/sims/data/003", third.Folder)

	_, ok = m.Run(5)
	assert.False(t, ok)
}

func TestNewPropagatesSeedErrors(t *testing.T) {
	_, err := New(testSweep, []sweep.Run{{Number: 1, Primary: 99}}, "/sims", deriveSeeds, time.Now())

	assert.True(t, errors.Is(err, errors.ErrUnknownCategory))
}

func TestWriteRead(t *testing.T) {
	m := newTestManifest(t)
	m.Script = "/sims/sweep_000001-000002.sh"
	m.JobID = "77"
	path := filepath.Join(t.TempDir(), "manifest.yaml")

	require.NoError(t, m.Write(path))
	read, err := Read(path)
	require.NoError(t, err)

	if diff := cmp.Diff(m, read); diff != "" {
		t.Errorf("manifest mismatch (-written +read):\n%s", diff)
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "seeds: [1000001, ")
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, errors.ErrIO))

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("runs: {"), 0644))
	_, err = Read(broken)
	assert.True(t, errors.Is(err, errors.ErrFormatting))

	err = newTestManifest(t).Write(filepath.Join(dir, "missing", "m.yaml"))
	assert.True(t, errors.Is(err, errors.ErrIO))
}
