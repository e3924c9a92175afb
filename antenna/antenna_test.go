package antenna

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corsika-radio/corsikasub/config"
	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRun = sweep.Run{
	Number:      1,
	Primary:     14,
	Log10Energy: 8,
	ZenithDeg:   30,
	AzimuthDeg:  0,
	ObsLevelCm:  150000,
}

func TestNewStrategy(t *testing.T) {
	options := config.DefaultSite().Antennas
	for _, kind := range config.AntennaTypes {
		strategy, err := NewStrategy(kind, options)
		require.NoError(t, err)
		assert.Equal(t, kind, strategy.Name())
	}

	_, err := NewStrategy("grid", options)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestStarshapeVertical(t *testing.T) {
	strategy := starshape{arms: 4, onArm: 2, spacing: 25}
	run := testRun
	run.ZenithDeg = 0

	positions, err := strategy.Positions(run)
	require.NoError(t, err)
	assert.Equal(t, []Position{
		{North: 2500, West: 0, Vertical: 150000, Name: "pos_25_0"},
		{North: 0, West: 2500, Vertical: 150000, Name: "pos_25_90"},
		{North: -2500, West: 0, Vertical: 150000, Name: "pos_25_180"},
		{North: 0, West: -2500, Vertical: 150000, Name: "pos_25_270"},
		{North: 5000, West: 0, Vertical: 150000, Name: "pos_50_0"},
		{North: 0, West: 5000, Vertical: 150000, Name: "pos_50_90"},
		{North: -5000, West: 0, Vertical: 150000, Name: "pos_50_180"},
		{North: 0, West: -5000, Vertical: 150000, Name: "pos_50_270"},
	}, positions)
}

func TestStarshapeInclinedProjection(t *testing.T) {
	strategy := starshape{arms: 4, onArm: 1, spacing: 25}
	run := testRun
	run.ZenithDeg = 60
	run.AzimuthDeg = 90

	positions, err := strategy.Positions(run)
	require.NoError(t, err)
	require.Len(t, positions, 4)

	// first arm follows the azimuth and is stretched by 1/cos(60)
	assert.InDelta(t, 0, positions[0].North, 0.01)
	assert.InDelta(t, 5000, positions[0].West, 0.01)
	// perpendicular arm keeps its length
	assert.InDelta(t, -2500, positions[1].North, 0.01)
	assert.InDelta(t, 0, positions[1].West, 0.01)
}

func TestRandomDeterministicInsideFootprint(t *testing.T) {
	strategy := random{count: 200, radius: 1000}
	run := testRun
	run.ZenithDeg = 45
	run.AzimuthDeg = 30

	first, err := strategy.Positions(run)
	require.NoError(t, err)
	second, err := strategy.Positions(run)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	require.Len(t, first, 200)

	cosZenith := math.Cos(run.ZenithDeg * math.Pi / 180)
	azimuth := run.AzimuthDeg * math.Pi / 180
	for _, position := range first {
		// back into the shower plane, in meters
		u := (position.North*math.Cos(azimuth) + position.West*math.Sin(azimuth)) / 100 * cosZenith
		v := (-position.North*math.Sin(azimuth) + position.West*math.Cos(azimuth)) / 100
		assert.LessOrEqual(t, math.Hypot(u, v), 1000.01, position.Name)
		assert.Equal(t, run.ObsLevelCm, position.Vertical)
	}

	other := run
	other.Number = 2
	third, err := strategy.Positions(other)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestProjectionRejectsHorizontalShower(t *testing.T) {
	run := testRun
	run.ZenithDeg = 89
	_, err := starshape{arms: 8, onArm: 1, spacing: 25}.Positions(run)
	assert.True(t, errors.Is(err, errors.ErrFormatting))
}

func TestSerializeList(t *testing.T) {
	list := SerializeList([]Position{
		{North: 2500, West: -12.5, Vertical: 150000, Name: "pos_25_0"},
	})
	assert.Equal(t, "AntennaPosition = 2500 -12.5 150000 pos_25_0\n", list)
}

func TestWriterWritesRadioFiles(t *testing.T) {
	site := config.DefaultSite()
	writer, err := NewWriter(config.AntennaStarshape, site.Antennas, site.Physics)
	require.NoError(t, err)

	layout := sweep.NewLayout(t.TempDir(), testRun)
	require.NoError(t, os.MkdirAll(layout.Folder(), 0755))
	require.NoError(t, writer.Write(layout))

	list, err := os.ReadFile(layout.AntennaListPath())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(list)), "\n")
	assert.Len(t, lines, site.Antennas.Arms*site.Antennas.AntennasOnArm)
	assert.True(t, strings.HasPrefix(lines[0], "AntennaPosition = "))

	reas, err := os.ReadFile(layout.ReasPath())
	require.NoError(t, err)
	for _, expected := range []string{
		"CoreCoordinateVertical = 150000\t\t; in cm\n",
		"RunNumber = 1\n",
		"CorsikaParameterFile = SIM000001.inp\n",
		"ShowerZenithAngle = 30\t\t\t; in degrees\n",
		"PrimaryParticleEnergy = 1e+17\t\t; in eV\n",
		"PrimaryParticleType = 14\n",
		"TimeResolution = 2e-10\t\t\t\t; in s\n",
		"GroundLevelRefractiveIndex = 1.000292\t\t; specify refractive index at 0 m asl\n",
	} {
		assert.Contains(t, string(reas), expected)
	}
	assert.Equal(t, layout.Folder(), filepath.Dir(layout.ReasPath()))
}

func TestWriterMissingFolder(t *testing.T) {
	site := config.DefaultSite()
	writer, err := NewWriter(config.AntennaRandom, site.Antennas, site.Physics)
	require.NoError(t, err)

	err = writer.Write(sweep.NewLayout(filepath.Join(t.TempDir(), "missing"), testRun))
	assert.True(t, errors.Is(err, errors.ErrIO))
}
