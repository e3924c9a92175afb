package seed

import (
	"testing"

	"github.com/corsika-radio/corsikasub/errors"
	"github.com/corsika-radio/corsikasub/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKnownValues(t *testing.T) {
	set, err := Derive(1, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Set{1000001, 2000001, 3000001, 1000004, 2000005, 3000006}, set)
}

func TestDeriveProperties(t *testing.T) {
	for _, runNumber := range []int{1, 2, 999, 123456, MaxRunNumber} {
		for particleID := 0; particleID < 5; particleID++ {
			for azimuthID := 0; azimuthID < 8; azimuthID++ {
				for zenithID := 0; zenithID < 9; zenithID++ {
					first, err := Derive(runNumber, particleID, azimuthID, zenithID)
					require.NoError(t, err)
					second, err := Derive(runNumber, particleID, azimuthID, zenithID)
					require.NoError(t, err)

					assert.Equal(t, first, second)
					for _, value := range first {
						assert.True(t, value >= 1 && value <= Max, "seed %d", value)
					}
					assert.Equal(t, first[0]+3, first[3])
					assert.Equal(t, first[1]+4, first[4])
					assert.Equal(t, first[2]+5, first[5])
				}
			}
		}
	}
}

func TestDeriveRejectsRunNumber(t *testing.T) {
	for _, runNumber := range []int{-1, 0, MaxRunNumber + 1} {
		_, err := Derive(runNumber, 0, 0, 0)
		assert.True(t, errors.Is(err, errors.ErrFormatting), "run %d", runNumber)
	}
}

func TestDeriveRejectsNegativeCategory(t *testing.T) {
	_, err := Derive(1, -1, 0, 0)
	assert.True(t, errors.Is(err, errors.ErrUnknownCategory))
}

func TestDeriverForRun(t *testing.T) {
	deriver := NewDeriver(registry.Default())

	set, err := deriver.ForRun(1, 14, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, Set{1000001, 1, 3000001, 1000004, 5, 3000006}, set)

	_, err = deriver.ForRun(1, 999999, 0, 30)
	assert.True(t, errors.Is(err, errors.ErrUnknownCategory))

	_, err = deriver.ForRun(1, 14, 400, 30)
	assert.True(t, errors.Is(err, errors.ErrUnknownCategory))
}
