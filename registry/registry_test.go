package registry

import (
	"testing"

	"github.com/corsika-radio/corsikasub/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleIDs(t *testing.T) {
	tables := Default()

	for code, expectedID := range map[int]int{1: 0, 14: 1, 402: 2, 1608: 3, 5626: 4} {
		id, err := tables.Particles.ID(code)
		require.NoError(t, err)
		assert.Equal(t, expectedID, id, "code %d", code)
	}
	assert.Equal(t, "proton", tables.Particles.Name(14))
	assert.Equal(t, "code7", tables.Particles.Name(7))
}

func TestUnknownParticleRejected(t *testing.T) {
	id, err := Default().Particles.ID(999999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownCategory))
	assert.Equal(t, 0, id)
}

func TestDuplicatedParticle(t *testing.T) {
	_, err := NewParticles([]Particle{{Code: 14}, {Code: 14}})
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestAzimuthBuckets(t *testing.T) {
	angles := Angles{}
	testCases := []struct {
		deg    float64
		bucket int
	}{
		{0, 0}, {44.99, 0}, {45, 1}, {180, 4}, {359.99, 7},
	}
	for _, tc := range testCases {
		bucket, err := angles.AzimuthBucket(tc.deg)
		require.NoError(t, err)
		assert.Equal(t, tc.bucket, bucket, "azimuth %v", tc.deg)
	}

	for _, deg := range []float64{-1, 360, 720} {
		_, err := angles.AzimuthBucket(deg)
		assert.True(t, errors.Is(err, errors.ErrUnknownCategory), "azimuth %v", deg)
	}
}

func TestZenithBuckets(t *testing.T) {
	angles := Angles{}
	testCases := []struct {
		deg    float64
		bucket int
	}{
		{0, 0}, {9.99, 0}, {30, 3}, {65, 6}, {89.9, 8}, {90, 8},
	}
	for _, tc := range testCases {
		bucket, err := angles.ZenithBucket(tc.deg)
		require.NoError(t, err)
		assert.Equal(t, tc.bucket, bucket, "zenith %v", tc.deg)
	}

	_, err := angles.ZenithBucket(91)
	assert.True(t, errors.Is(err, errors.ErrUnknownCategory))
}
