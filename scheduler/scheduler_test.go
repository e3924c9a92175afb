package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/corsika-radio/corsikasub/config"
	"github.com/corsika-radio/corsikasub/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobID(t *testing.T) {
	jobID, err := parseJobID("Submitted batch job 123456\n")
	require.NoError(t, err)
	assert.Equal(t, "123456", jobID)

	jobID, err = parseJobID("sbatch: Verify job submission ...\nSubmitted batch job 7\n")
	require.NoError(t, err)
	assert.Equal(t, "7", jobID)

	_, err = parseJobID("")
	assert.True(t, errors.Is(err, errors.ErrIO))
}

func TestNewSbatch(t *testing.T) {
	_, err := NewSbatch("  ", time.Second)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))

	_, err = NewSbatch("sbatch", 0)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))

	s, err := FromCluster(config.DefaultSite().Cluster)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, s.timeout)

	cluster := config.DefaultSite().Cluster
	cluster.SubmitTimeout = "soon"
	_, err = FromCluster(cluster)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestDryRun(t *testing.T) {
	d := &DryRun{}

	jobID, err := d.Submit(context.Background(), "a.sh")
	require.NoError(t, err)
	assert.Empty(t, jobID)
	_, _ = d.Submit(context.Background(), "b.sh")

	assert.Equal(t, []string{"a.sh", "b.sh"}, d.Scripts())
}
