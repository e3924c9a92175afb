//go:build linux

package scheduler

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/corsika-radio/corsikasub/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createBashCMD struct {
	script string
	args   [][]string
}

func (c *createBashCMD) CreateCMD(scriptPath string) *exec.Cmd {
	c.args = append(c.args, []string{scriptPath})
	return exec.Command("bash", "-c", c.script, "fake-sbatch", scriptPath)
}

func TestSbatchSubmit(t *testing.T) {
	t.Run("Successful submit", func(t *testing.T) {
		fake := &createBashCMD{script: `echo "Submitted batch job 4242"`}
		s := &Sbatch{createCMD: fake, timeout: time.Minute}

		jobID, err := s.Submit(context.Background(), "/sims/data/001/SIM000001.sh")

		require.NoError(t, err)
		assert.Equal(t, "4242", jobID)
		assert.Equal(t, [][]string{{"/sims/data/001/SIM000001.sh"}}, fake.args)
	})

	t.Run("Script path passed as argument", func(t *testing.T) {
		fake := &createBashCMD{script: `echo "Submitted batch job ${#1}"`}
		s := &Sbatch{createCMD: fake, timeout: time.Minute}

		jobID, err := s.Submit(context.Background(), "abc.sh")

		require.NoError(t, err)
		assert.Equal(t, "6", jobID)
	})

	t.Run("Non zero exit", func(t *testing.T) {
		fake := &createBashCMD{script: `echo "sbatch: error: invalid partition" >&2; exit 1`}
		s := &Sbatch{createCMD: fake, timeout: time.Minute}

		_, err := s.Submit(context.Background(), "x.sh")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrIO))
		assert.Contains(t, err.Error(), "invalid partition")
	})

	t.Run("Unexpected output", func(t *testing.T) {
		fake := &createBashCMD{script: `echo "queued"`}
		s := &Sbatch{createCMD: fake, timeout: time.Minute}

		_, err := s.Submit(context.Background(), "x.sh")

		assert.True(t, errors.Is(err, errors.ErrIO))
	})

	t.Run("Timeout", func(t *testing.T) {
		fake := &createBashCMD{script: `sleep 1h`}
		s := &Sbatch{createCMD: fake, timeout: time.Millisecond}

		_, err := s.Submit(context.Background(), "x.sh")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout expired")
	})

	t.Run("Cancelled", func(t *testing.T) {
		fake := &createBashCMD{script: `sleep 1h`}
		s := &Sbatch{createCMD: fake, timeout: time.Hour}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Submit(ctx, "x.sh")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cancelled")
	})
}

func TestCommandCreator(t *testing.T) {
	cmd := commandCreator{command: []string{"sbatch", "--account=radio"}}.CreateCMD("/sims/data/001/SIM000001.sh")

	assert.Equal(t, []string{"sbatch", "--account=radio", "/sims/data/001/SIM000001.sh"}, cmd.Args)
	assert.Equal(t, "/sims/data/001", cmd.Dir)
}
