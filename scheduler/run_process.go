package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

func runCmdAndWaitForResults(
	ctx context.Context, cmd *exec.Cmd, maxDuration time.Duration,
) (stdout string, stderr string, err error) {
	processFinished := make(chan error, 1)

	stdoutBuff := &bytes.Buffer{}
	stderrBuff := &bytes.Buffer{}
	cmd.Stdout = stdoutBuff
	cmd.Stderr = stderrBuff

	err = cmd.Start()
	if err != nil {
		return "", "", err
	}

	go func() {
		processFinished <- cmd.Wait()
	}()

	timer := time.NewTimer(maxDuration)
	defer timer.Stop()

	select {
	case err = <-processFinished:
	case <-timer.C:
		err = fmt.Errorf("%s command timeout expired", cmd.Path)
		_ = cmd.Process.Kill()
		<-processFinished
	case <-ctx.Done():
		err = fmt.Errorf("%s command cancelled: %w", cmd.Path, ctx.Err())
		_ = cmd.Process.Kill()
		<-processFinished
	}

	stdout = stdoutBuff.String()
	stderr = stderrBuff.String()
	return stdout, stderr, err
}
