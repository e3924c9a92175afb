// Package scheduler submits job scripts to the batch system.
package scheduler

import (
	"context"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/corsika-radio/corsikasub/config"
	"github.com/corsika-radio/corsikasub/errors"
)

var log = config.NamedLogger("scheduler")

var errs = errors.MakeComponentErrors("scheduler")

// Submitter hands a job script to the batch system and returns its job ID.
type Submitter interface {
	Submit(ctx context.Context, scriptPath string) (string, error)
}

// CreateCMD create command which submits the script.
type CreateCMD interface {
	CreateCMD(scriptPath string) *exec.Cmd
}

type commandCreator struct {
	command []string
}

func (c commandCreator) CreateCMD(scriptPath string) *exec.Cmd {
	args := append(append([]string{}, c.command[1:]...), scriptPath)
	cmd := exec.Command(c.command[0], args...)
	cmd.Dir = filepath.Dir(scriptPath)
	return cmd
}

// Sbatch submits scripts with the SLURM CLI.
type Sbatch struct {
	createCMD CreateCMD
	timeout   time.Duration
}

// NewSbatch create Sbatch which runs command, e.g. "sbatch" or
// "sbatch --account=foo", with the script path as last argument.
func NewSbatch(command string, timeout time.Duration) (*Sbatch, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, errs.Configuration("empty submit command")
	}
	if timeout <= 0 {
		return nil, errs.Configuration("submit timeout should be positive, got %s", timeout)
	}
	return &Sbatch{createCMD: commandCreator{command: fields}, timeout: timeout}, nil
}

// FromCluster builds Sbatch from site cluster settings.
func FromCluster(cluster config.Cluster) (*Sbatch, error) {
	timeout, err := cluster.SubmitTimeoutDuration()
	if err != nil {
		return nil, errs.Configuration("submit_timeout: %v", err)
	}
	return NewSbatch(cluster.SubmitCommand, timeout)
}

// Submit runs the submit command and parses the job ID it prints.
func (s *Sbatch) Submit(ctx context.Context, scriptPath string) (string, error) {
	cmd := s.createCMD.CreateCMD(scriptPath)
	log.Debugf("cmd to run: %s", strings.Join(cmd.Args, " "))

	stdout, stderr, err := runCmdAndWaitForResults(ctx, cmd, s.timeout)
	if err != nil {
		return "", errs.IO("submit %s: %v: %s", scriptPath, err, strings.TrimSpace(stderr))
	}

	jobID, err := parseJobID(stdout)
	if err != nil {
		return "", err
	}
	log.Infof("submitted %s as job %s", scriptPath, jobID)
	return jobID, nil
}

var submittedPattern = regexp.MustCompile(`Submitted batch job (\d+)`)

func parseJobID(stdout string) (string, error) {
	match := submittedPattern.FindStringSubmatch(stdout)
	if match == nil {
		return "", errs.IO("unexpected submit output %q", strings.TrimSpace(stdout))
	}
	return match[1], nil
}

// DryRun records scripts instead of submitting them.
type DryRun struct {
	mu      sync.Mutex
	scripts []string
}

// Submit records scriptPath. The returned job ID is empty.
func (d *DryRun) Submit(_ context.Context, scriptPath string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scripts = append(d.scripts, scriptPath)
	log.Infof("dry run, not submitting %s", scriptPath)
	return "", nil
}

// Scripts returns recorded scripts in submission order.
func (d *DryRun) Scripts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string{}, d.scripts...)
}
