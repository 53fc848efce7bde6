// Package job controls detached background processes tracked by PID files.
package job

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
	"go.trai.ch/zerr"
)

// Controller implements ports.JobController with one PID file and one log
// file per job name under the cache directory.
type Controller struct {
	log            ports.Logger
	dir            string
	executablePath string
}

var _ ports.JobController = (*Controller)(nil)

// NewController creates a job controller keeping PID and log files in dir.
func NewController(dir string, log ports.Logger) (*Controller, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrExecutableNotFound.Error())
	}
	return &Controller{log: log, dir: dir, executablePath: exe}, nil
}

// IsRunning reports whether the process recorded for name is alive. Any
// missing, unreadable, or stale PID file reads as not running.
func (c *Controller) IsRunning(name string) bool {
	data, err := os.ReadFile(c.pidPath(name))
	if err != nil {
		return false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return false
	}

	// Signal 0 probes without touching the process. EPERM means the PID is
	// live but owned by someone else.
	sigErr := syscall.Kill(pid, 0)
	if sigErr == nil {
		return true
	}
	return errors.Is(sigErr, syscall.EPERM)
}

// Spawn starts the current executable detached in its own session, stdout
// and stderr appended to the job log. It returns as soon as the child has
// started; completion is observed only through IsRunning turning false.
func (c *Controller) Spawn(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(c.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrJobSpawnFailed.Error())
	}

	logPath := c.logPath(name)
	//nolint:gosec // G304: logPath is cache dir + job name, not user input
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return zerr.Wrap(err, domain.ErrJobSpawnFailed.Error())
	}

	//nolint:gosec // G204: executablePath is the running binary, args are fixed literals
	cmd := exec.Command(c.executablePath, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrJobSpawnFailed.Error()), "job", name)
	}

	c.log.Debug("spawned background job", "job", name, "pid", cmd.Process.Pid, "args", strings.Join(args, " "))

	go func() {
		_ = cmd.Wait()
		_ = logFile.Close()
	}()

	return nil
}

// Register records the calling process as the live job under name. The
// returned release func removes the PID file; a second Register for the
// same name overwrites the first, matching last-writer-wins cache
// semantics for racing refreshes.
func (c *Controller) Register(name string) (func(), error) {
	if err := os.MkdirAll(c.dir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrJobStateFailed.Error())
	}

	path := c.pidPath(name)
	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(pid+"\n"), domain.PrivateFilePerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrJobStateFailed.Error()), "path", path)
	}

	release := func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			c.log.Error(zerr.With(zerr.Wrap(err, domain.ErrJobStateFailed.Error()), "path", path))
		}
	}

	return release, nil
}

func (c *Controller) pidPath(name string) string {
	return filepath.Join(c.dir, name+".pid")
}

func (c *Controller) logPath(name string) string {
	return filepath.Join(c.dir, name+".log")
}
