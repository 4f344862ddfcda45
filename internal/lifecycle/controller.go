// Package lifecycle stops the background service when the app exits.
package lifecycle

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"macbot/internal/paths"
)

// Controller consumes the pid record the background service writes on
// startup. It is the only part of the app that touches that file.
type Controller struct {
	pidPath func() (string, error)
}

// NewController returns a controller backed by the default service.pid
// location.
func NewController() *Controller {
	return &Controller{pidPath: paths.PIDFile}
}

// NewControllerAt returns a controller backed by an explicit pid file path.
func NewControllerAt(path string) *Controller {
	return &Controller{pidPath: func() (string, error) { return path, nil }}
}

// StopService terminates the recorded service process and removes the pid
// record. It is best-effort: shutdown must never block on cleanup, so every
// failure here is swallowed. A missing record means the service already
// stopped or never started; a malformed record is logged and left alone.
func (c *Controller) StopService() {
	path, err := c.pidPath()
	if err != nil {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	pid, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		log.Printf("ignoring malformed service pid record: %v", err)
		return
	}

	// Outcome deliberately unchecked: the process may already be gone, or we
	// may lack permission, and the app exits either way.
	if proc, err := process.NewProcess(int32(pid)); err == nil {
		_ = proc.Terminate()
	}

	// Remove the record even if the signal failed so a stale pid is never
	// reused on the next launch.
	_ = os.Remove(path)
}

// ServiceRunning reports whether the recorded service process is alive.
// Any failure along the way reads as "not running".
func (c *Controller) ServiceRunning() bool {
	path, err := c.pidPath()
	if err != nil {
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	pid, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return false
	}

	running, err := process.PidExists(int32(pid))
	return err == nil && running
}
