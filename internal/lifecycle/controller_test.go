package lifecycle

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"
)

func pidFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "service.pid")
}

func TestStopServiceWithoutRecordIsIdempotent(t *testing.T) {
	controller := NewControllerAt(pidFile(t))

	// Nothing recorded: both calls must be silent no-ops.
	controller.StopService()
	controller.StopService()
}

func TestStopServiceLeavesMalformedRecord(t *testing.T) {
	path := pidFile(t)
	if err := os.WriteFile(path, []byte("not-a-pid\n"), 0644); err != nil {
		t.Fatal(err)
	}

	NewControllerAt(path).StopService()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("malformed record should be left in place: %v", err)
	}
}

func TestStopServiceTerminatesAndRemovesRecord(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test spawns a sleep process")
	}

	cmd := exec.Command("sleep", "60")
	if err := cmd.Start(); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	defer cmd.Process.Kill()

	path := pidFile(t)
	if err := os.WriteFile(path, []byte(strconv.Itoa(cmd.Process.Pid)+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	NewControllerAt(path).StopService()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("pid record should be removed, stat err: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected sleep to be terminated by signal")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("process was not terminated")
	}

	// Second invocation with the record already gone.
	NewControllerAt(path).StopService()
}

func TestServiceRunning(t *testing.T) {
	path := pidFile(t)
	controller := NewControllerAt(path)

	if controller.ServiceRunning() {
		t.Fatal("no record: service must read as not running")
	}

	if err := os.WriteFile(path, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	if controller.ServiceRunning() {
		t.Fatal("malformed record: service must read as not running")
	}

	// Our own pid is by definition alive.
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		t.Fatal(err)
	}
	if !controller.ServiceRunning() {
		t.Fatal("live pid: service must read as running")
	}
}
