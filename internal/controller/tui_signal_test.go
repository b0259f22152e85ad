//go:build unix

package controller

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"testing"
	"time"
)

const sigintHelperEnv = "VERSECHECK_TUI_SIGINT_HELPER"

// runSigintHelper starts the scan view, interrupts its own process and
// only reaches os.Exit(0) when the interrupt was swallowed.
func runSigintHelper() {
	if signal.Ignored(os.Interrupt) {
		os.Exit(3)
	}

	tui := NewTUI(io.Discard)
	if err := tui.Start(); err != nil {
		os.Exit(2)
	}

	_ = syscall.Kill(os.Getpid(), syscall.SIGINT)

	time.Sleep(2 * time.Second)
	tui.Close()
	os.Exit(0)
}

func TestTUI_InterruptTerminatesProcess(t *testing.T) {
	if os.Getenv(sigintHelperEnv) == "1" {
		runSigintHelper()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestTUI_InterruptTerminatesProcess$")
	cmd.Env = append(os.Environ(), sigintHelperEnv+"=1")

	err := cmd.Run()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("helper exited cleanly (err = %v); SIGINT was swallowed", err)
	}

	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		t.Skipf("wait status unavailable: %T", exitErr.Sys())
	}

	if status.Exited() && status.ExitStatus() == 3 {
		t.Skip("SIGINT is ignored in this environment")
	}

	if !status.Signaled() || status.Signal() != syscall.SIGINT {
		t.Fatalf("helper status = %v, want termination by SIGINT", status)
	}
}
