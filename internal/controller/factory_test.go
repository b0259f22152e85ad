package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	if _, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Errorf("NewUI(true) returned %T, want *TUI", NewUI(cmd, true))
	}

	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Errorf("NewUI(false) returned %T, want *SimpleUI", NewUI(cmd, false))
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "versecheck-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer file.Close()

	if IsTTY(file) {
		t.Fatalf("IsTTY(regular file) = true, want false")
	}
}

func TestIsTTY_ClosedFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "versecheck-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	file.Close()

	if IsTTY(file) {
		t.Fatalf("IsTTY(closed file) = true, want false")
	}
}

func TestIsTTY_CharDevice(t *testing.T) {
	file, err := os.Open(os.DevNull)
	if err != nil {
		t.Skip("null device not available")
	}
	defer file.Close()

	if !IsTTY(file) {
		t.Fatalf("IsTTY(%s) = false, want true", os.DevNull)
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer

	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) = true, want false")
	}
}
