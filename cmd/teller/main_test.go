//go:build blackbox

package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var tellerBin string

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "teller-blackbox-*")
	if err != nil {
		panic(err)
	}

	tellerBin = filepath.Join(tmp, "teller")

	// Build the binary once for all tests.
	cmd := exec.Command("go", "build", "-o", tellerBin, ".")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	code := m.Run()
	os.RemoveAll(tmp)
	os.Exit(code)
}

func run(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(tellerBin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return string(out), 0
	case errors.As(err, &exitErr):
		return string(out), exitErr.ExitCode()
	default:
		t.Fatalf("command failed: %v\nargs: %v\noutput:\n%s", err, args, string(out))
		return "", -1
	}
}

func TestSessionAndJournal(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "teller.sqlite")
	cfgPath := filepath.Join(dir, "teller.yaml")
	cfg := "journal:\n  type: sqlite\n  db_path: " + db + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out, code := run(t, "d\n100\nw\n50\nq\n", "session", "-f", cfgPath)
	if code != 0 {
		t.Fatalf("session exit %d:\n%s", code, out)
	}
	if !strings.Contains(out, "Service fee: R$ 0.75") {
		t.Fatalf("expected fee line, got:\n%s", out)
	}

	out, code = run(t, "", "journal", "list", "--db", db)
	if code != 0 {
		t.Fatalf("journal list exit %d:\n%s", code, out)
	}
	if !strings.Contains(out, "R$ 49.25") {
		t.Fatalf("expected withdrawal row, got:\n%s", out)
	}
}

func TestUnknownCommandExitsOne(t *testing.T) {
	_, code := run(t, "", "transfer")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestInterruptEndsSession(t *testing.T) {
	cmd := exec.Command(tellerBin, "session")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		t.Fatal(err)
	}
	defer stdin.Close()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Start(); err != nil {
		t.Fatal(err)
	}
	// Let the menu print before interrupting.
	time.Sleep(300 * time.Millisecond)
	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("session exited with %v:\n%s", err, out.String())
		}
	case <-time.After(5 * time.Second):
		cmd.Process.Kill()
		t.Fatal("session did not stop on interrupt")
	}
	if !strings.Contains(out.String(), "Session ended by user.") {
		t.Fatalf("expected interrupt message, got:\n%s", out.String())
	}
}
