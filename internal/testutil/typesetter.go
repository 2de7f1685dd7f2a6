package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// FakeTypesetter writes a shell script that appends "<cwd> <arg>" to a log file on
// every invocation and exits with exitCode. It returns the script and log paths.
func FakeTypesetter(t testing.TB, exitCode int) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake typesetter needs a POSIX shell")
	}
	dir := t.TempDir()
	logPath := filepath.Join(dir, "invocations.log")
	script := filepath.Join(dir, "fake-latex")
	body := "#!/bin/sh\n" +
		"echo \"$(pwd) $1\" >> '" + logPath + "'\n" +
		"echo 'This is fake LaTeX'\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write fake typesetter: %v", err)
	}
	return script, logPath
}

// Invocations returns the lines logged by a FakeTypesetter.
func Invocations(t testing.TB, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read invocations: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}
