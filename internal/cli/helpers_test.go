package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// cliResult holds the captured streams of one command run.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// isolate points user config lookups at a temp directory and pins the
// terminal check, clock and color state. Tests using it must not run in parallel.
func isolate(t *testing.T, interactive bool) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)

	origTerminal, origNow, origNoColor := stdinIsTerminal, now, color.NoColor
	stdinIsTerminal = func() bool { return interactive }
	now = func() time.Time { return time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC) }
	color.NoColor = true
	t.Cleanup(func() {
		stdinIsTerminal, now, color.NoColor = origTerminal, origNow, origNoColor
	})
	return dir
}

// runCLI executes a fresh root command with the project config placed in dir.
func runCLI(t *testing.T, dir, stdin string, args ...string) cliResult {
	t.Helper()
	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config=" + filepath.Join(dir, ".chog.yml")}, args...))

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
