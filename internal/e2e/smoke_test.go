package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfigFixture(home))

	stdout, stderr, err := runWebclicker(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "webclicker ")

	stdout, stderr, err = runWebclicker(t, binaryPath, home,
		"profile", "add", "lecture",
		"--url", "polls.example.com/live",
		"--interval", "3",
		"--username", "alice",
		"--password", "hunter2",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "saved profile lecture")

	stdout, stderr, err = runWebclicker(t, binaryPath, home, "profile", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "lecture")
	assert.Contains(t, stdout, "https://polls.example.com/live")

	_, _, err = runWebclicker(t, binaryPath, home, "run", "--url", "ftp://polls.example.com")
	require.Error(t, err)

	stdout, stderr, err = runWebclicker(t, binaryPath, home, "profile", "rm", "lecture")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "removed profile lecture")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "webclicker-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/webclicker")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build webclicker binary: %s", string(output))
	return binaryPath
}

func runWebclicker(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"WEBCLICKER_SECRETS_BACKEND=file",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeConfigFixture(home string) error {
	configDir := filepath.Join(home, ".webclicker")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	config := `interval = 4
preflight = false

[browser]
no_sandbox = true
`

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644)
}
