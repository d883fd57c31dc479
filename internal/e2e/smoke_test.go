package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeStrategyResolution(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runHubkit(t, binaryPath, home, nil, "auth", "strategy")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "none", strings.TrimSpace(stdout))

	env := map[string]string{
		"TESTKIT_JWT_CLIENT_ID": "client-1",
		"TESTKIT_HUB_USERNAME":  "hub@example.com",
		"TESTKIT_JWT_KEY":       "key-material",
	}
	stdout, stderr, err = runHubkit(t, binaryPath, home, env, "auth", "strategy")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "jwt", strings.TrimSpace(stdout))
}

func TestSmokeStatus(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	env := map[string]string{"TESTKIT_HUB_USERNAME": "hub@example.com"}
	stdout, stderr, err := runHubkit(t, binaryPath, home, env, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "hub@example.com")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "hubkit-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/hubkit")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build hubkit binary: %s", string(output))
	return binaryPath
}

func runHubkit(t *testing.T, binaryPath, home string, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = []string{"HOME=" + home, "PATH=" + os.Getenv("PATH")}
	for key, value := range env {
		cmd.Env = append(cmd.Env, key+"="+value)
	}

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
