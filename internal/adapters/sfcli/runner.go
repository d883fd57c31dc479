package sfcli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/forcekit/hubkit/internal/domain"
	"github.com/forcekit/hubkit/internal/ports"
)

var ErrUnavailable = errors.New("auth cli unavailable")

const defaultInstanceURL = "https://login.salesforce.com"

type runFunc func(ctx context.Context, binary string, args ...string) (stdout string, stderr string, exitCode int, err error)

// Runner invokes the external auth CLI (sfdx by default) and maps
// nonzero exits onto *domain.ExternalToolError.
type Runner struct {
	binary string
	run    runFunc
}

var _ ports.OrgCLI = (*Runner)(nil)

func NewRunner(binary string) *Runner {
	if binary == "" {
		binary = "sfdx"
	}
	return &Runner{binary: binary, run: runCommand}
}

func (r *Runner) AuthorizeJWT(ctx context.Context, grant ports.JWTGrant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	instanceURL := grant.InstanceURL
	if instanceURL == "" {
		instanceURL = defaultInstanceURL
	}

	_, err := r.exec(ctx, "auth:jwt:grant",
		"--clientid", grant.ClientID,
		"--username", grant.Username,
		"--jwtkeyfile", grant.KeyFile,
		"--instanceurl", instanceURL,
		"--setdefaultdevhubusername",
	)
	return err
}

func (r *Runner) StoreAuthURL(ctx context.Context, urlFile string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := r.exec(ctx, "auth:sfdxurl:store",
		"--sfdxurlfile", urlFile,
		"--setdefaultdevhubusername",
	)
	return err
}

func (r *Runner) DisplayOrg(ctx context.Context, username string) (domain.OrgDisplay, error) {
	if err := ctx.Err(); err != nil {
		return domain.OrgDisplay{}, err
	}

	stdout, err := r.exec(ctx, "force:org:display",
		"--targetusername", username,
		"--verbose",
		"--json",
	)
	if err != nil {
		return domain.OrgDisplay{}, err
	}

	var display domain.OrgDisplay
	if err := json.Unmarshal([]byte(stdout), &display); err != nil {
		return domain.OrgDisplay{}, fmt.Errorf("decode org display output: %w", err)
	}

	return display, nil
}

func (r *Runner) exec(ctx context.Context, command string, args ...string) (string, error) {
	stdout, stderr, exitCode, err := r.run(ctx, r.binary, append([]string{command}, args...)...)
	if err != nil {
		if stderr == "" {
			return "", fmt.Errorf("%s %s: %w", r.binary, command, err)
		}
		return "", fmt.Errorf("%s %s: %w: %s", r.binary, command, err, stderr)
	}

	if exitCode != 0 {
		return "", &domain.ExternalToolError{
			Command:  fmt.Sprintf("%s %s", r.binary, command),
			ExitCode: exitCode,
			Stderr:   stderr,
		}
	}

	return stdout, nil
}

func runCommand(ctx context.Context, binary string, args ...string) (string, string, int, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", 0, fmt.Errorf("%w: %s", ErrUnavailable, binary)
		}
		return "", "", 0, fmt.Errorf("locate %s command: %w", binary, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	trimmedStderr := strings.TrimSpace(stderr.String())

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), trimmedStderr, exitErr.ExitCode(), nil
	}
	if err != nil {
		return stdout.String(), trimmedStderr, 0, fmt.Errorf("run %s command: %w", binary, err)
	}

	return stdout.String(), trimmedStderr, 0, nil
}
