package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// CommandRunner executes a CLI command and returns its stdout.
// The default implementation runs the gh CLI via exec.Command.
// Tests can inject a mock implementation.
type CommandRunner func(ctx context.Context, args ...string) (string, error)

// StdinCommandRunner is a CommandRunner that additionally pipes a
// string to the command's stdin.
type StdinCommandRunner func(ctx context.Context, stdin string, args ...string) (string, error)

// Client wraps the gh CLI and caches the authenticated username.
type Client struct {
	username string
	run      CommandRunner
	runStdin StdinCommandRunner
}

// NewClient verifies the gh CLI is installed and authenticated, then caches the current user.
func NewClient() (*Client, error) {
	if _, err := exec.LookPath("gh"); err != nil {
		return nil, fmt.Errorf("gh CLI not found: install from https://cli.github.com")
	}

	c := &Client{run: defaultRunner, runStdin: defaultStdinRunner}

	// Verify authentication
	if _, err := c.ghExec(context.Background(), "auth", "status"); err != nil {
		return nil, fmt.Errorf("gh not authenticated: run 'gh auth login' first")
	}

	// Get authenticated username
	out, err := c.ghExec(context.Background(), "api", "user", "--jq", ".login")
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}

	c.username = strings.TrimSpace(out)
	log.Debug().Str("login", c.username).Msg("gh client ready")
	return c, nil
}

// NewTestClient creates a Client with custom runners for testing.
func NewTestClient(username string, runner CommandRunner, stdinRunner StdinCommandRunner) *Client {
	return &Client{username: username, run: runner, runStdin: stdinRunner}
}

// GetUsername returns the login of the authenticated user.
// This is the current identity used for edit authorization and
// reaction toggling.
func (c *Client) GetUsername() string {
	return c.username
}

// defaultRunner executes the gh CLI via exec.Command.
func defaultRunner(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("gh %s failed: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// defaultStdinRunner executes the gh CLI with the given string piped to stdin.
func defaultStdinRunner(ctx context.Context, stdin string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("gh %s failed: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// ghExec runs a gh CLI command via the client's CommandRunner.
func (c *Client) ghExec(ctx context.Context, args ...string) (string, error) {
	return c.run(ctx, args...)
}

// ghExecWithStdin runs a gh CLI command with the given string piped to stdin.
func (c *Client) ghExecWithStdin(ctx context.Context, stdin string, args ...string) (string, error) {
	return c.runStdin(ctx, stdin, args...)
}

// ghJSON runs a gh CLI command and unmarshals the JSON output into dest.
func (c *Client) ghJSON(ctx context.Context, dest interface{}, args ...string) error {
	out, err := c.ghExec(ctx, args...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(out), dest); err != nil {
		return fmt.Errorf("failed to parse gh output: %w", err)
	}
	return nil
}
