package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/shlex"
)

// PackagePlaceholder is replaced with the add-on package in the external
// install command.
const PackagePlaceholder = "{package}"

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands as child processes sharing the given stdio.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner wired to the process stdio, so the child
// can prompt the user directly.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes name with args in dir and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	log.Debug("Running external installer", "dir", dir, "cmd", name, "args", args)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

// BuildCommand splits a shell-style command template and substitutes pkg
// for every PackagePlaceholder. A template without the placeholder gets pkg
// appended as the final argument.
//
// Parameters:
//   - template: Command line such as "npx skills add {package}"
//   - pkg: Package identifier to install
//
// Returns:
//   - string: Program to run
//   - []string: Its arguments
//   - error: If the template is empty or cannot be split
func BuildCommand(template, pkg string) (string, []string, error) {
	parts, err := shlex.Split(template)
	if err != nil {
		return "", nil, fmt.Errorf("invalid install command %q: %w", template, err)
	}
	if len(parts) == 0 {
		return "", nil, errors.New("install command is empty")
	}

	substituted := false
	for i, p := range parts {
		if strings.Contains(p, PackagePlaceholder) {
			parts[i] = strings.ReplaceAll(p, PackagePlaceholder, pkg)
			substituted = true
		}
	}
	if !substituted {
		parts = append(parts, pkg)
	}
	if parts[0] == "" {
		return "", nil, errors.New("install command has no program")
	}

	return parts[0], parts[1:], nil
}
