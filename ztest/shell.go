package ztest

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// RunShell runs script with "bash -e -o pipefail" in dir.  path is
// prepended to PATH so that the script finds the executables under test.
// env and extraEnv are added to the environment of the script.
func RunShell(ctx context.Context, dir, path, script string, stdin io.Reader, env, extraEnv []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "bash", "-e", "-o", "pipefail", "-c", script)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "PATH="+prependPath(path, os.Getenv("PATH")))
	cmd.Env = append(cmd.Env, env...)
	cmd.Env = append(cmd.Env, extraEnv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Stdin = stdin
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func prependPath(path, existing string) string {
	var dirs []string
	for _, dir := range filepath.SplitList(path) {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		dirs = append(dirs, dir)
	}
	if existing != "" {
		dirs = append(dirs, existing)
	}
	return strings.Join(dirs, string(filepath.ListSeparator))
}
