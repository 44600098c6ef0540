package convert

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// ProcessRunner runs an external program to completion.
type ProcessRunner interface {
	Run(ctx context.Context, name string, args []string) (stdout, stderr []byte, err error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

// Run executes name with args. A non-zero exit is returned as an error that
// includes the program's stderr.
func (ExecRunner) Run(ctx context.Context, name string, args []string) ([]byte, []byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, nil, fmt.Errorf("%s not found in PATH; install ImageMagick (macOS: brew install imagemagick, Linux: apt install imagemagick)", name)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return out.Bytes(), errBuf.Bytes(), fmt.Errorf("%s: %v: %s", name, err, bytes.TrimSpace(errBuf.Bytes()))
	}
	return out.Bytes(), errBuf.Bytes(), nil
}
