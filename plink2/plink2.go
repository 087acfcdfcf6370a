// Package plink2 wraps invocation of the external plink2 binary. The binary
// does all genotype parsing and filtering; this package only assembles
// argument vectors, runs the tool synchronously, and propagates its exit
// status.
package plink2

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// Opts configure one plink2 invocation.
type Opts struct {
	// Path locates the plink2 executable.
	Path string
	// Threads bounds plink2's internal parallelism.
	Threads int
	// ExtraArgs are caller-supplied arguments inserted after the base-fileset
	// selector, whitespace-split.
	ExtraArgs string
}

// DefaultOpts holds the flag defaults for the extract CLI.
var DefaultOpts = Opts{
	Path:    "plink2",
	Threads: 2,
}

// run executes plink2 once, streaming its output to this process's stdout and
// stderr. A non-zero exit is returned as an error carrying the exit status;
// there is no retry and no partial result.
func run(ctx context.Context, opts Opts, args []string) error {
	path := opts.Path
	if path == "" {
		path = DefaultOpts.Path
	}
	log.Printf("exec: %s %v", path, args)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return errors.Wrapf(err, "plink2 exited with status %d", exitErr.ExitCode())
		}
		return errors.Wrap(err, "plink2")
	}
	return nil
}

// output executes plink2 once and captures combined stdout and stderr.
func output(ctx context.Context, opts Opts, args []string) ([]byte, error) {
	path := opts.Path
	if path == "" {
		path = DefaultOpts.Path
	}
	cmd := exec.CommandContext(ctx, path, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "plink2 %v: %s", args, buf.String())
	}
	return buf.Bytes(), nil
}
