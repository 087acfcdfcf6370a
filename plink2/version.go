package plink2

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
)

// ToolName is the key the provenance record files plink2's version under.
const ToolName = "plink2"

const versionPrefix = "PLINK v"

// ParseVersion normalizes plink2's self-reported version line, stripping the
// tool-name prefix and the trailing bit-width/build-date annotation:
// "PLINK v2.00a2.3 64-bit (24 Jan 2020)" parses to "2.00a2.3".
func ParseVersion(line string) (string, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, versionPrefix) {
		return "", errors.Errorf("unrecognized plink2 version line %q", line)
	}
	v := strings.TrimPrefix(line, versionPrefix)
	if i := strings.Index(v, " 64-bit"); i >= 0 {
		v = v[:i]
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", errors.Errorf("empty version in plink2 version line %q", line)
	}
	return v, nil
}

// Version runs `plink2 --version` and returns the normalized version string
// for the provenance record.
func Version(ctx context.Context, opts Opts) (string, error) {
	out, err := output(ctx, opts, []string{"--version"})
	if err != nil {
		return "", err
	}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	if !scanner.Scan() {
		return "", errors.New("plink2 --version produced no output")
	}
	return ParseVersion(scanner.Text())
}
