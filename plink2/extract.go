package plink2

import (
	"context"
	"strconv"
	"strings"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/pipeline"
	"github.com/pkg/errors"
)

// ExtractArgs assembles the argument vector for one extract invocation: the
// base-fileset selector, any caller-supplied extra arguments, the variant
// inclusion list, the thread count, and the binary-pair output mode under the
// given output prefix.
func ExtractArgs(in pipeline.GenotypeFileset, variants, outPrefix string, opts Opts) []string {
	args := []string{"--pfile", in.Base}
	if opts.ExtraArgs != "" {
		args = append(args, strings.Fields(opts.ExtraArgs)...)
	}
	return append(args,
		"--extract", variants,
		"--threads", strconv.Itoa(opts.Threads),
		"--make-pgen",
		"--out", outPrefix,
	)
}

// Extract runs plink2 once, synchronously, filtering the input fileset down
// to the variants named in the inclusion list. Outputs land in the working
// directory under the sample's output prefix; the returned set carries the
// input sample so downstream stages can correlate. The tool's version is
// captured afterwards for the provenance record.
func Extract(ctx context.Context, sample pipeline.Sample, in pipeline.GenotypeFileset, variants, suffix string, opts Opts) (pipeline.Outputs, error) {
	if variants == "" {
		return pipeline.Outputs{}, errors.New("extract: no variant inclusion list")
	}
	prefix := sample.OutputPrefix(suffix)
	if err := run(ctx, opts, ExtractArgs(in, variants, prefix, opts)); err != nil {
		return pipeline.Outputs{}, err
	}
	version, err := Version(ctx, opts)
	if err != nil {
		return pipeline.Outputs{}, err
	}
	v := pipeline.ToolVersions{
		Process: ProcessName,
		Tools:   map[string]string{ToolName: version},
	}
	if err := pipeline.WriteVersions(ctx, pipeline.VersionsFile, v); err != nil {
		return pipeline.Outputs{}, err
	}
	out := pipeline.DeclaredOutputs(prefix)
	out.Sample = sample
	return out, nil
}

// ProcessName identifies the extract stage in aggregated provenance reports.
const ProcessName = "PGSCCALC:PLINK2_EXTRACT"
