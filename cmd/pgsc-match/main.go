package main

/*
pgsc-match runs the variant-matching stage of the scoring pipeline: it
intersects a combined scoring file with the variants present in a target
genomic dataset and writes the intersection as plink2 --score input files,
split by effect type and, optionally, by chromosome.
*/

import (
	"flag"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/match"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/pipeline"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

// toolVersion is this binary's own version, recorded for provenance since the
// matching happens in-process rather than in an external tool.
const toolVersion = "1.1.0"

var (
	dataset       = flag.String("dataset", "", "Label for the target genomic dataset; required")
	scorefile     = flag.String("scorefiles", "", "Combined scorefile path; required")
	target        = flag.String("target", "", "Target variant table (.bim or .pvar, optionally gzipped); required")
	format        = flag.String("format", match.DefaultOpts.Format, "Target table layout: bim or pvar")
	split         = flag.Bool("split", match.DefaultOpts.Split, "Write one scorefile set per chromosome")
	minOverlap    = flag.Float64("min-overlap", match.DefaultOpts.MinOverlap, "Minimum fraction of score variants that must match the target")
	keepAmbiguous = flag.Bool("keep-ambiguous", match.DefaultOpts.KeepAmbiguous, "Keep matches with ambiguous strand orientation")
	gzipOutput    = flag.Bool("gzip", match.DefaultOpts.GzipOutput, "Gzip the written scorefiles")
	outDir        = flag.String("outdir", "", "Directory for written scorefiles; default is the working directory")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if *dataset == "" || *scorefile == "" || *target == "" {
		log.Fatalf("pgsc-match: -dataset, -scorefiles, and -target are all required")
	}

	ctx := vcontext.Background()
	stats, err := match.Run(ctx, *scorefile, *target, match.Opts{
		Dataset:       *dataset,
		Format:        *format,
		Split:         *split,
		MinOverlap:    *minOverlap,
		KeepAmbiguous: *keepAmbiguous,
		GzipOutput:    *gzipOutput,
		OutDir:        *outDir,
	})
	if err != nil {
		log.Fatalf("pgsc-match: %v", err)
	}
	log.Printf("matched %d of %d score variants against %d target variants (%d ambiguous removed)",
		stats.Matched, stats.ScoreVariants, stats.TargetVariants, stats.Ambiguous)
	for _, f := range stats.Files {
		log.Printf("wrote %s", f)
	}

	v := pipeline.ToolVersions{
		Process: match.ProcessName,
		Tools:   map[string]string{"pgsc-match": toolVersion},
	}
	if err := pipeline.WriteVersions(ctx, pipeline.VersionsFile, v); err != nil {
		log.Fatalf("pgsc-match: %v", err)
	}
}
