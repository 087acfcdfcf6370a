package match

import (
	"context"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// ProcessName identifies the match stage in aggregated provenance reports.
const ProcessName = "PGSCCALC:MATCH_VARIANTS"

// Opts configure one matching run.
type Opts struct {
	// Dataset labels the target genomic dataset in logs.
	Dataset string
	// Format is the target table layout, FormatBIM or FormatPVar.
	Format string
	// Split writes one scorefile set per chromosome.
	Split bool
	// MinOverlap is the smallest acceptable fraction of score rows matched.
	MinOverlap float64
	// KeepAmbiguous retains matches whose strand orientation is ambiguous.
	KeepAmbiguous bool
	// GzipOutput gzips the written scorefiles.
	GzipOutput bool
	// OutDir receives the scorefiles; empty means the working directory.
	OutDir string
}

// DefaultOpts holds the flag defaults for the match CLI.
var DefaultOpts = Opts{
	Format:     FormatPVar,
	MinOverlap: 0.75,
}

// Stats summarizes one matching run.
type Stats struct {
	TargetVariants int
	ScoreVariants  int
	Matched        int
	Ambiguous      int
	Files          []string
}

// Run matches the combined scorefile against the target variant table and
// writes plink2 scoring files. Zero matches, or a matched fraction below
// opts.MinOverlap, is an error: it usually means the score and target use
// different genome builds, or the target was genotyped too sparsely.
func Run(ctx context.Context, scorePath, targetPath string, opts Opts) (Stats, error) {
	targets, err := ReadTarget(ctx, targetPath, opts.Format)
	if err != nil {
		return Stats{}, err
	}
	scores, err := ReadScorefile(ctx, scorePath)
	if err != nil {
		return Stats{}, err
	}
	log.Printf("%s: %d target variants, %d score variants", opts.Dataset, len(targets), len(scores))

	ms := MatchVariants(targets, scores)
	var ambiguous int
	if !opts.KeepAmbiguous {
		ms, ambiguous = DropAmbiguous(ms)
	}
	if len(ms) == 0 {
		return Stats{}, errors.Errorf(
			"no target variants in %s match any variants in the scoring files; check the genome build, or impute sparse genotypes",
			opts.Dataset)
	}
	if frac := matchedFraction(ms, len(scores)); frac < opts.MinOverlap {
		return Stats{}, errors.Errorf(
			"only %.1f%% of score variants matched %s, below the %.1f%% minimum; check the genome build, or impute sparse genotypes",
			frac*100, opts.Dataset, opts.MinOverlap*100)
	}

	files, err := WriteScorefiles(ctx, ms, opts)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TargetVariants: len(targets),
		ScoreVariants:  len(scores),
		Matched:        len(ms),
		Ambiguous:      ambiguous,
		Files:          files,
	}, nil
}

// matchedFraction counts distinct matched score rows against the scorefile
// size. A score row that matched under several schemes still counts once.
func matchedFraction(ms []Match, totalScores int) float64 {
	if totalScores == 0 {
		return 0
	}
	seen := map[ScoreVariant]bool{}
	for _, m := range ms {
		seen[m.Score] = true
	}
	return float64(len(seen)) / float64(totalScores)
}
