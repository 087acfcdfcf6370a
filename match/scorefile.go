package match

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// ScoreVariant is one effect-weight row from the combined scoring file
// produced upstream: a locus, the allele the weight applies to, and the
// score (accession) the row belongs to. The weight is kept as text so it
// round-trips to the output unaltered.
type ScoreVariant struct {
	ChrName      string
	ChrPos       int
	EffectAllele string
	OtherAllele  string
	EffectWeight string
	EffectType   string
	Accession    string
}

var scoreCols = []string{
	"chr_name", "chr_position", "effect_allele", "other_allele",
	"effect_weight", "effect_type", "accession",
}

// ReadScorefile reads the combined tab-separated scoring file at path.
// Gzipped input is detected and decompressed transparently.
func ReadScorefile(ctx context.Context, path string) (scores []ScoreVariant, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, errors.Wrap(err, "read scorefile")
	}
	defer file.CloseAndReport(ctx, in, &err)
	reader, _ := compress.NewReader(in.Reader(ctx))
	defer func() {
		if e := reader.Close(); e != nil && err == nil {
			err = e
		}
	}()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	if !scanner.Scan() {
		if e := scanner.Err(); e != nil {
			return nil, errors.Wrapf(e, "read scorefile %s", path)
		}
		return nil, errors.Errorf("scorefile %s is empty", path)
	}
	cols := map[string]int{}
	for i, name := range strings.Split(scanner.Text(), "\t") {
		cols[name] = i
	}
	for _, want := range scoreCols {
		if _, ok := cols[want]; !ok {
			return nil, errors.Errorf("scorefile %s is missing the %s column", path, want)
		}
	}

	line := 1
	for scanner.Scan() {
		line++
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < len(cols) {
			return nil, errors.Errorf("scorefile %s line %d: want %d columns, got %d", path, line, len(cols), len(fields))
		}
		pos, err := strconv.Atoi(fields[cols["chr_position"]])
		if err != nil {
			return nil, errors.Wrapf(err, "scorefile %s line %d: bad chr_position", path, line)
		}
		scores = append(scores, ScoreVariant{
			ChrName:      fields[cols["chr_name"]],
			ChrPos:       pos,
			EffectAllele: fields[cols["effect_allele"]],
			OtherAllele:  fields[cols["other_allele"]],
			EffectWeight: fields[cols["effect_weight"]],
			EffectType:   fields[cols["effect_type"]],
			Accession:    fields[cols["accession"]],
		})
	}
	return scores, scanner.Err()
}
