package match

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// noSplitKey is the chromosome slot in output names when per-chromosome
// splitting is off.
const noSplitKey = "false"

// effectLabels maps scorefile effect-type values to their output-name form.
var effectLabels = map[string]string{
	"additive":     "additive",
	"is_dominant":  "dominant",
	"is_recessive": "recessive",
}

// scoreTable is one plink2 --score input: rows keyed by (variant ID, effect
// allele), one weight column per accession. plink2 demands unique variant
// IDs, so a table never mixes unique-ID rows with duplicated-ID rows.
type scoreTable struct {
	accessions []string
	rows       []scoreRow
}

type scoreRow struct {
	id           string
	effectAllele string
	weights      map[string]string
}

// pivot reshapes matches into a score table, accession columns and rows both
// in first-seen order. A weight absent for some accession fills with zero so
// plink2 scores every column over the same variant set.
func pivot(ms []Match) scoreTable {
	var t scoreTable
	seenAcc := map[string]bool{}
	rowIdx := map[[2]string]int{}
	for _, m := range ms {
		if !seenAcc[m.Score.Accession] {
			seenAcc[m.Score.Accession] = true
			t.accessions = append(t.accessions, m.Score.Accession)
		}
		key := [2]string{m.Target.ID, m.Score.EffectAllele}
		i, ok := rowIdx[key]
		if !ok {
			i = len(t.rows)
			rowIdx[key] = i
			t.rows = append(t.rows, scoreRow{
				id:           m.Target.ID,
				effectAllele: m.Score.EffectAllele,
				weights:      map[string]string{},
			})
		}
		t.rows[i].weights[m.Score.Accession] = m.Score.EffectWeight
	}
	return t
}

// splitEffectType groups matches by the scorefile's effect-type column.
// plink2 applies one dominance model per scoring run, so each effect type
// gets its own output files.
func splitEffectType(ms []Match) map[string][]Match {
	out := map[string][]Match{}
	for _, m := range ms {
		out[m.Score.EffectType] = append(out[m.Score.EffectType], m)
	}
	return out
}

// unduplicate partitions matches into rows whose variant ID occurs once and
// rows whose ID occurs more than once. The same ID can carry different
// effect alleles across scoring files; those rows are scored from a separate
// file and summed downstream.
func unduplicate(ms []Match) (first, dup []Match) {
	count := map[string]int{}
	for _, m := range ms {
		count[m.Target.ID]++
	}
	for _, m := range ms {
		if count[m.Target.ID] > 1 {
			dup = append(dup, m)
		} else {
			first = append(first, m)
		}
	}
	return first, dup
}

// splitChrom groups matches by chromosome when splitting is on; otherwise
// everything lands under the single no-split key.
func splitChrom(ms []Match, split bool) map[string][]Match {
	if !split {
		return map[string][]Match{noSplitKey: ms}
	}
	out := map[string][]Match{}
	for _, m := range ms {
		out[m.Score.ChrName] = append(out[m.Score.ChrName], m)
	}
	return out
}

type scoreOutput struct {
	path  string
	table scoreTable
}

// WriteScorefiles writes the matched variants as plink2 --score inputs named
// <chrom>_<effect type>_<first|dup>.scorefile under opts.OutDir, one file
// per (chromosome, effect type, duplication) combination that has rows.
// Files are written in parallel and the returned paths are sorted.
func WriteScorefiles(ctx context.Context, ms []Match, opts Opts) ([]string, error) {
	var outputs []scoreOutput
	for effectType, group := range splitEffectType(ms) {
		label, ok := effectLabels[effectType]
		if !ok {
			return nil, errors.Errorf("unknown effect type %q", effectType)
		}
		first, dup := unduplicate(group)
		for dupKey, part := range map[string][]Match{"first": first, "dup": dup} {
			for chrom, chromPart := range splitChrom(part, opts.Split) {
				if len(chromPart) == 0 {
					continue
				}
				name := fmt.Sprintf("%s_%s_%s.scorefile", chrom, label, dupKey)
				if opts.GzipOutput {
					name += ".gz"
				}
				outputs = append(outputs, scoreOutput{
					path:  filepath.Join(opts.OutDir, name),
					table: pivot(chromPart),
				})
			}
		}
	}
	err := traverse.Each(len(outputs), func(i int) error {
		return writeScoreTable(ctx, outputs[i].path, outputs[i].table, opts.GzipOutput)
	})
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(outputs))
	for i, o := range outputs {
		paths[i] = o.path
	}
	sort.Strings(paths)
	return paths, nil
}

func writeScoreTable(ctx context.Context, path string, t scoreTable, gz bool) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	defer file.CloseAndReport(ctx, out, &err)
	w := out.Writer(ctx)
	if gz {
		gzw := gzip.NewWriter(w)
		defer func() {
			if e := gzw.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w = gzw
	}
	if err = writeTSV(w, t); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func writeTSV(w io.Writer, t scoreTable) error {
	tsvw := tsv.NewWriter(w)
	tsvw.WriteString("ID")
	tsvw.WriteString("effect_allele")
	for _, acc := range t.accessions {
		tsvw.WriteString(acc)
	}
	if err := tsvw.EndLine(); err != nil {
		return err
	}
	for _, row := range t.rows {
		tsvw.WriteString(row.id)
		tsvw.WriteString(row.effectAllele)
		for _, acc := range t.accessions {
			weight, ok := row.weights[acc]
			if !ok {
				weight = "0"
			}
			tsvw.WriteString(weight)
		}
		if err := tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}
