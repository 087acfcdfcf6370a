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

// Target table formats.
const (
	FormatBIM  = "bim"
	FormatPVar = "pvar"
)

// Column order of a headerless .bim variant table. The centimorgan column is
// carried by the format but never used here.
const (
	bimChrom = iota
	bimID
	bimMorgans
	bimPos
	bimRef
	bimAlt
	bimCols
)

// ReadTarget reads the target variant table at path, in .bim or .pvar layout.
// Gzipped input is detected and decompressed transparently.
func ReadTarget(ctx context.Context, path, format string) (variants []TargetVariant, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, errors.Wrap(err, "read target")
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
	switch format {
	case FormatBIM:
		variants, err = scanBIM(scanner)
	case FormatPVar:
		variants, err = scanPVar(scanner)
	default:
		return nil, errors.Errorf("unknown target format %q (want %s or %s)", format, FormatBIM, FormatPVar)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read target %s", path)
	}
	return variants, nil
}

func scanBIM(scanner *bufio.Scanner) ([]TargetVariant, error) {
	var variants []TargetVariant
	line := 0
	for scanner.Scan() {
		line++
		cols := strings.Split(scanner.Text(), "\t")
		if len(cols) != bimCols {
			return nil, errors.Errorf("line %d: want %d columns, got %d", line, bimCols, len(cols))
		}
		pos, err := strconv.Atoi(cols[bimPos])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad position", line)
		}
		variants = append(variants, newTargetVariant(cols[bimChrom], pos, cols[bimID], cols[bimRef], cols[bimAlt]))
	}
	return variants, scanner.Err()
}

func scanPVar(scanner *bufio.Scanner) ([]TargetVariant, error) {
	// #CHROM header follows any number of ## meta lines.
	cols := map[string]int{}
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.HasPrefix(text, "##") {
			continue
		}
		if !strings.HasPrefix(text, "#CHROM") {
			return nil, errors.Errorf("line %d: missing #CHROM header", line)
		}
		for i, name := range strings.Split(text, "\t") {
			cols[strings.TrimPrefix(name, "#")] = i
		}
		break
	}
	for _, want := range []string{"CHROM", "POS", "ID", "REF", "ALT"} {
		if _, ok := cols[want]; !ok {
			return nil, errors.Errorf("header is missing the %s column", want)
		}
	}

	var variants []TargetVariant
	for scanner.Scan() {
		line++
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < len(cols) {
			return nil, errors.Errorf("line %d: want %d columns, got %d", line, len(cols), len(fields))
		}
		pos, err := strconv.Atoi(fields[cols["POS"]])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad position", line)
		}
		variants = append(variants, newTargetVariant(
			fields[cols["CHROM"]], pos, fields[cols["ID"]], fields[cols["REF"]], fields[cols["ALT"]]))
	}
	return variants, scanner.Err()
}
