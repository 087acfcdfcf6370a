// Package match intersects a polygenic scoring file with the variants present
// in a target genomic dataset, and writes the surviving intersection as
// plink2 --score input files. Matching is exact on locus and alleles, tried
// under both allele orders and both strand orientations.
package match

import "strings"

// TargetVariant is one row of the target variant table, with precomputed
// strand complements of its alleles.
type TargetVariant struct {
	Chrom string
	Pos   int
	ID    string
	Ref   string
	Alt   string
	// RefFlip and AltFlip are the reverse-strand spellings of Ref and Alt.
	RefFlip string
	AltFlip string
}

// Complement returns the reverse-strand spelling of an allele. Characters
// outside A/C/G/T (indel and missing codes) pass through unchanged.
func Complement(allele string) string {
	var b strings.Builder
	b.Grow(len(allele))
	for i := 0; i < len(allele); i++ {
		switch c := allele[i]; c {
		case 'A':
			b.WriteByte('T')
		case 'T':
			b.WriteByte('A')
		case 'C':
			b.WriteByte('G')
		case 'G':
			b.WriteByte('C')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// newTargetVariant fills in the flip columns for one parsed row.
func newTargetVariant(chrom string, pos int, id, ref, alt string) TargetVariant {
	return TargetVariant{
		Chrom:   chrom,
		Pos:     pos,
		ID:      id,
		Ref:     ref,
		Alt:     alt,
		RefFlip: Complement(ref),
		AltFlip: Complement(alt),
	}
}
