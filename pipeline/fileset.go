package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// GenotypeFileset groups the three co-located plink2 files describing one set
// of samples' variant calls: the binary genotype matrix (.pgen), the variant
// index (.pvar), and the sample index (.psam). plink2 locates the .pvar and
// .psam by swapping the .pgen extension, so the three files must share a base
// name; renaming any one of them breaks the tool. Carrying the triplet as a
// single value makes a mismatched set unrepresentable past construction.
type GenotypeFileset struct {
	// Base is the shared path prefix, without extension. This is the value
	// handed to plink2's --pfile selector.
	Base string
	PGen string
	PVar string
	PSam string
}

// NewGenotypeFileset validates that the three paths form a well-formed
// triplet: expected extensions, one shared directory, one shared base name.
func NewGenotypeFileset(pgen, pvar, psam string) (GenotypeFileset, error) {
	for _, p := range []struct{ path, ext string }{
		{pgen, ".pgen"},
		{pvar, ".pvar"},
		{psam, ".psam"},
	} {
		if p.path == "" {
			return GenotypeFileset{}, errors.Errorf("missing %s path", p.ext)
		}
		if !strings.HasSuffix(p.path, p.ext) {
			return GenotypeFileset{}, errors.Errorf("%s: expected a %s file", p.path, p.ext)
		}
	}
	base := strings.TrimSuffix(pgen, ".pgen")
	if strings.TrimSuffix(pvar, ".pvar") != base || strings.TrimSuffix(psam, ".psam") != base {
		return GenotypeFileset{}, errors.Errorf(
			"mismatched genotype fileset: %s, %s, %s must share a base name", pgen, pvar, psam)
	}
	return GenotypeFileset{Base: base, PGen: pgen, PVar: pvar, PSam: psam}, nil
}

// FilesetForBase returns the triplet rooted at the given extension-less base
// path, e.g. the output set plink2 produces for --out <base>.
func FilesetForBase(base string) GenotypeFileset {
	return GenotypeFileset{
		Base: base,
		PGen: base + ".pgen",
		PVar: base + ".pvar",
		PSam: base + ".psam",
	}
}

// BaseName returns the base without its directory, the form plink2 reports in
// its own logs.
func (fs GenotypeFileset) BaseName() string {
	return filepath.Base(fs.Base)
}
