package match

// Scheme names how a score variant's alleles lined up with a target variant.
type Scheme string

const (
	// SchemeRefAlt: effect/other == REF/ALT.
	SchemeRefAlt Scheme = "refalt"
	// SchemeAltRef: effect/other == ALT/REF.
	SchemeAltRef Scheme = "altref"
	// SchemeRefAltFlip: effect/other == complemented REF/ALT.
	SchemeRefAltFlip Scheme = "refalt_flip"
	// SchemeAltRefFlip: effect/other == complemented ALT/REF.
	SchemeAltRefFlip Scheme = "altref_flip"
)

var schemes = []Scheme{SchemeRefAlt, SchemeAltRef, SchemeRefAltFlip, SchemeAltRefFlip}

// Match pairs one score-file row with one target variant it matched, and
// records under which scheme. The same pair can appear once per scheme it
// satisfies; palindromic A/T and C/G variants do.
type Match struct {
	Score  ScoreVariant
	Target TargetVariant
	Scheme Scheme
	// Ambiguous marks matches whose strand orientation cannot be trusted:
	// the effect allele also equals a complemented target allele.
	Ambiguous bool
}

type locus struct {
	chrom string
	pos   int
}

func schemeAlleles(t TargetVariant, s Scheme) (effect, other string) {
	switch s {
	case SchemeRefAlt:
		return t.Ref, t.Alt
	case SchemeAltRef:
		return t.Alt, t.Ref
	case SchemeRefAltFlip:
		return t.RefFlip, t.AltFlip
	default:
		return t.AltFlip, t.RefFlip
	}
}

// MatchVariants intersects score rows with target variants on locus and
// alleles under each scheme in turn, labeling ambiguous results. Output is
// grouped by scheme, direct matches first, preserving score-row order within
// a scheme.
func MatchVariants(targets []TargetVariant, scores []ScoreVariant) []Match {
	index := make(map[locus][]TargetVariant, len(targets))
	for _, t := range targets {
		key := locus{t.Chrom, t.Pos}
		index[key] = append(index[key], t)
	}
	var out []Match
	for _, scheme := range schemes {
		for _, s := range scores {
			for _, t := range index[locus{s.ChrName, s.ChrPos}] {
				effect, other := schemeAlleles(t, scheme)
				if s.EffectAllele == effect && s.OtherAllele == other {
					out = append(out, Match{
						Score:     s,
						Target:    t,
						Scheme:    scheme,
						Ambiguous: s.EffectAllele == t.RefFlip || s.EffectAllele == t.AltFlip,
					})
				}
			}
		}
	}
	return out
}

// DropAmbiguous filters out ambiguous matches, returning the survivors and
// the number removed.
func DropAmbiguous(ms []Match) ([]Match, int) {
	kept := ms[:0:0]
	dropped := 0
	for _, m := range ms {
		if m.Ambiguous {
			dropped++
			continue
		}
		kept = append(kept, m)
	}
	return kept, dropped
}
