package match_test

import (
	"testing"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func target(chrom string, pos int, id, ref, alt string) match.TargetVariant {
	return match.TargetVariant{
		Chrom: chrom, Pos: pos, ID: id,
		Ref: ref, Alt: alt,
		RefFlip: match.Complement(ref), AltFlip: match.Complement(alt),
	}
}

func score(chrom string, pos int, effect, other string) match.ScoreVariant {
	return match.ScoreVariant{
		ChrName: chrom, ChrPos: pos,
		EffectAllele: effect, OtherAllele: other,
		EffectWeight: "0.5", EffectType: "additive", Accession: "PGS000001",
	}
}

func TestMatchVariantsSchemes(t *testing.T) {
	targets := []match.TargetVariant{target("22", 100, "v1", "A", "C")}
	tests := []struct {
		name      string
		score     match.ScoreVariant
		scheme    match.Scheme
		ambiguous bool
	}{
		{"direct", score("22", 100, "A", "C"), match.SchemeRefAlt, false},
		{"swapped", score("22", 100, "C", "A"), match.SchemeAltRef, false},
		{"flipped", score("22", 100, "T", "G"), match.SchemeRefAltFlip, true},
		{"swapped and flipped", score("22", 100, "G", "T"), match.SchemeAltRefFlip, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ms := match.MatchVariants(targets, []match.ScoreVariant{test.score})
			require.Len(t, ms, 1)
			assert.Equal(t, test.scheme, ms[0].Scheme)
			assert.Equal(t, test.ambiguous, ms[0].Ambiguous)
			assert.Equal(t, "v1", ms[0].Target.ID)
		})
	}
}

func TestMatchVariantsNoMatch(t *testing.T) {
	targets := []match.TargetVariant{target("22", 100, "v1", "A", "C")}
	for _, s := range []match.ScoreVariant{
		score("22", 101, "A", "C"), // wrong position
		score("21", 100, "A", "C"), // wrong chromosome
		score("22", 100, "A", "G"), // wrong allele
	} {
		assert.Empty(t, match.MatchVariants(targets, []match.ScoreVariant{s}))
	}
}

func TestMatchVariantsPalindromic(t *testing.T) {
	// An A/T variant matches the direct and the swapped-flipped scheme at
	// once and is ambiguous both times.
	targets := []match.TargetVariant{target("22", 100, "v1", "A", "T")}
	ms := match.MatchVariants(targets, []match.ScoreVariant{score("22", 100, "A", "T")})
	require.Len(t, ms, 2)
	assert.Equal(t, match.SchemeRefAlt, ms[0].Scheme)
	assert.Equal(t, match.SchemeAltRefFlip, ms[1].Scheme)
	for _, m := range ms {
		assert.True(t, m.Ambiguous)
	}

	kept, dropped := match.DropAmbiguous(ms)
	assert.Empty(t, kept)
	assert.Equal(t, 2, dropped)
}

func TestMatchVariantsSchemeOrder(t *testing.T) {
	// Output stacks whole schemes: all direct matches precede all swapped
	// matches, regardless of score-row order.
	targets := []match.TargetVariant{
		target("22", 100, "v1", "A", "C"),
		target("22", 200, "v2", "G", "T"),
	}
	scores := []match.ScoreVariant{
		score("22", 200, "T", "G"), // altref
		score("22", 100, "A", "C"), // refalt
	}
	ms := match.MatchVariants(targets, scores)
	require.Len(t, ms, 2)
	assert.Equal(t, match.SchemeRefAlt, ms[0].Scheme)
	assert.Equal(t, "v1", ms[0].Target.ID)
	assert.Equal(t, match.SchemeAltRef, ms[1].Scheme)
	assert.Equal(t, "v2", ms[1].Target.ID)
}

func TestDropAmbiguousKeepsOrder(t *testing.T) {
	targets := []match.TargetVariant{
		target("22", 100, "v1", "A", "C"),
		target("22", 200, "v2", "C", "G"), // palindromic
		target("22", 300, "v3", "G", "T"),
	}
	scores := []match.ScoreVariant{
		score("22", 100, "A", "C"),
		score("22", 200, "C", "G"),
		score("22", 300, "G", "T"),
	}
	ms := match.MatchVariants(targets, scores)
	kept, dropped := match.DropAmbiguous(ms)
	assert.Equal(t, 2, dropped)
	require.Len(t, kept, 2)
	assert.Equal(t, "v1", kept[0].Target.ID)
	assert.Equal(t, "v3", kept[1].Target.ID)
}
