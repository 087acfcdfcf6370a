package match_test

import (
	"context"
	"testing"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScorefile = `chr_name	chr_position	effect_allele	other_allele	effect_weight	effect_type	accession
22	100	A	C	0.5	additive	PGS000001
22	200	T	G	-0.2	additive	PGS000001
`

func TestReadScorefile(t *testing.T) {
	ctx := context.Background()
	scores, err := match.ReadScorefile(ctx, writeTemp(t, "combined.txt", []byte(testScorefile)))
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, match.ScoreVariant{
		ChrName:      "22",
		ChrPos:       100,
		EffectAllele: "A",
		OtherAllele:  "C",
		EffectWeight: "0.5",
		EffectType:   "additive",
		Accession:    "PGS000001",
	}, scores[0])
	assert.Equal(t, "-0.2", scores[1].EffectWeight)
}

func TestReadScorefileGzip(t *testing.T) {
	ctx := context.Background()
	path := writeTemp(t, "combined.txt.gz", gzipBytes(t, []byte(testScorefile)))
	scores, err := match.ReadScorefile(ctx, path)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestReadScorefileErrors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"missing column", "chr_name\tchr_position\teffect_allele\n22\t100\tA\n"},
		{"bad position", "chr_name\tchr_position\teffect_allele\tother_allele\teffect_weight\teffect_type\taccession\n22\tx\tA\tC\t0.5\tadditive\tPGS000001\n"},
		{"short row", "chr_name\tchr_position\teffect_allele\tother_allele\teffect_weight\teffect_type\taccession\n22\t100\tA\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := match.ReadScorefile(ctx, writeTemp(t, "combined.txt", []byte(test.data)))
			assert.Error(t, err)
		})
	}
}
