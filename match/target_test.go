package match_test

import (
	"bytes"
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/match"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPVar = `##fileformat=PVARv1.0
##contig=<ID=22>
#CHROM	POS	ID	REF	ALT
22	100	22:100:A:C	A	C
22	200	22:200:G:T	G	T
`

const testBIM = "22\t22:100:A:C\t0\t100\tA\tC\n22\t22:200:G:T\t0\t200\tG\tT\n"

func writeTemp(t *testing.T, name string, data []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, data, 0644))
	return path
}

func gzipBytes(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestReadTarget(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		file   string
		data   []byte
		format string
	}{
		{"pvar", "target.pvar", []byte(testPVar), match.FormatPVar},
		{"pvar gz", "target.pvar.gz", gzipBytes(t, []byte(testPVar)), match.FormatPVar},
		{"bim", "target.bim", []byte(testBIM), match.FormatBIM},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			variants, err := match.ReadTarget(ctx, writeTemp(t, test.file, test.data), test.format)
			require.NoError(t, err)
			require.Len(t, variants, 2)
			assert.Equal(t, match.TargetVariant{
				Chrom: "22", Pos: 100, ID: "22:100:A:C",
				Ref: "A", Alt: "C", RefFlip: "T", AltFlip: "G",
			}, variants[0])
			assert.Equal(t, "22:200:G:T", variants[1].ID)
			assert.Equal(t, "C", variants[1].RefFlip)
			assert.Equal(t, "A", variants[1].AltFlip)
		})
	}
}

func TestReadTargetErrors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"bad format", testPVar, "vcf"},
		{"bim too few columns", "22\tid\t0\t100\tA\n", match.FormatBIM},
		{"bim bad position", "22\tid\t0\tx\tA\tC\n", match.FormatBIM},
		{"pvar no header", "22\t100\tid\tA\tC\n", match.FormatPVar},
		{"pvar missing column", "#CHROM\tPOS\tID\tREF\n22\t100\tid\tA\n", match.FormatPVar},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := match.ReadTarget(ctx, writeTemp(t, "target.txt", []byte(test.data)), test.format)
			assert.Error(t, err)
		})
	}
}
