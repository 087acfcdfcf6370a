package pipeline_test

import (
	"testing"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/pipeline"
	"github.com/grailbio/testutil/expect"
)

func TestOutputPrefix(t *testing.T) {
	tests := []struct {
		id     string
		suffix string
		want   string
	}{
		{"cineca", "", "cineca"},
		{"cineca", "_chr22", "cineca_chr22"},
		{"thousand_genomes", ".extract", "thousand_genomes.extract"},
	}
	for _, test := range tests {
		s := pipeline.Sample{ID: test.id}
		expect.EQ(t, s.OutputPrefix(test.suffix), test.want)
	}
}

func TestDeclaredOutputs(t *testing.T) {
	out := pipeline.DeclaredOutputs("cineca_chr22")
	expect.EQ(t, out.PGen, "cineca_chr22.pgen")
	expect.EQ(t, out.PVar, "cineca_chr22.pvar")
	expect.EQ(t, out.Versions, "versions.yml")
	expect.EQ(t, len(out.Paths()), 3)
}

func TestNewTask(t *testing.T) {
	task := pipeline.NewTask(pipeline.Sample{ID: "cineca"}, 4)
	expect.EQ(t, task.Tag, "cineca")
	expect.EQ(t, task.Label, pipeline.LabelLow)
	expect.EQ(t, task.Threads, 4)
}
