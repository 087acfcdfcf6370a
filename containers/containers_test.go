package containers_test

import (
	"testing"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/containers"
	"github.com/grailbio/testutil/expect"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		engine       string
		pullDisabled bool
		conda        bool
		want         string
	}{
		{"singularity", false, false, containers.SingularityImage},
		{"singularity", true, false, containers.DockerImage},
		{"docker", false, false, containers.DockerImage},
		{"docker", true, false, containers.DockerImage},
		{"", false, false, containers.DockerImage},
		{"singularity", false, true, containers.CondaSpec},
		{"docker", false, true, containers.CondaSpec},
	}
	for _, test := range tests {
		got := containers.Resolve(containers.Opts{
			Engine:       test.engine,
			PullDisabled: test.pullDisabled,
			Conda:        test.conda,
		})
		expect.EQ(t, got, test.want)
	}
}
