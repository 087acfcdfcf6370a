// Package containers resolves the isolated environment a stage runs under:
// a conda package specification, a remote singularity image, or a registry
// container image, switched on the host engine's configuration. Actually
// entering the environment is the host workflow engine's job; this package
// only picks and records the reference.
package containers

// References for the pinned plink2 build. The conda spec and the two images
// all resolve to the same tool version.
const (
	CondaSpec        = "bioconda::plink2==2.00a2.3"
	SingularityImage = "https://depot.galaxyproject.org/singularity/plink2:2.00a2.3--h712d239_1"
	DockerImage      = "quay.io/biocontainers/plink2:2.00a2.3--h712d239_1"
)

// EngineSingularity is the engine name under which prebuilt singularity
// images are preferred over registry pulls.
const EngineSingularity = "singularity"

// Opts mirrors the host engine's environment-selection switches.
type Opts struct {
	// Engine is the container engine name reported by the host.
	Engine string
	// PullDisabled stops singularity from pulling and converting registry
	// images, forcing the registry reference instead.
	PullDisabled bool
	// Conda selects a package environment instead of a container.
	Conda bool
}

// Resolve returns the environment reference the stage should run under. The
// choice is static; falling back at runtime is left to the host engine.
func Resolve(opts Opts) string {
	if opts.Conda {
		return CondaSpec
	}
	if opts.Engine == EngineSingularity && !opts.PullDisabled {
		return SingularityImage
	}
	return DockerImage
}
