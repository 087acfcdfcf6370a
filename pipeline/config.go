package pipeline

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config carries the stage settings that come from the host environment.
// Fields are read from PGSC_*-prefixed environment variables; the CLIs let
// command-line flags override them.
type Config struct {
	// OutDir is the root of the structured output directory.
	OutDir string `envconfig:"OUTDIR" default:"results"`
	// PublishMode selects how outputs land in OutDir.
	PublishMode string `envconfig:"PUBLISH_MODE" default:"copy"`
	// ContainerEngine is the engine name reported by the host workflow engine.
	ContainerEngine string `envconfig:"CONTAINER_ENGINE" default:"docker"`
	// DisableImagePull stops singularity from converting registry images.
	DisableImagePull bool `envconfig:"DISABLE_IMAGE_PULL"`
	// EnableConda selects package environments instead of containers.
	EnableConda bool `envconfig:"ENABLE_CONDA"`
	// Threads bounds the external tool's internal parallelism.
	Threads int `envconfig:"THREADS" default:"2"`
	// ExtraArgs are passed through to the external tool verbatim.
	ExtraArgs string `envconfig:"EXTRA_ARGS"`
	// Suffix extends the sample ID when computing output prefixes.
	Suffix string `envconfig:"SUFFIX"`
}

// LoadConfig reads the stage configuration from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("pgsc", &c); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	return c, nil
}
