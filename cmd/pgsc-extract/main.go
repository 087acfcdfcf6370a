package main

/*
pgsc-extract runs the genotype-extraction stage of the scoring pipeline: it
invokes plink2 once to filter a binary genotype fileset down to a variant
inclusion list, records the tool version for provenance, and publishes the
declared outputs into the structured results directory keyed by sample ID.
*/

import (
	"flag"
	"strings"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/containers"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/pipeline"
	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/plink2"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

var (
	sampleID    = flag.String("sample-id", "", "Sample identifier; required")
	sampleAttrs = flag.String("sample-attrs", "", "Extra sample metadata as comma-separated key=value pairs, passed through to outputs")
	pgenPath    = flag.String("pgen", "", "Input .pgen genotype matrix; required")
	pvarPath    = flag.String("pvar", "", "Input .pvar variant index; required")
	psamPath    = flag.String("psam", "", "Input .psam sample index; required")
	variants    = flag.String("variants", "", "Variant inclusion list (one variant ID per line); required")
	suffix      = flag.String("suffix", "", "Output-prefix suffix appended to the sample ID")
	extraArgs   = flag.String("extra-args", "", "Extra arguments passed to plink2 verbatim")
	threads     = flag.Int("threads", plink2.DefaultOpts.Threads, "Thread count for plink2's internal parallelism")
	plinkPath   = flag.String("plink2", plink2.DefaultOpts.Path, "Path to the plink2 executable")
	outDir      = flag.String("outdir", "", "Root of the structured output directory")
	publishMode = flag.String("publish-mode", "", "How outputs land in -outdir: copy, symlink, link, or move")
	engine      = flag.String("container-engine", "", "Container engine name reported by the host workflow engine")
	noPull      = flag.Bool("no-pull", false, "Disable singularity image pulls, forcing the registry image reference")
	conda       = flag.Bool("conda", false, "Resolve a conda package environment instead of a container image")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	cfg, err := pipeline.LoadConfig()
	if err != nil {
		log.Fatalf("pgsc-extract: %v", err)
	}
	applyConfig(cfg)
	if *sampleID == "" || *pgenPath == "" || *pvarPath == "" || *psamPath == "" || *variants == "" {
		log.Fatalf("pgsc-extract: -sample-id, -pgen, -pvar, -psam, and -variants are all required")
	}

	sample := pipeline.Sample{ID: *sampleID, Attrs: parseAttrs(*sampleAttrs)}
	fileset, err := pipeline.NewGenotypeFileset(*pgenPath, *pvarPath, *psamPath)
	if err != nil {
		log.Fatalf("pgsc-extract: %v", err)
	}
	mode, err := pipeline.ParsePublishMode(*publishMode)
	if err != nil {
		log.Fatalf("pgsc-extract: %v", err)
	}

	env := containers.Resolve(containers.Opts{
		Engine:       *engine,
		PullDisabled: *noPull,
		Conda:        *conda,
	})
	task := pipeline.NewTask(sample, *threads)
	log.Printf("task %s (%s): environment %s", task.Tag, task.Label, env)

	ctx := vcontext.Background()
	outputs, err := plink2.Extract(ctx, sample, fileset, *variants, *suffix, plink2.Opts{
		Path:      *plinkPath,
		Threads:   task.Threads,
		ExtraArgs: *extraArgs,
	})
	if err != nil {
		log.Fatalf("pgsc-extract: %v", err)
	}

	publisher := pipeline.Publisher{OutDir: *outDir, Mode: mode}
	published, err := publisher.Publish(ctx, sample, outputs.Paths()...)
	if err != nil {
		log.Fatalf("pgsc-extract: %v", err)
	}
	for _, p := range published {
		log.Printf("published %s", p)
	}
}

// applyConfig fills in flags the user did not set from the environment-driven
// configuration.
func applyConfig(cfg pipeline.Config) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["outdir"] {
		*outDir = cfg.OutDir
	}
	if !set["publish-mode"] {
		*publishMode = cfg.PublishMode
	}
	if !set["container-engine"] {
		*engine = cfg.ContainerEngine
	}
	if !set["no-pull"] {
		*noPull = cfg.DisableImagePull
	}
	if !set["conda"] {
		*conda = cfg.EnableConda
	}
	if !set["threads"] {
		*threads = cfg.Threads
	}
	if !set["extra-args"] {
		*extraArgs = cfg.ExtraArgs
	}
	if !set["suffix"] {
		*suffix = cfg.Suffix
	}
}

func parseAttrs(s string) map[string]string {
	if s == "" {
		return nil
	}
	attrs := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			log.Fatalf("pgsc-extract: bad -sample-attrs entry %q (want key=value)", pair)
		}
		attrs[kv[0]] = kv[1]
	}
	return attrs
}
