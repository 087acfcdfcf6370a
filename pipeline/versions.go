package pipeline

import (
	"context"

	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// ToolVersions is the provenance record emitted next to stage outputs: which
// process ran, and which version of each external tool it invoked. The
// pipeline aggregates these records across stages for reproducibility
// reporting.
type ToolVersions struct {
	Process string
	Tools   map[string]string
}

// Validate rejects records that would be useless to the aggregator: the
// process name and every version string must be non-empty.
func (v ToolVersions) Validate() error {
	if v.Process == "" {
		return errors.New("versions record: empty process name")
	}
	if len(v.Tools) == 0 {
		return errors.New("versions record: no tools recorded")
	}
	for tool, version := range v.Tools {
		if tool == "" || version == "" {
			return errors.Errorf("versions record for %s: empty tool or version entry", v.Process)
		}
	}
	return nil
}

// MarshalYAML renders the record in the aggregator's expected shape, the
// process name mapping to its tool/version pairs.
func (v ToolVersions) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return map[string]map[string]string{v.Process: v.Tools}, nil
}

// WriteVersions writes the provenance record for one stage run to path.
func WriteVersions(ctx context.Context, path string, v ToolVersions) (err error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "versions record")
	}
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return errors.Wrap(err, "versions record")
	}
	defer file.CloseAndReport(ctx, out, &err)
	_, err = out.Writer(ctx).Write(data)
	return err
}
