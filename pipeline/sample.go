// Package pipeline holds the shared types of a pipeline stage run: the sample
// metadata record, the grouped genotype fileset, the declared output set, the
// output publisher, and the tool-provenance record.
package pipeline

// Sample is the metadata record attached to one genotype dataset as it moves
// through the pipeline. Attrs carries arbitrary upstream annotations; this
// stage never reads them, they flow through to downstream stages unchanged.
type Sample struct {
	ID    string
	Attrs map[string]string
}

// OutputPrefix returns the basename used for this sample's output files: the
// sample ID, extended by the configured suffix when one is set. A suffix
// distinguishes outputs when the same sample passes through the stage more
// than once.
func (s Sample) OutputPrefix(suffix string) string {
	return s.ID + suffix
}
