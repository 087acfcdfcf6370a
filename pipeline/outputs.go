package pipeline

// VersionsFile is the conventional name of the per-stage provenance record.
const VersionsFile = "versions.yml"

// Outputs is the declared output set of one extract run: the filtered pair
// and the provenance record, still associated with the input sample. The
// external tool also leaves a .psam behind; it is not part of the declared
// set because downstream scoring re-reads samples from the upstream psam.
type Outputs struct {
	Sample   Sample
	PGen     string
	PVar     string
	Versions string
}

// DeclaredOutputs names the files the stage promises for one output prefix,
// in publish order. The set always has exactly two genotype handles and one
// version-report handle, regardless of how many inputs were staged.
func DeclaredOutputs(prefix string) Outputs {
	return Outputs{
		PGen:     prefix + ".pgen",
		PVar:     prefix + ".pvar",
		Versions: VersionsFile,
	}
}

// Paths returns the output files in publish order.
func (o Outputs) Paths() []string {
	return []string{o.PGen, o.PVar, o.Versions}
}
