package manifest

// ProjectManifest is the machine-readable record every scaffolded tree
// carries at its root as project.yaml. Downstream tooling reads it to learn
// what the tree is without inspecting language-specific manifests.
type ProjectManifest struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Variant     string `yaml:"variant" json:"variant"`
	Version     string `yaml:"version" json:"version"`
	GeneratedBy string `yaml:"generated_by,omitempty" json:"generated_by,omitempty"`
}
