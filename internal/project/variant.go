package project

// Tool names an external toolchain binary the validator must find on PATH,
// together with how to ask it for a version and what range is acceptable.
type Tool struct {
	Name        string
	VersionArgs []string
	Constraint  string // semver range, e.g. ">= 2.0.0"
}

// Git is required by every variant; the VersionControl module depends on it.
var Git = Tool{Name: "git", VersionArgs: []string{"--version"}, Constraint: ">= 2.0.0"}

// Variant describes one supported project type: which toolchain it needs,
// which manifest it carries, and which commands populate and smoke-check it.
// Variants are static data compiled into the binary; they are never created
// at runtime.
type Variant struct {
	ID           string
	Summary      string
	Tool         Tool
	ManifestFile string
	SourceDirs   []string   // template tokens allowed, e.g. "src/${package}"
	EnvCommands  [][]string // run inside the target directory, in order
	SmokeCommand []string   // template tokens allowed; warning-only check
}

// variants is the fixed registry, in presentation order. The first entry is
// the default.
var variants = []Variant{
	{
		ID:           "python",
		Summary:      "Python package managed with uv",
		Tool:         Tool{Name: "uv", VersionArgs: []string{"--version"}, Constraint: ">= 0.4.0"},
		ManifestFile: "pyproject.toml",
		SourceDirs:   []string{"src/${package}", "tests"},
		EnvCommands:  [][]string{{"uv", "venv"}, {"uv", "sync"}},
		SmokeCommand: []string{"uv", "run", "python", "-c", "import ${package}"},
	},
	{
		ID:           "go",
		Summary:      "Go module with a runnable main package",
		Tool:         Tool{Name: "go", VersionArgs: []string{"version"}, Constraint: ">= 1.21.0"},
		ManifestFile: "go.mod",
		EnvCommands:  [][]string{{"go", "mod", "tidy"}},
		SmokeCommand: []string{"go", "build", "./..."},
	},
	{
		ID:           "node",
		Summary:      "Node.js package with npm and the built-in test runner",
		Tool:         Tool{Name: "npm", VersionArgs: []string{"--version"}, Constraint: ">= 9.0.0"},
		ManifestFile: "package.json",
		SourceDirs:   []string{"src", "test"},
		EnvCommands:  [][]string{{"npm", "install", "--no-audit", "--no-fund"}},
		SmokeCommand: []string{"node", "src/index.js"},
	},
}

// Variants returns the registry in order.
func Variants() []Variant {
	return variants
}

// VariantIDs returns the ordered identifiers, for help text and error messages.
func VariantIDs() []string {
	ids := make([]string, len(variants))
	for i, v := range variants {
		ids[i] = v.ID
	}
	return ids
}

// DefaultVariantID returns the identifier used when the user passes none.
func DefaultVariantID() string {
	return variants[0].ID
}

// LookupVariant finds a variant by identifier.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
