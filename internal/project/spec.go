package project

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDescription is substituted when the user provides no description.
const DefaultDescription = "A new project scaffolded with Kickoff."

// InitialVersion is the version every scaffolded project starts at.
const InitialVersion = "0.1.0"

// Params is the raw, driver-parsed input before validation.
type Params struct {
	Name        string
	Description string
	Variant     string
	ParentDir   string // directory the project is created under; "." if empty
}

// Spec is the validated, immutable description of one scaffold run. It is
// created exactly once by Resolve and passed by value through the engine;
// nothing mutates it afterwards.
type Spec struct {
	Name        string
	Description string
	Variant     Variant
	TargetDir   string // <parent>/<name>; owned exclusively by this run
	PackageName string // name with separators normalized to underscores
	DisplayName string // title-cased name for prose documents
	ModulePath  string // module identifier for language manifests
	Version     string
}

// packageSafe normalizes a project name into an importable package name.
func packageSafe(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// displayName turns "sample-lib" into "Sample Lib".
func displayName(name string) string {
	spaced := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(spaced)
}
