// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into both driver binaries so they always agree on names.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	LiteCLIName string `yaml:"lite_cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	CommitName  string `yaml:"commit_name"`
	CommitEmail string `yaml:"commit_email"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "kickoff",
			LiteCLIName: "kickoff-lite",
			DisplayName: "Kickoff",
			Description: "Scaffold ready-to-use project directories in seconds",
			HomeDir:     ".kickoff",
			EnvPrefix:   "KICKOFF",
			CommitName:  "Kickoff",
			CommitEmail: "scaffold@kickoff.dev",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the primary driver's command name (e.g., "kickoff").
func CLIName() string { load(); return defaults.CLIName }

// LiteCLIName returns the secondary driver's command name (e.g., "kickoff-lite").
func LiteCLIName() string { load(); return defaults.LiteCLIName }

// DisplayName returns the human-readable product name (e.g., "Kickoff").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".kickoff").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "KICKOFF").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// CommitName returns the fallback author name for the initial git commit.
func CommitName() string { load(); return defaults.CommitName }

// CommitEmail returns the fallback author email for the initial git commit.
func CommitEmail() string { load(); return defaults.CommitEmail }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "KICKOFF_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
