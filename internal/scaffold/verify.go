package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kickoff-dev/kickoff/internal/manifest"
	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/template"
	"github.com/kickoff-dev/kickoff/internal/toolchain"
)

// verify re-checks post-conditions after all modules succeeded: expected
// marker files exist, the generated project.yaml parses and satisfies its
// schema, and the variant's smoke command exits zero. Findings are returned
// as warnings; a failed verification never deletes or undoes the tree, it
// only degrades the final messaging. Treating smoke failures as non-fatal is
// deliberate leniency carried over from the tool's original behavior; worth
// revisiting.
func verify(ctx context.Context, env *Env, spec project.Spec) []string {
	var warnings []string

	markers := []string{"project.yaml", "README.md", spec.Variant.ManifestFile}
	for _, rel := range markers {
		path := filepath.Join(spec.TargetDir, rel)
		if _, err := os.Stat(path); err != nil {
			warnings = append(warnings, fmt.Sprintf("expected file %s is missing", rel))
		}
	}

	warnings = append(warnings, verifyManifest(spec)...)

	if w := runSmoke(ctx, env, spec); w != "" {
		warnings = append(warnings, w)
	}
	return warnings
}

// verifyManifest validates project.yaml against the embedded schema and
// cross-checks it against the Spec that produced it.
func verifyManifest(spec project.Spec) []string {
	var warnings []string
	path := filepath.Join(spec.TargetDir, "project.yaml")

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return []string{fmt.Sprintf("could not validate project.yaml: %v", err)}
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			warnings = append(warnings, "project.yaml "+issue.String())
		}
	}

	pm, err := manifest.ParseFile(path)
	if err != nil {
		return append(warnings, fmt.Sprintf("could not parse project.yaml: %v", err))
	}
	if pm.Name != spec.Name {
		warnings = append(warnings, fmt.Sprintf("project.yaml name is %q, expected %q", pm.Name, spec.Name))
	}
	if pm.Description != spec.Description {
		warnings = append(warnings, "project.yaml description does not match the requested description")
	}
	return warnings
}

func runSmoke(ctx context.Context, env *Env, spec project.Spec) string {
	argv, err := renderArgv(spec.Variant.SmokeCommand, template.FromSpec(spec))
	if err != nil {
		return fmt.Sprintf("could not build smoke command: %v", err)
	}

	fmt.Fprintf(env.Out, "  $ %s\n", strings.Join(argv, " "))
	res, err := env.Runner.Run(ctx, argv[0], argv[1:], toolchain.Options{Dir: spec.TargetDir})
	if err != nil {
		return fmt.Sprintf("smoke check could not run: %v", err)
	}
	if res.ExitCode != 0 {
		return fmt.Sprintf("smoke check %q exited with status %d: %s",
			strings.Join(argv, " "), res.ExitCode, diagnosticTail(res))
	}
	return ""
}
