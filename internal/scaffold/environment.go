package scaffold

import (
	"context"
	"fmt"

	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/template"
)

// environmentAssets maps each variant to its dependency manifest and starter
// sources. Rendered before the toolchain commands run, since those commands
// read the manifest.
var environmentAssets = map[string][]assetMapping{
	"python": {
		{"python/pyproject.toml.tmpl", "pyproject.toml", template.CategoryConfig},
		{"python/init.py.tmpl", "src/${package}/__init__.py", template.CategoryConfig},
		{"python/test_basic.py.tmpl", "tests/test_basic.py", template.CategoryConfig},
	},
	"go": {
		{"go/go.mod.tmpl", "go.mod", template.CategoryConfig},
		{"go/main.go.tmpl", "main.go", template.CategoryConfig},
		{"go/main_test.go.tmpl", "main_test.go", template.CategoryConfig},
	},
	"node": {
		{"node/package.json.tmpl", "package.json", template.CategoryConfig},
		{"node/index.js.tmpl", "src/index.js", template.CategoryConfig},
		{"node/index.test.js.tmpl", "test/index.test.js", template.CategoryConfig},
	},
}

// applyEnvironment renders the language manifest and starter sources, then
// runs the variant's toolchain commands (dependency install, environment
// creation). The first failing command fails the module; nothing is retried.
func applyEnvironment(ctx context.Context, env *Env, spec project.Spec) error {
	mappings, ok := environmentAssets[spec.Variant.ID]
	if !ok {
		return fmt.Errorf("no environment assets registered for variant %q", spec.Variant.ID)
	}

	for _, m := range mappings {
		if err := renderAsset(env, spec, m); err != nil {
			return err
		}
	}

	for _, argv := range spec.Variant.EnvCommands {
		if err := runCommand(ctx, env, spec, argv); err != nil {
			return err
		}
	}
	return nil
}
