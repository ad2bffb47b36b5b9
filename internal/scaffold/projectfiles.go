package scaffold

import (
	"context"
	"fmt"

	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/template"
)

// templateAssets holds the quality-tooling configs per variant plus the
// project manifest every tree carries.
var templateAssets = map[string][]assetMapping{
	"python": {
		{"python/Makefile.tmpl", "Makefile", template.CategoryConfig},
		{"python/ruff.toml.tmpl", "ruff.toml", template.CategoryConfig},
	},
	"go": {
		{"go/Makefile.tmpl", "Makefile", template.CategoryConfig},
		{"go/golangci.yml.tmpl", ".golangci.yml", template.CategoryConfig},
	},
	"node": {
		{"node/Makefile.tmpl", "Makefile", template.CategoryConfig},
		{"node/eslint.config.js.tmpl", "eslint.config.js", template.CategoryConfig},
	},
}

var projectManifestAsset = assetMapping{
	Asset:    "project/project.yaml.tmpl",
	OutRel:   "project.yaml",
	Category: template.CategoryConfig,
}

// applyTemplates renders the Makefile, the variant's lint configuration, and
// the project.yaml manifest that the Verified step re-checks.
func applyTemplates(ctx context.Context, env *Env, spec project.Spec) error {
	mappings, ok := templateAssets[spec.Variant.ID]
	if !ok {
		return fmt.Errorf("no template assets registered for variant %q", spec.Variant.ID)
	}

	for _, m := range mappings {
		if err := renderAsset(env, spec, m); err != nil {
			return err
		}
	}
	return renderAsset(env, spec, projectManifestAsset)
}
