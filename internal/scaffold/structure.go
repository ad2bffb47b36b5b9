package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/template"
)

var structureAssets = []assetMapping{
	{"common/README.md.tmpl", "README.md", template.CategoryDoc},
	{"common/gitignore.tmpl", ".gitignore", template.CategoryConfig},
	{"common/editorconfig.tmpl", ".editorconfig", template.CategoryConfig},
}

// applyStructure creates the project directory, the variant's source layout,
// and the files every project carries regardless of variant.
func applyStructure(ctx context.Context, env *Env, spec project.Spec) error {
	if err := os.MkdirAll(spec.TargetDir, 0755); err != nil {
		return fmt.Errorf("creating target directory %s: %w", spec.TargetDir, err)
	}

	tmplCtx := template.FromSpec(spec)
	for _, dir := range spec.Variant.SourceDirs {
		rendered, err := template.Render(dir, tmplCtx)
		if err != nil {
			return fmt.Errorf("resolving source directory %s: %w", dir, err)
		}
		path := filepath.Join(spec.TargetDir, filepath.FromSlash(rendered))
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating source directory %s: %w", path, err)
		}
	}

	for _, m := range structureAssets {
		if err := renderAsset(env, spec, m); err != nil {
			return err
		}
	}
	return nil
}
