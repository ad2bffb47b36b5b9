package scaffold

import (
	"context"

	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/template"
)

// workflowDocAssets are the process documents that drive the collaborative
// workflow around a scaffolded project. Their prose is opaque to the engine;
// only substitution and placement matter here.
var workflowDocAssets = []assetMapping{
	{"docs/CONTRIBUTING.md.tmpl", "CONTRIBUTING.md", template.CategoryDoc},
	{"docs/workflow.md.tmpl", "docs/workflow.md", template.CategoryDoc},
	{"docs/decisions.md.tmpl", "docs/decisions.md", template.CategoryDoc},
}

func applyWorkflowDocs(ctx context.Context, env *Env, spec project.Spec) error {
	for _, m := range workflowDocAssets {
		if err := renderAsset(env, spec, m); err != nil {
			return err
		}
	}
	return nil
}
