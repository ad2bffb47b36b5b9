package scaffold

import (
	"context"

	"github.com/kickoff-dev/kickoff/internal/project"
)

// applyVCS initializes the repository and records the initial commit. The
// identity comes from Env (config-sourced with branded fallbacks) via -c
// overrides, so the commit succeeds on hosts with no global git config.
func applyVCS(ctx context.Context, env *Env, spec project.Spec) error {
	steps := [][]string{
		{"git", "init", "--quiet"},
		{"git", "add", "."},
		{"git",
			"-c", "user.name=" + env.GitName,
			"-c", "user.email=" + env.GitEmail,
			"commit", "--quiet", "-m", "Initial project structure"},
	}
	for _, argv := range steps {
		if err := runCommand(ctx, env, spec, argv); err != nil {
			return err
		}
	}
	return nil
}
