package scaffold

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/template"
	"github.com/kickoff-dev/kickoff/internal/toolchain"
)

// Module is one discrete, ordered unit of scaffold work. DependsOn is
// informational: execution follows the fixed total order of Modules(), not a
// resolved graph. Modules never share in-memory state; they communicate only
// through the filesystem under spec.TargetDir.
type Module struct {
	ID        string
	DependsOn []string
	Apply     func(ctx context.Context, env *Env, spec project.Spec) error
}

// Modules returns the fixed execution order. Defined at build time; never
// created or destroyed at runtime.
func Modules() []Module {
	return []Module{
		{ID: "structure", Apply: applyStructure},
		{ID: "environment", DependsOn: []string{"structure"}, Apply: applyEnvironment},
		{ID: "vcs", DependsOn: []string{"structure", "environment"}, Apply: applyVCS},
		{ID: "workflowdocs", DependsOn: []string{"structure"}, Apply: applyWorkflowDocs},
		{ID: "templates", DependsOn: []string{"structure"}, Apply: applyTemplates},
	}
}

// Result records one module invocation. Diagnostic is present iff the module
// failed.
type Result struct {
	ModuleID   string
	Succeeded  bool
	Diagnostic string
}

// Report aggregates an orchestration run. Results never contain entries after
// a failure; Warnings come only from the post-run verification step.
type Report struct {
	Results  []Result
	Aborted  bool
	Warnings []string
	Files    []string // created files, relative to the target directory
}

// FailedModule returns the ID of the module that aborted the run, if any.
func (r *Report) FailedModule() string {
	for _, res := range r.Results {
		if !res.Succeeded {
			return res.ModuleID
		}
	}
	return ""
}

// Env carries the injected collaborators every module works through. The
// parsed parameters themselves travel as an explicit Spec argument, never as
// process-global state.
type Env struct {
	Runner   toolchain.Runner
	Out      io.Writer // progress lines; io.Discard by default
	GitName  string
	GitEmail string

	files []string
}

func (e *Env) recordFile(rel string) {
	e.files = append(e.files, rel)
}

// assetMapping binds one embedded asset to its output path (template tokens
// allowed in OutRel) and write category.
type assetMapping struct {
	Asset    string
	OutRel   string
	Category template.Category
}

// renderAsset reads an embedded asset, substitutes variables, and writes the
// result into the target tree.
func renderAsset(env *Env, spec project.Spec, m assetMapping) error {
	body, err := readAsset(m.Asset)
	if err != nil {
		return err
	}

	ctx := template.FromSpec(spec)
	rendered, err := template.Render(body, ctx)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", m.Asset, err)
	}
	outRel, err := template.Render(m.OutRel, ctx)
	if err != nil {
		return fmt.Errorf("resolving output path %s: %w", m.OutRel, err)
	}

	outPath := filepath.Join(spec.TargetDir, filepath.FromSlash(outRel))
	if err := template.WriteFile(outPath, []byte(rendered), m.Category); err != nil {
		return err
	}
	env.recordFile(outRel)
	return nil
}

// runCommand executes one external command inside the target directory and
// maps a non-zero exit to a module failure. Output is surfaced only in the
// diagnostic, never interpreted.
func runCommand(ctx context.Context, env *Env, spec project.Spec, argv []string) error {
	fmt.Fprintf(env.Out, "  $ %s\n", strings.Join(argv, " "))

	res, err := env.Runner.Run(ctx, argv[0], argv[1:], toolchain.Options{Dir: spec.TargetDir})
	if err != nil {
		return fmt.Errorf("running %s: %w", argv[0], err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("%s exited with status %d: %s",
			strings.Join(argv, " "), res.ExitCode, diagnosticTail(res))
	}
	return nil
}

// renderArgv substitutes template tokens in each command argument (used by
// variant smoke commands such as `python -c "import ${package}"`).
func renderArgv(argv []string, ctx template.Context) ([]string, error) {
	out := make([]string, len(argv))
	for i, a := range argv {
		r, err := template.Render(a, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// diagnosticTail returns the last non-empty output stream, truncated so
// diagnostics stay single-screen.
func diagnosticTail(res toolchain.Result) string {
	out := strings.TrimSpace(res.Stderr)
	if out == "" {
		out = strings.TrimSpace(res.Stdout)
	}
	if out == "" {
		return "(no output)"
	}
	const limit = 500
	if len(out) > limit {
		out = "..." + out[len(out)-limit:]
	}
	return out
}
