package scaffold

import (
	"context"
	"io"

	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/toolchain"
)

// Engine owns the fixed module execution order and the abort-vs-continue
// decision.
type Engine struct {
	env *Env
}

// Option configures the engine's environment.
type Option func(*Env)

// WithOutput directs per-step progress lines to w.
func WithOutput(w io.Writer) Option {
	return func(e *Env) { e.Out = w }
}

// WithGitIdentity sets the author identity for the initial commit.
func WithGitIdentity(name, email string) Option {
	return func(e *Env) {
		e.GitName = name
		e.GitEmail = email
	}
}

// New creates an engine around the given command runner.
func New(runner toolchain.Runner, opts ...Option) *Engine {
	env := &Env{
		Runner:   runner,
		Out:      io.Discard,
		GitName:  "Kickoff",
		GitEmail: "scaffold@kickoff.dev",
	}
	for _, opt := range opts {
		opt(env)
	}
	return &Engine{env: env}
}

// Run executes every module in order against the validated spec. The first
// module failure aborts the run: the failed Result is recorded, no later
// module executes, and the partial tree is left on disk for inspection — no
// rollback, by design. After a clean pass the Verified step re-checks
// post-conditions; its findings downgrade to warnings, never to an abort.
//
// One spec drives one run to completion or abort; the run owns TargetDir
// exclusively from creation onward. Two simultaneous runs with the same name
// are not defended against beyond the validator's DirectoryExists check.
func (e *Engine) Run(ctx context.Context, spec project.Spec) *Report {
	report := &Report{}

	for _, m := range Modules() {
		if err := m.Apply(ctx, e.env, spec); err != nil {
			report.Results = append(report.Results, Result{
				ModuleID:   m.ID,
				Succeeded:  false,
				Diagnostic: err.Error(),
			})
			report.Aborted = true
			return report
		}
		report.Results = append(report.Results, Result{ModuleID: m.ID, Succeeded: true})
	}

	report.Warnings = verify(ctx, e.env, spec)
	report.Files = e.env.files
	return report
}
