// Package scaffold orchestrates project generation: a fixed, dependency-ordered
// sequence of setup modules (structure, environment, vcs, workflowdocs,
// templates) rendered from embedded template assets, with fail-fast abort
// semantics and a warning-only post-run verification step.
package scaffold
