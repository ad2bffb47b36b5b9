package scaffold

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/toolchain"
)

// fakeRunner records every invocation and fails commands whose rendered
// argv starts with failOn.
type fakeRunner struct {
	calls  [][]string
	failOn string
}

func (r *fakeRunner) Run(_ context.Context, name string, args []string, _ toolchain.Options) (toolchain.Result, error) {
	argv := append([]string{name}, args...)
	r.calls = append(r.calls, argv)
	if r.failOn != "" && strings.HasPrefix(strings.Join(argv, " "), r.failOn) {
		return toolchain.Result{ExitCode: 1, Stderr: "simulated failure"}, nil
	}
	return toolchain.Result{}, nil
}

func (r *fakeRunner) commandLines() []string {
	lines := make([]string, len(r.calls))
	for i, argv := range r.calls {
		lines[i] = strings.Join(argv, " ")
	}
	return lines
}

func testSpec(t *testing.T, name, description, variantID string) project.Spec {
	t.Helper()
	variant, ok := project.LookupVariant(variantID)
	if !ok {
		t.Fatalf("unknown variant %q", variantID)
	}
	pkg := strings.ReplaceAll(name, "-", "_")
	return project.Spec{
		Name:        name,
		Description: description,
		Variant:     variant,
		TargetDir:   filepath.Join(t.TempDir(), name),
		PackageName: pkg,
		DisplayName: name,
		ModulePath:  name,
		Version:     project.InitialVersion,
	}
}

func readTargetFile(t *testing.T, spec project.Spec, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(spec.TargetDir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func TestRunPythonSuccess(t *testing.T) {
	runner := &fakeRunner{}
	spec := testSpec(t, "sample-lib", "demo", "python")

	rep := New(runner).Run(context.Background(), spec)

	if rep.Aborted {
		t.Fatalf("run aborted: %+v", rep.Results)
	}
	wantOrder := []string{"structure", "environment", "vcs", "workflowdocs", "templates"}
	if len(rep.Results) != len(wantOrder) {
		t.Fatalf("Results = %+v, want %d entries", rep.Results, len(wantOrder))
	}
	for i, id := range wantOrder {
		if rep.Results[i].ModuleID != id || !rep.Results[i].Succeeded {
			t.Errorf("Results[%d] = %+v, want succeeded %q", i, rep.Results[i], id)
		}
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", rep.Warnings)
	}

	// Substituted values land verbatim in the rendered manifests.
	pyproject := readTargetFile(t, spec, "pyproject.toml")
	if !strings.Contains(pyproject, `name = "sample-lib"`) {
		t.Errorf("pyproject.toml missing project name:\n%s", pyproject)
	}
	if !strings.Contains(pyproject, `description = "demo"`) {
		t.Errorf("pyproject.toml missing description:\n%s", pyproject)
	}
	if !strings.Contains(pyproject, `packages = ["src/sample_lib"]`) {
		t.Errorf("pyproject.toml package path not substituted:\n%s", pyproject)
	}
	manifest := readTargetFile(t, spec, "project.yaml")
	if !strings.Contains(manifest, "variant: python") {
		t.Errorf("project.yaml missing variant:\n%s", manifest)
	}
	readme := readTargetFile(t, spec, "README.md")
	if strings.Contains(readme, "${") {
		t.Errorf("README.md contains unrendered tokens:\n%s", readme)
	}

	// Package directory uses the underscore form of the name.
	if _, err := os.Stat(filepath.Join(spec.TargetDir, "src", "sample_lib", "__init__.py")); err != nil {
		t.Errorf("package init missing: %v", err)
	}

	// Environment, VCS, and smoke commands in order.
	wantCommands := []string{
		"uv venv",
		"uv sync",
		"git init --quiet",
		"git add .",
		"git -c user.name=Kickoff -c user.email=scaffold@kickoff.dev commit --quiet -m Initial project structure",
		"uv run python -c import sample_lib",
	}
	got := runner.commandLines()
	if len(got) != len(wantCommands) {
		t.Fatalf("commands = %v, want %v", got, wantCommands)
	}
	for i := range wantCommands {
		if got[i] != wantCommands[i] {
			t.Errorf("command[%d] = %q, want %q", i, got[i], wantCommands[i])
		}
	}

	// Every recorded file really exists.
	if len(rep.Files) == 0 {
		t.Fatal("report lists no created files")
	}
	for _, rel := range rep.Files {
		if _, err := os.Stat(filepath.Join(spec.TargetDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("reported file %s missing: %v", rel, err)
		}
	}
}

func TestRunAbortsOnEnvironmentFailure(t *testing.T) {
	runner := &fakeRunner{failOn: "uv sync"}
	spec := testSpec(t, "sample-lib", "demo", "python")

	rep := New(runner).Run(context.Background(), spec)

	if !rep.Aborted {
		t.Fatal("run should have aborted")
	}
	if len(rep.Results) != 2 {
		t.Fatalf("Results = %+v, want structure + environment only", rep.Results)
	}
	if rep.Results[0].ModuleID != "structure" || !rep.Results[0].Succeeded {
		t.Errorf("Results[0] = %+v", rep.Results[0])
	}
	if rep.Results[1].ModuleID != "environment" || rep.Results[1].Succeeded {
		t.Errorf("Results[1] = %+v", rep.Results[1])
	}
	if rep.FailedModule() != "environment" {
		t.Errorf("FailedModule() = %q", rep.FailedModule())
	}
	if !strings.Contains(rep.Results[1].Diagnostic, "uv sync") {
		t.Errorf("Diagnostic = %q, should name the failing command", rep.Results[1].Diagnostic)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("aborted run must not verify: %v", rep.Warnings)
	}

	// No later module ran: git was never invoked.
	for _, line := range runner.commandLines() {
		if strings.HasPrefix(line, "git") {
			t.Errorf("vcs module ran after abort: %q", line)
		}
	}

	// The partial tree is left in place for inspection.
	if _, err := os.Stat(filepath.Join(spec.TargetDir, "README.md")); err != nil {
		t.Errorf("partial tree was not preserved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(spec.TargetDir, "project.yaml")); err == nil {
		t.Error("templates module output should not exist after an environment abort")
	}
}

func TestRunSmokeFailureIsWarningOnly(t *testing.T) {
	runner := &fakeRunner{failOn: "uv run"}
	spec := testSpec(t, "sample-lib", "demo", "python")

	rep := New(runner).Run(context.Background(), spec)

	if rep.Aborted {
		t.Fatalf("smoke failure must not abort: %+v", rep.Results)
	}
	if len(rep.Results) != 5 {
		t.Fatalf("Results = %+v", rep.Results)
	}
	if len(rep.Warnings) == 0 {
		t.Fatal("expected a smoke warning")
	}
	found := false
	for _, w := range rep.Warnings {
		if strings.Contains(w, "smoke check") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings should mention the smoke check: %v", rep.Warnings)
	}
}

func TestRunGoVariant(t *testing.T) {
	runner := &fakeRunner{}
	spec := testSpec(t, "demo-app", "a go demo", "go")

	rep := New(runner).Run(context.Background(), spec)

	if rep.Aborted {
		t.Fatalf("run aborted: %+v", rep.Results)
	}
	gomod := readTargetFile(t, spec, "go.mod")
	if !strings.Contains(gomod, "module demo-app") {
		t.Errorf("go.mod module path not substituted:\n%s", gomod)
	}
	if _, err := os.Stat(filepath.Join(spec.TargetDir, "main.go")); err != nil {
		t.Errorf("main.go missing: %v", err)
	}

	lines := runner.commandLines()
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "go mod tidy") {
		t.Errorf("go mod tidy not run:\n%s", joined)
	}
	if lines[len(lines)-1] != "go build ./..." {
		t.Errorf("smoke command = %q", lines[len(lines)-1])
	}
}

func TestRunEmitsProgress(t *testing.T) {
	runner := &fakeRunner{}
	spec := testSpec(t, "sample-lib", "demo", "python")
	var out bytes.Buffer

	New(runner, WithOutput(&out)).Run(context.Background(), spec)

	if !strings.Contains(out.String(), "$ uv venv") {
		t.Errorf("progress output missing command echo:\n%s", out.String())
	}
}

func TestRunGitIdentityOverride(t *testing.T) {
	runner := &fakeRunner{}
	spec := testSpec(t, "sample-lib", "demo", "python")

	New(runner, WithGitIdentity("Jo Dev", "jo@example.com")).Run(context.Background(), spec)

	found := false
	for _, line := range runner.commandLines() {
		if strings.Contains(line, "user.name=Jo Dev") && strings.Contains(line, "user.email=jo@example.com") {
			found = true
		}
	}
	if !found {
		t.Errorf("commit identity not applied:\n%s", strings.Join(runner.commandLines(), "\n"))
	}
}
