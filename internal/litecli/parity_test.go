package litecli

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/kickoff-dev/kickoff/internal/cli"
	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/scaffold"
	"github.com/kickoff-dev/kickoff/internal/toolchain"
)

// Both drivers must map the same argv to the same parameters; everything past
// parsing is shared code, so parameter parity implies behavioral parity.
func TestParserParity(t *testing.T) {
	valid := [][]string{
		{"sample-lib"},
		{"sample-lib", "--description", "demo"},
		{"--description", "demo", "sample-lib"},
		{"sample-lib", "--variant", "go"},
		{"sample-lib", "--description", "demo", "--variant", "node"},
		{"my_tool-2", "--variant", "python"},
	}
	for _, argv := range valid {
		primary, err := cli.ParseArgs(argv)
		if err != nil {
			t.Errorf("primary ParseArgs(%v) error: %v", argv, err)
			continue
		}
		lite, err := ParseArgs(argv)
		if err != nil {
			t.Errorf("lite ParseArgs(%v) error: %v", argv, err)
			continue
		}
		if primary != lite {
			t.Errorf("ParseArgs(%v): primary = %+v, lite = %+v", argv, primary, lite)
		}
	}

	invalid := [][]string{
		{},
		{"one", "two"},
		{"sample-lib", "--unknown"},
	}
	for _, argv := range invalid {
		if _, err := cli.ParseArgs(argv); err == nil {
			t.Errorf("primary ParseArgs(%v) should fail", argv)
		}
		if _, err := ParseArgs(argv); err == nil {
			t.Errorf("lite ParseArgs(%v) should fail", argv)
		}
	}
}

func TestUsageVariantsMatchesRegistry(t *testing.T) {
	if got := usageVariants(); got != "python, go, node" {
		t.Errorf("usageVariants() = %q", got)
	}
}

type stubProber struct{}

func (stubProber) LookPath(tool string) (string, error) { return "/usr/bin/" + tool, nil }

func (stubProber) ToolVersion(context.Context, string, []string) (string, error) {
	return "99.0.0", nil
}

type stubRunner struct{}

func (stubRunner) Run(context.Context, string, []string, toolchain.Options) (toolchain.Result, error) {
	return toolchain.Result{}, nil
}

// buildTree scaffolds a project from params into a fresh directory and
// returns every file as a relative-path -> content map.
func buildTree(t *testing.T, params project.Params) map[string]string {
	t.Helper()
	params.ParentDir = t.TempDir()

	spec, err := project.Resolve(context.Background(), params, stubProber{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	rep := scaffold.New(stubRunner{}).Run(context.Background(), spec)
	if rep.Aborted {
		t.Fatalf("run aborted: %+v", rep.Results)
	}

	tree := map[string]string{}
	err = filepath.WalkDir(spec.TargetDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, relErr := filepath.Rel(spec.TargetDir, path)
		if relErr != nil {
			return relErr
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walking tree: %v", err)
	}
	return tree
}

// The same argv through either driver must yield byte-identical trees.
func TestDriversProduceIdenticalTrees(t *testing.T) {
	for _, argv := range [][]string{
		{"sample-lib", "--description", "demo", "--variant", "python"},
		{"demo-app", "--variant", "go"},
		{"web-thing", "--variant", "node"},
	} {
		primaryParams, err := cli.ParseArgs(argv)
		if err != nil {
			t.Fatalf("primary ParseArgs(%v) error: %v", argv, err)
		}
		liteParams, err := ParseArgs(argv)
		if err != nil {
			t.Fatalf("lite ParseArgs(%v) error: %v", argv, err)
		}

		primaryTree := buildTree(t, primaryParams)
		liteTree := buildTree(t, liteParams)

		if len(primaryTree) == 0 {
			t.Fatalf("%v produced an empty tree", argv)
		}
		for rel, content := range primaryTree {
			other, ok := liteTree[rel]
			if !ok {
				t.Errorf("%v: %s missing from lite tree", argv, rel)
				continue
			}
			if other != content {
				t.Errorf("%v: %s differs between drivers", argv, rel)
			}
		}
		for rel := range liteTree {
			if _, ok := primaryTree[rel]; !ok {
				t.Errorf("%v: %s only in lite tree", argv, rel)
			}
		}
	}
}
