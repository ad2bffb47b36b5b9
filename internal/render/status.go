package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ddddddO/gtree"

	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/scaffold"
)

// Report writes the terminal status for one orchestration run. Both drivers
// call this with the same data, so their output is identical for equivalent
// inputs.
func Report(w io.Writer, spec project.Spec, rep *scaffold.Report) {
	for _, r := range rep.Results {
		status := " OK "
		if !r.Succeeded {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  [%s] %s\n", status, r.ModuleID)
		if !r.Succeeded {
			fmt.Fprintf(w, "         %s\n", r.Diagnostic)
		}
	}

	if rep.Aborted {
		fmt.Fprintf(w, "\nScaffold aborted: module %q failed.\n", rep.FailedModule())
		fmt.Fprintf(w, "Partial tree left at %s for inspection.\n", spec.TargetDir)
		return
	}

	if len(rep.Warnings) > 0 {
		fmt.Fprintln(w, "\nVerification warnings:")
		for _, warning := range rep.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	fmt.Fprintln(w)
	if err := FileTree(w, spec.Name, rep.Files); err != nil {
		// Fall back to a flat listing; the tree is presentation only.
		for _, f := range rep.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}

	fmt.Fprintf(w, "\nCreated %s project %q at %s\n", spec.Variant.ID, spec.Name, spec.TargetDir)
	if len(rep.Warnings) > 0 {
		fmt.Fprintln(w, "Verification reported warnings; the tree may need attention before first use.")
	}
}

// FileTree renders the created files as a tree rooted at the project name.
func FileTree(w io.Writer, rootName string, files []string) error {
	root := gtree.NewRoot(rootName)
	addPaths(root, buildPathTree(files))
	return gtree.OutputProgrammably(w, root)
}

// pathNode is an intermediate representation so duplicate directory segments
// collapse into one gtree node.
type pathNode struct {
	children map[string]*pathNode
}

func buildPathTree(files []string) *pathNode {
	root := &pathNode{children: map[string]*pathNode{}}
	for _, f := range files {
		node := root
		for _, part := range strings.Split(f, "/") {
			child, ok := node.children[part]
			if !ok {
				child = &pathNode{children: map[string]*pathNode{}}
				node.children[part] = child
			}
			node = child
		}
	}
	return root
}

func addPaths(dst *gtree.Node, src *pathNode) {
	names := make([]string, 0, len(src.children))
	for name := range src.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		addPaths(dst.Add(name), src.children[name])
	}
}
