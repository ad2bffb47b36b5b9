package template

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/kickoff-dev/kickoff/internal/branding"
	"github.com/kickoff-dev/kickoff/internal/project"
)

// Context maps template variable names to their substitution values. It is
// built once per render call and discarded afterwards.
type Context map[string]string

// FromSpec builds the standard context for a scaffold run: every Spec field
// plus the derived values templates commonly need.
func FromSpec(spec project.Spec) Context {
	return Context{
		"name":         spec.Name,
		"package":      spec.PackageName,
		"display_name": spec.DisplayName,
		"description":  spec.Description,
		"variant":      spec.Variant.ID,
		"version":      spec.Version,
		"module":       spec.ModulePath,
		"year":         fmt.Sprintf("%d", time.Now().Year()),
		"generated_by": branding.CLIName(),
	}
}

var tokenPattern = regexp.MustCompile(`\$\{([a-z][a-z0-9_]*)\}`)

// Render substitutes ${name} tokens in a single pass over body. Substituted
// values are never rescanned, so a value containing token syntax is emitted
// verbatim. Any token without a context entry is a hard error listing every
// missing name; templates are never allowed to ship literal token text.
func Render(body string, ctx Context) (string, error) {
	missing := map[string]bool{}
	out := tokenPattern.ReplaceAllStringFunc(body, func(tok string) string {
		key := tok[2 : len(tok)-1]
		val, ok := ctx[key]
		if !ok {
			missing[key] = true
			return tok
		}
		return val
	})
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for k := range missing {
			names = append(names, k)
		}
		sort.Strings(names)
		return "", &project.ValidationError{
			Kind:   project.KindUnresolvedVariable,
			Detail: fmt.Sprintf("unresolved template variable(s): %s", strings.Join(names, ", ")),
		}
	}
	return out, nil
}
