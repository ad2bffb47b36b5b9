package litecli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kickoff-dev/kickoff/internal/branding"
	"github.com/kickoff-dev/kickoff/internal/config"
	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/render"
	"github.com/kickoff-dev/kickoff/internal/scaffold"
	"github.com/kickoff-dev/kickoff/internal/toolchain"
)

// arguments is the kong grammar for the lite driver. It mirrors the primary
// driver's surface: one positional name, --description, --variant.
type arguments struct {
	Name        string           `arg:"" help:"Project name (lowercase letter first; lowercase letters, digits, '-' and '_')."`
	Description string           `help:"Project description (defaults from config, then a fixed fallback)."`
	Variant     string           `help:"Project variant: ${variants}."`
	Version     kong.VersionFlag `help:"Print version and exit."`
}

// Run parses os.Args and performs one scaffold run. kong handles --help and
// usage errors itself (printing and exiting), so Run only returns errors from
// validation or orchestration.
func Run(version string) error {
	var args arguments
	kong.Parse(&args,
		kong.Name(branding.LiteCLIName()),
		kong.Description(branding.Description()),
		kong.Vars{"version": version, "variants": usageVariants()},
	)

	config.Load()
	params := withConfigDefaults(project.Params{
		Name:        args.Name,
		Description: args.Description,
		Variant:     args.Variant,
	})
	return runScaffold(context.Background(), params, os.Stdout)
}

// ParseArgs parses an argv vector without executing anything, for the parity
// suite.
func ParseArgs(argv []string) (project.Params, error) {
	var args arguments
	parser, err := kong.New(&args,
		kong.Name(branding.LiteCLIName()),
		kong.Description(branding.Description()),
		kong.Vars{"version": "dev", "variants": usageVariants()},
	)
	if err != nil {
		return project.Params{}, err
	}
	if _, err := parser.Parse(argv); err != nil {
		return project.Params{}, err
	}
	return project.Params{Name: args.Name, Description: args.Description, Variant: args.Variant}, nil
}

func withConfigDefaults(p project.Params) project.Params {
	if p.Description == "" {
		p.Description = config.Get(config.KeyDefaultDescription)
	}
	if p.Variant == "" {
		p.Variant = config.Get(config.KeyDefaultVariant)
	}
	return p
}

func runScaffold(ctx context.Context, params project.Params, out io.Writer) error {
	spec, err := project.Resolve(ctx, params, toolchain.NewExecProber())
	if err != nil {
		return err
	}

	gitName, gitEmail := config.GitIdentity()
	eng := scaffold.New(toolchain.NewExecRunner(),
		scaffold.WithOutput(out),
		scaffold.WithGitIdentity(gitName, gitEmail),
	)

	report := eng.Run(ctx, spec)
	render.Report(out, spec, report)

	if report.Aborted {
		return fmt.Errorf("scaffold aborted in module %q", report.FailedModule())
	}
	return nil
}

// usageVariants keeps the help text in sync with the registry.
func usageVariants() string {
	return strings.Join(project.VariantIDs(), ", ")
}
