package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/kickoff-dev/kickoff/internal/branding"
	"github.com/kickoff-dev/kickoff/internal/config"
	"github.com/kickoff-dev/kickoff/internal/project"
	"github.com/kickoff-dev/kickoff/internal/render"
	"github.com/kickoff-dev/kickoff/internal/scaffold"
	"github.com/kickoff-dev/kickoff/internal/toolchain"
)

// Execute runs the primary driver with build info injected via ldflags.
func Execute(version, commit, date string) error {
	cmd := newRootCmd(os.Stdout)
	cmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	return cmd.Execute()
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		description string
		variant     string
	)

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <name>",
		Short: branding.Description(),
		Long: strings.TrimSpace(dedent.Dedent(`
			` + branding.DisplayName() + ` scaffolds a complete, ready-to-use project directory:
			source layout, dependency manifest, quality-tooling configuration, an
			initialized git repository, and the workflow documents that drive
			collaboration on the new project.

			The project name must start with a lowercase letter and may contain
			lowercase letters, digits, hyphens, and underscores.
		`)),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			params := withConfigDefaults(project.Params{
				Name:        args[0],
				Description: description,
				Variant:     variant,
			})
			return runScaffold(cmd.Context(), params, out)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Project description (defaults from config, then a fixed fallback)")
	cmd.Flags().StringVar(&variant, "variant", "", "Project variant: "+strings.Join(project.VariantIDs(), ", "))
	return cmd
}

// ParseArgs parses an argv vector the way the root command would, without
// executing anything. The parity suite compares this against the lite
// driver's parser.
func ParseArgs(args []string) (project.Params, error) {
	cmd := newRootCmd(io.Discard)
	if err := cmd.ParseFlags(args); err != nil {
		return project.Params{}, err
	}
	rest := cmd.Flags().Args()
	if len(rest) != 1 {
		return project.Params{}, fmt.Errorf("expected exactly one project name argument, got %d", len(rest))
	}
	description, _ := cmd.Flags().GetString("description")
	variant, _ := cmd.Flags().GetString("variant")
	return project.Params{Name: rest[0], Description: description, Variant: variant}, nil
}

// withConfigDefaults fills unset parameters from the user config.
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
