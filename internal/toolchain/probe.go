package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Prober answers the validator's two read-only questions about the host:
// is a tool on PATH, and which version does it report.
type Prober interface {
	LookPath(tool string) (string, error)
	ToolVersion(ctx context.Context, tool string, args []string) (string, error)
}

// ExecProber is the production Prober: exec.LookPath plus a real version
// invocation through a Runner.
type ExecProber struct {
	Runner Runner
}

// NewExecProber creates a Prober backed by the real command runner.
func NewExecProber() *ExecProber {
	return &ExecProber{Runner: NewExecRunner()}
}

// LookPath reports the absolute path of tool, or an error if absent.
func (p *ExecProber) LookPath(tool string) (string, error) {
	return exec.LookPath(tool)
}

// ToolVersion runs `<tool> <args...>` and extracts the reported version.
func (p *ExecProber) ToolVersion(ctx context.Context, tool string, args []string) (string, error) {
	res, err := p.Runner.Run(ctx, tool, args, Options{})
	if err != nil {
		return "", fmt.Errorf("running %s %s: %w", tool, strings.Join(args, " "), err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("%s %s exited with status %d", tool, strings.Join(args, " "), res.ExitCode)
	}
	out := res.Stdout
	if strings.TrimSpace(out) == "" {
		out = res.Stderr
	}
	return ExtractVersion(out)
}

var versionToken = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ExtractVersion pulls the first version-looking token out of a tool's
// version banner (e.g. "git version 2.39.2", "go version go1.22.1 linux/amd64",
// "uv 0.4.18").
func ExtractVersion(banner string) (string, error) {
	tok := versionToken.FindString(banner)
	if tok == "" {
		return "", fmt.Errorf("no version found in %q", strings.TrimSpace(banner))
	}
	return tok, nil
}

// CheckConstraint verifies that version satisfies a semver range such as
// ">= 2.0.0". A leading "v" on the version is tolerated.
func CheckConstraint(version, constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("version %s does not satisfy %q", v, constraint)
	}
	return nil
}
