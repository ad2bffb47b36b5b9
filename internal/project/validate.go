package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kickoff-dev/kickoff/internal/toolchain"
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag, which is constant here.
	_ = v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	return v
}

// Resolve validates raw parameters and builds the immutable Spec. It performs
// read-only filesystem and PATH probes but never writes anything, so a failed
// resolution leaves the host untouched. Same inputs plus same host state
// always produce the same result.
func Resolve(ctx context.Context, p Params, prober toolchain.Prober) (Spec, error) {
	if err := validate.Var(p.Name, "required,projectname"); err != nil {
		return Spec{}, &ValidationError{
			Kind:   KindInvalidName,
			Detail: fmt.Sprintf("project name %q must match %s", p.Name, namePattern),
		}
	}

	variantID := p.Variant
	if variantID == "" {
		variantID = DefaultVariantID()
	}
	variant, ok := LookupVariant(variantID)
	if !ok {
		return Spec{}, &ValidationError{
			Kind:   KindUnknownVariant,
			Detail: fmt.Sprintf("unknown variant %q (supported: %s)", variantID, strings.Join(VariantIDs(), ", ")),
		}
	}

	parent := p.ParentDir
	if parent == "" {
		parent = "."
	}
	target := filepath.Join(parent, p.Name)
	if _, err := os.Stat(target); err == nil {
		return Spec{}, &ValidationError{
			Kind:   KindDirectoryExists,
			Detail: fmt.Sprintf("target directory %s already exists", target),
		}
	}

	for _, tool := range []Tool{Git, variant.Tool} {
		if err := checkTool(ctx, prober, tool); err != nil {
			return Spec{}, err
		}
	}

	description := p.Description
	if description == "" {
		description = DefaultDescription
	}

	return Spec{
		Name:        p.Name,
		Description: description,
		Variant:     variant,
		TargetDir:   target,
		PackageName: packageSafe(p.Name),
		DisplayName: displayName(p.Name),
		ModulePath:  p.Name,
		Version:     InitialVersion,
	}, nil
}

// checkTool verifies a toolchain binary is discoverable and recent enough.
// Both failure modes surface as MissingPrerequisite naming the tool, since
// from the user's point of view the remedy is the same: install or upgrade.
func checkTool(ctx context.Context, prober toolchain.Prober, tool Tool) error {
	if _, err := prober.LookPath(tool.Name); err != nil {
		return &ValidationError{
			Kind:   KindMissingPrerequisite,
			Detail: fmt.Sprintf("required tool %q not found on PATH", tool.Name),
		}
	}

	version, err := prober.ToolVersion(ctx, tool.Name, tool.VersionArgs)
	if err != nil {
		return &ValidationError{
			Kind:   KindMissingPrerequisite,
			Detail: fmt.Sprintf("could not determine %q version: %v", tool.Name, err),
		}
	}
	if err := toolchain.CheckConstraint(version, tool.Constraint); err != nil {
		return &ValidationError{
			Kind:   KindMissingPrerequisite,
			Detail: fmt.Sprintf("tool %q: %v", tool.Name, err),
		}
	}
	return nil
}
