package content

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SchemaConstraint is the range of catalog versions this build understands.
// Bump the upper bound only together with a parser change.
const SchemaConstraint = ">= 1.0.0, < 2.0.0"

// CheckVersion returns an error when v is not a catalog version this build can read.
func CheckVersion(v string) error {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" {
		return fmt.Errorf("catalog version missing (want %s)", SchemaConstraint)
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("catalog version %q: %w", v, err)
	}
	c, err := semver.NewConstraint(SchemaConstraint)
	if err != nil {
		return err
	}
	if !c.Check(ver) {
		return fmt.Errorf("catalog version %s not supported (want %s)", ver, SchemaConstraint)
	}
	return nil
}
