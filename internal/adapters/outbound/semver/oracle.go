package semver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
)

// Oracle implements domain.SemverOracle with Masterminds/semver.
// Versions are parsed strictly (major.minor.patch required); surrounding
// whitespace and a single leading "v" are tolerated the way npm tolerates them.
// maxSafeComponent is the largest version number npm accepts (2^53-1).
const maxSafeComponent = 1<<53 - 1

type Oracle struct {
	constraints sync.Map // string -> *semver.Constraints
}

func New() *Oracle { return &Oracle{} }

// Valid reports whether version is a syntactically valid semantic version.
func (o *Oracle) Valid(version string) bool {
	_, err := parse(version)
	return err == nil
}

// Satisfies reports whether version falls inside constraint, e.g. ">=1.0.0".
// Prereleases only satisfy constraints that mention a prerelease.
func (o *Oracle) Satisfies(version, constraint string) (bool, error) {
	v, err := parse(version)
	if err != nil {
		return false, err
	}
	c, err := o.constraint(constraint)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}

func (o *Oracle) constraint(expr string) (*semver.Constraints, error) {
	if c, ok := o.constraints.Load(expr); ok {
		return c.(*semver.Constraints), nil
	}
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing constraint %q: %w", expr, err)
	}
	actual, _ := o.constraints.LoadOrStore(expr, c)
	return actual.(*semver.Constraints), nil
}

func parse(version string) (*semver.Version, error) {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	sv, err := semver.StrictNewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", version, err)
	}
	if sv.Major() > maxSafeComponent || sv.Minor() > maxSafeComponent || sv.Patch() > maxSafeComponent {
		return nil, fmt.Errorf("invalid version %q: component exceeds %d", version, uint64(maxSafeComponent))
	}
	return sv, nil
}
