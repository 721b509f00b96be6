package scoring_test

import (
	"errors"
	"strings"

	"github.com/abdidvp/pkgkraft/internal/domain"
	"github.com/abdidvp/pkgkraft/internal/domain/scoring"
)

// fakeLicenses knows a handful of identifiers; OSI approval is per entry.
type fakeLicenses map[string]bool

func (f fakeLicenses) Lookup(id string) (domain.LicenseInfo, bool) {
	osi, ok := f[id]
	if !ok {
		return domain.LicenseInfo{}, false
	}
	return domain.LicenseInfo{ID: id, OSIApproved: osi}, true
}

var licenses = fakeLicenses{"MIT": true, "ISC": true, "WTFPL": false}

// fakeVersions accepts plain x.y.z versions and only understands ">=1.0.0".
type fakeVersions struct {
	satisfyErr error
}

func (f fakeVersions) Valid(v string) bool {
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" || strings.Trim(p, "0123456789") != "" {
			return false
		}
	}
	return true
}

func (f fakeVersions) Satisfies(v, c string) (bool, error) {
	if f.satisfyErr != nil {
		return false, f.satisfyErr
	}
	if c != ">=1.0.0" {
		return false, errors.New("unsupported constraint")
	}
	return !strings.HasPrefix(v, "0."), nil
}

func input(fields map[string]any) scoring.Input {
	return scoring.Input{
		Manifest: domain.NewManifest(fields),
		Licenses: licenses,
		Versions: fakeVersions{},
	}
}

func perfectManifest() map[string]any {
	return map[string]any{
		"name":        "foo",
		"version":     "1.2.3",
		"license":     "MIT",
		"description": "A sufficiently long description exceeding thirty chars",
		"repository":  map[string]any{"type": "git", "url": "x"},
		"keywords":    []any{"a", "b", "c"},
		"author":      map[string]any{"name": "Jane Doe"},
		"scripts":     map[string]any{"test": "run-tests"},
	}
}
