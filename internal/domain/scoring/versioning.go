package scoring

import "fmt"

const (
	RuleValidSemver         = "package_has_valid_semver"
	RuleSemverWithBaseValue = "package_has_valid_semver_with_base_value"
	baseVersionConstraint   = ">=1.0.0"
)

func scoreValidSemver(in Input) (float64, error) {
	version, ok := in.Manifest.String("version")
	if !ok || version == "" || !in.Versions.Valid(version) {
		return 0, nil
	}
	return 6, nil
}

// scoreSemverWithBaseValue rewards packages that have left the 0.x series.
func scoreSemverWithBaseValue(in Input) (float64, error) {
	version, ok := in.Manifest.String("version")
	if !ok || version == "" || !in.Versions.Valid(version) {
		return 0, nil
	}

	satisfied, err := in.Versions.Satisfies(version, baseVersionConstraint)
	if err != nil {
		return 0, fmt.Errorf("checking %q against %s: %w", version, baseVersionConstraint, err)
	}
	if !satisfied {
		return 0, nil
	}
	return 3, nil
}
