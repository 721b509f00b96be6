package domain

import "fmt"

// ProjectConfig holds package-level configuration loaded from .pkgkraft.yaml
// or .pkgkraft.toml.
type ProjectConfig struct {
	Skip     []string `yaml:"skip"      toml:"skip"      json:"skip,omitempty"`
	MinScore float64  `yaml:"min_score" toml:"min_score" json:"min_score,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// IsSkipped reports whether the named rule is excluded from the report.
func (c ProjectConfig) IsSkipped(rule string) bool {
	for _, s := range c.Skip {
		if s == rule {
			return true
		}
	}
	return false
}

// Validate checks the config against the set of registered rule keys.
func (c ProjectConfig) Validate(rules []string) error {
	known := make(map[string]bool, len(rules))
	for _, r := range rules {
		known[r] = true
	}

	// 1. skip entries must name registered rules
	seen := make(map[string]bool, len(c.Skip))
	for _, s := range c.Skip {
		if !known[s] {
			return fmt.Errorf("unknown rule %q in skip", s)
		}
		seen[s] = true
	}

	// 2. at least one rule must stay active
	if len(rules) > 0 && len(seen) >= len(rules) {
		return fmt.Errorf("cannot skip all rules (must have at least one active)")
	}

	// 3. min_score is a percentage
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("min_score = %g (must be between 0 and 100)", c.MinScore)
	}

	return nil
}
