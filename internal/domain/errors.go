package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrManifestNotFound is returned when no manifest file exists at a location.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrInvalidManifest is returned when a manifest decodes to something other
	// than a mapping of fields.
	ErrInvalidManifest = errors.New("manifest is not an object")
)

// ManifestLoadError is returned when a manifest cannot be obtained or parsed.
type ManifestLoadError struct {
	Location string
	Err      error
}

func (e *ManifestLoadError) Error() string {
	return fmt.Sprintf("loading manifest from %s: %v", e.Location, e.Err)
}

func (e *ManifestLoadError) Unwrap() error { return e.Err }

// RuleEvaluationError identifies the rule that faulted during a scoring pass.
// A single fault aborts the whole pass.
type RuleEvaluationError struct {
	Rule string
	Err  error
}

func (e *RuleEvaluationError) Error() string {
	return fmt.Sprintf("rule %s: %v", e.Rule, e.Err)
}

func (e *RuleEvaluationError) Unwrap() error { return e.Err }
