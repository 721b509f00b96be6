package application

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/abdidvp/pkgkraft/internal/domain"
	"github.com/abdidvp/pkgkraft/internal/domain/scoring"
)

// Engine scores one package manifest against a rule registry.
// The manifest is bound at construction; rules are enumerated on every Score call.
type Engine struct {
	location string
	manifest *domain.Manifest
	licenses domain.LicenseOracle
	versions domain.SemverOracle
	registry *scoring.Registry
	logger   *log.Logger
}

// EngineOption customizes an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	manifest *domain.Manifest
	registry *scoring.Registry
	logger   *log.Logger
}

// WithManifest binds m directly. The loader is never consulted.
func WithManifest(m *domain.Manifest) EngineOption {
	return func(o *engineOptions) { o.manifest = m }
}

// WithRegistry replaces the built-in rule set.
func WithRegistry(r *scoring.Registry) EngineOption {
	return func(o *engineOptions) { o.registry = r }
}

func WithLogger(l *log.Logger) EngineOption {
	return func(o *engineOptions) { o.logger = l }
}

// NewEngine binds the manifest at location (or the WithManifest override) to
// the given oracles. Load failures are returned as *domain.ManifestLoadError.
func NewEngine(
	location string,
	loader domain.ManifestLoader,
	licenses domain.LicenseOracle,
	versions domain.SemverOracle,
	opts ...EngineOption,
) (*Engine, error) {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	if licenses == nil {
		return nil, errors.New("license oracle is required")
	}
	if versions == nil {
		return nil, errors.New("semver oracle is required")
	}

	logger := o.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := o.manifest
	if m == nil {
		var err error
		if m, err = loadManifest(location, loader); err != nil {
			return nil, err
		}
		logger.Debug("manifest loaded", "location", location, "name", m.Name())
	}

	registry := o.registry
	if registry == nil {
		registry = scoring.Default()
	}

	return &Engine{
		location: location,
		manifest: m,
		licenses: licenses,
		versions: versions,
		registry: registry,
		logger:   logger,
	}, nil
}

func loadManifest(location string, loader domain.ManifestLoader) (*domain.Manifest, error) {
	if loader == nil {
		return nil, &domain.ManifestLoadError{Location: location, Err: errors.New("no manifest loader configured")}
	}

	m, err := loader.Load(location)
	if err != nil {
		var loadErr *domain.ManifestLoadError
		if errors.As(err, &loadErr) {
			return nil, err
		}
		return nil, &domain.ManifestLoadError{Location: location, Err: err}
	}
	if m == nil {
		return nil, &domain.ManifestLoadError{Location: location, Err: domain.ErrInvalidManifest}
	}
	return m, nil
}

// Score runs every registered rule and aggregates the results. A rule fault
// aborts the pass with a *domain.RuleEvaluationError.
func (e *Engine) Score() (*domain.Report, error) {
	in := scoring.Input{
		Manifest: e.manifest,
		Licenses: e.licenses,
		Versions: e.versions,
	}

	report, err := scoring.Evaluate(e.registry, in, func(rule string, res domain.ScoreResult) {
		e.logger.Debug("rule evaluated", "rule", rule, "score", res.Achieved, "total", res.Maximum)
	})
	if err != nil {
		e.logger.Error("scoring aborted", "location", e.location, "err", err)
		return nil, fmt.Errorf("scoring %s: %w", e.describe(), err)
	}

	e.logger.Debug("scoring complete", "location", e.location,
		"score", report.Overall.Achieved, "total", report.Overall.Maximum)
	return report, nil
}

// Manifest returns the bound manifest.
func (e *Engine) Manifest() *domain.Manifest { return e.manifest }

func (e *Engine) describe() string {
	if name := e.manifest.Name(); name != "" {
		return name
	}
	if e.location != "" {
		return e.location
	}
	return "manifest"
}
