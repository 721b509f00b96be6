package application

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/abdidvp/pkgkraft/internal/domain"
	"github.com/abdidvp/pkgkraft/internal/domain/scoring"
)

// ScoreService orchestrates the scoring pipeline:
// load config → bind manifest → run rules → apply config → annotate.
type ScoreService struct {
	loader       domain.ManifestLoader
	licenses     domain.LicenseOracle
	versions     domain.SemverOracle
	configLoader domain.ConfigLoader
	registry     *scoring.Registry
	logger       *log.Logger
}

func NewScoreService(
	loader domain.ManifestLoader,
	licenses domain.LicenseOracle,
	versions domain.SemverOracle,
	configLoader domain.ConfigLoader,
) *ScoreService {
	return &ScoreService{
		loader:       loader,
		licenses:     licenses,
		versions:     versions,
		configLoader: configLoader,
		registry:     scoring.Default(),
		logger:       log.New(io.Discard),
	}
}

// WithLogger sets the logger handed to every engine the service creates.
func (s *ScoreService) WithLogger(l *log.Logger) *ScoreService {
	if l != nil {
		s.logger = l
	}
	return s
}

// Registry returns the rules the service scores with.
func (s *ScoreService) Registry() *scoring.Registry { return s.registry }

// ScorePackage scores the package rooted at packagePath.
func (s *ScoreService) ScorePackage(packagePath string) (*domain.Report, error) {
	// 0. Load config
	cfg, err := s.configLoader.Load(packagePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(s.registry.Names()); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// 1. Bind manifest
	engine, err := NewEngine(packagePath, s.loader, s.licenses, s.versions,
		WithRegistry(s.registry), WithLogger(s.logger))
	if err != nil {
		return nil, err
	}

	// 2. Run rules
	report, err := engine.Score()
	if err != nil {
		return nil, err
	}

	// 3. Apply config, annotate
	report = ApplyConfig(report, cfg)
	Annotate(report, engine.Manifest())
	return report, nil
}

// Annotate copies identifying manifest fields onto report.
func Annotate(report *domain.Report, m *domain.Manifest) {
	report.Package = m.Name()
	report.Version = m.Version()
	report.PURL = domain.PackageURL(m)
}

// ApplyConfig returns a copy of report without the rules cfg skips. Overall
// is recomputed so it remains the sum of the remaining scores.
func ApplyConfig(report *domain.Report, cfg domain.ProjectConfig) *domain.Report {
	out := domain.NewReport()
	out.Package = report.Package
	out.Version = report.Version
	out.PURL = report.PURL
	out.CommitHash = report.CommitHash

	for _, key := range report.Keys() {
		if cfg.IsSkipped(key) {
			out.Skipped = append(out.Skipped, key)
			continue
		}
		out.Add(key, report.Scores[key])
	}
	sort.Strings(out.Skipped)
	return out
}
