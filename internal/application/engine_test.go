package application_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/license"
	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/manifest"
	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/semver"
	"github.com/abdidvp/pkgkraft/internal/application"
	"github.com/abdidvp/pkgkraft/internal/domain"
	"github.com/abdidvp/pkgkraft/internal/domain/scoring"
)

const fixtureDir = "../../testdata/packages"

// failingLoader fails the test if the engine ever consults it.
type failingLoader struct{ t *testing.T }

func (l failingLoader) Load(location string) (*domain.Manifest, error) {
	l.t.Fatalf("loader called for %s despite manifest override", location)
	return nil, nil
}

type errLoader struct{ err error }

func (l errLoader) Load(string) (*domain.Manifest, error) { return nil, l.err }

func newEngine(t *testing.T, fields map[string]any) *application.Engine {
	t.Helper()
	e, err := application.NewEngine("", failingLoader{t}, license.New(), semver.New(),
		application.WithManifest(domain.NewManifest(fields)))
	require.NoError(t, err)
	return e
}

func perfectFields() map[string]any {
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

func TestEngine_PerfectManifest(t *testing.T) {
	report, err := newEngine(t, perfectFields()).Score()
	require.NoError(t, err)

	assert.Equal(t, domain.ScoreResult{Achieved: 26, Maximum: 26}, report.Overall)
	assert.Len(t, report.Scores, 10)
}

func TestEngine_MinimalManifest(t *testing.T) {
	report, err := newEngine(t, map[string]any{"name": "node-foo"}).Score()
	require.NoError(t, err)

	assert.Equal(t, domain.ScoreResult{Achieved: 1, Maximum: 26}, report.Overall)
	assert.Equal(t, 0.0, report.Scores[scoring.RuleNameWithoutNode].Achieved)
	assert.Equal(t, 1.0, report.Scores[scoring.RuleNameWithoutJS].Achieved)
}

func TestEngine_InvalidVersion(t *testing.T) {
	fields := perfectFields()
	fields["version"] = "not-a-version"

	report, err := newEngine(t, fields).Score()
	require.NoError(t, err)
	assert.Equal(t, domain.ScoreResult{Achieved: 0, Maximum: 6}, report.Scores[scoring.RuleValidSemver])
	assert.Equal(t, domain.ScoreResult{Achieved: 0, Maximum: 3}, report.Scores[scoring.RuleSemverWithBaseValue])
	assert.Equal(t, 17.0, report.Overall.Achieved)
}

func TestEngine_LicenseTiers(t *testing.T) {
	tests := []struct {
		license string
		want    float64
	}{
		{"MIT", 4},
		{"WTFPL", 3},
		{"made-up-license-xyz", 0},
		{"MIT+", 0},
		{"Apache-2.0+", 0},
		{"GPL-2.0+", 4},
	}
	for _, tt := range tests {
		fields := perfectFields()
		fields["license"] = tt.license
		report, err := newEngine(t, fields).Score()
		require.NoError(t, err)
		assert.Equal(t, tt.want, report.Scores[scoring.RuleSPDXLicense].Achieved, tt.license)
	}
}

func TestEngine_BareStringAuthor(t *testing.T) {
	fields := perfectFields()
	fields["author"] = "Jane Doe"

	report, err := newEngine(t, fields).Score()
	require.NoError(t, err)
	assert.Equal(t, domain.ScoreResult{Achieved: 0, Maximum: 1}, report.Scores[scoring.RuleHasAuthor])
}

func TestEngine_ScoreIsIdempotent(t *testing.T) {
	e := newEngine(t, perfectFields())
	first, err := e.Score()
	require.NoError(t, err)
	second, err := e.Score()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEngine_OverrideIsNotAffectedByCallerMutation(t *testing.T) {
	fields := perfectFields()
	e := newEngine(t, fields)
	fields["version"] = "nope"

	report, err := e.Score()
	require.NoError(t, err)
	assert.Equal(t, 26.0, report.Overall.Achieved)
}

func TestEngine_MissingNameAborts(t *testing.T) {
	fields := perfectFields()
	delete(fields, "name")

	report, err := newEngine(t, fields).Score()
	assert.Nil(t, report)

	var ruleErr *domain.RuleEvaluationError
	require.ErrorAs(t, err, &ruleErr)
	assert.Contains(t, []string{scoring.RuleNameWithoutJS, scoring.RuleNameWithoutNode}, ruleErr.Rule)
}

func TestEngine_LoadsFromLocation(t *testing.T) {
	e, err := application.NewEngine(fixtureDir+"/perfect", manifest.New(), license.New(), semver.New())
	require.NoError(t, err)
	assert.Equal(t, "foo", e.Manifest().Name())

	report, err := e.Score()
	require.NoError(t, err)
	assert.Equal(t, 26.0, report.Overall.Achieved)
}

func TestEngine_LoadFailures(t *testing.T) {
	tests := []struct {
		name     string
		location string
		loader   domain.ManifestLoader
		sentinel error
	}{
		{"missing", fixtureDir + "/does-not-exist", manifest.New(), domain.ErrManifestNotFound},
		{"broken", fixtureDir + "/broken", manifest.New(), nil},
		{"plain loader error", "anywhere", errLoader{errors.New("disk on fire")}, nil},
		{"no loader", "anywhere", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := application.NewEngine(tt.location, tt.loader, license.New(), semver.New())
			var loadErr *domain.ManifestLoadError
			require.ErrorAs(t, err, &loadErr)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestEngine_RequiresOracles(t *testing.T) {
	m := application.WithManifest(domain.NewManifest(perfectFields()))

	_, err := application.NewEngine("", nil, nil, semver.New(), m)
	assert.Error(t, err)
	_, err = application.NewEngine("", nil, license.New(), nil, m)
	assert.Error(t, err)
}

func TestEngine_CustomRegistry(t *testing.T) {
	reg := scoring.NewRegistry()
	reg.MustRegister(scoring.Rule{
		Name: "has_private_flag",
		Max:  2,
		Eval: func(in scoring.Input) (float64, error) {
			if in.Manifest.Truthy("private") {
				return 2, nil
			}
			return 0, nil
		},
	})

	e, err := application.NewEngine("", nil, license.New(), semver.New(),
		application.WithManifest(domain.NewManifest(map[string]any{"private": true})),
		application.WithRegistry(reg))
	require.NoError(t, err)

	report, err := e.Score()
	require.NoError(t, err)
	assert.Equal(t, domain.ScoreResult{Achieved: 2, Maximum: 2}, report.Overall)
	assert.Equal(t, []string{"has_private_flag"}, report.Keys())
}
