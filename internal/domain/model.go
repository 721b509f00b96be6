package domain

import (
	"encoding/json"
	"math"
	"sort"
)

// ScoreResult is the outcome of a single rule: points achieved out of a fixed maximum.
type ScoreResult struct {
	Achieved float64
	Maximum  float64
}

// Percent returns Achieved as a whole-number percentage of Maximum.
func (r ScoreResult) Percent() int {
	if r.Maximum <= 0 {
		return 0
	}
	return int(math.Round(r.Achieved / r.Maximum * 100))
}

// Ratio returns Achieved as an unrounded percentage of Maximum. Thresholds
// compare against this; Percent is for display.
func (r ScoreResult) Ratio() float64 {
	if r.Maximum <= 0 {
		return 0
	}
	return r.Achieved / r.Maximum * 100
}

// Full reports whether the rule earned every available point.
func (r ScoreResult) Full() bool { return r.Achieved == r.Maximum }

type scoreResultJSON struct {
	Score float64 `json:"score"`
	Total float64 `json:"total"`
}

func (r ScoreResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(scoreResultJSON{Score: r.Achieved, Total: r.Maximum})
}

func (r *ScoreResult) UnmarshalJSON(data []byte) error {
	var raw scoreResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Achieved, r.Maximum = raw.Score, raw.Total
	return nil
}

// Report is the result of one scoring pass over a manifest.
// Overall is always the sum of every entry in Scores.
type Report struct {
	Overall ScoreResult            `json:"overall"`
	Scores  map[string]ScoreResult `json:"scores"`

	// Set by outer layers, never by the scoring pass itself.
	Package    string   `json:"package,omitempty"`
	Version    string   `json:"version,omitempty"`
	PURL       string   `json:"purl,omitempty"`
	CommitHash string   `json:"commit_hash,omitempty"`
	Skipped    []string `json:"skipped,omitempty"`
}

// NewReport returns an empty report ready to accumulate rule results.
func NewReport() *Report {
	return &Report{Scores: make(map[string]ScoreResult)}
}

// Add records a rule result and folds it into Overall.
func (r *Report) Add(rule string, res ScoreResult) {
	r.Scores[rule] = res
	r.Overall.Achieved += res.Achieved
	r.Overall.Maximum += res.Maximum
}

// Keys returns the rule keys in lexical order.
func (r *Report) Keys() []string {
	keys := make([]string, 0, len(r.Scores))
	for k := range r.Scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Report) Grade() string { return GradeFor(r.Overall.Percent()) }

// PackageReport pairs a report with the package directory it was produced for.
type PackageReport struct {
	Path   string  `json:"path"`
	Report *Report `json:"report"`
}

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}
