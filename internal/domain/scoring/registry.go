package scoring

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/abdidvp/pkgkraft/internal/domain"
)

// Input is everything a rule may read: the bound manifest and the oracles it
// resolves licenses and versions against.
type Input struct {
	Manifest *domain.Manifest
	Licenses domain.LicenseOracle
	Versions domain.SemverOracle
}

// Rule is a named, stateless check over a manifest. Eval returns the points
// achieved, which must lie in [0, Max].
type Rule struct {
	Name        string
	Max         float64
	Description string
	Eval        func(in Input) (float64, error)
}

// Run evaluates the rule and turns any fault into a RuleEvaluationError.
// Panics raised by Eval are recovered and reported the same way.
func (r Rule) Run(in Input) (res domain.ScoreResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &domain.RuleEvaluationError{Rule: r.Name, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	achieved, err := r.Eval(in)
	if err != nil {
		return domain.ScoreResult{}, &domain.RuleEvaluationError{Rule: r.Name, Err: err}
	}
	if achieved < 0 || achieved > r.Max || achieved != achieved {
		return domain.ScoreResult{}, &domain.RuleEvaluationError{
			Rule: r.Name,
			Err:  fmt.Errorf("achieved %g outside [0, %g]", achieved, r.Max),
		}
	}
	return domain.ScoreResult{Achieved: achieved, Maximum: r.Max}, nil
}

// Registry is the enumerable table of rules a scoring pass runs.
// Registering a rule is the only step needed to include it in every report.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule. Names must be unique and maxima positive.
func (r *Registry) Register(rule Rule) error {
	switch {
	case rule.Name == "":
		return errors.New("rule name must not be empty")
	case rule.Max <= 0:
		return fmt.Errorf("rule %s: maximum must be positive, got %g", rule.Name, rule.Max)
	case rule.Eval == nil:
		return fmt.Errorf("rule %s: missing Eval", rule.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rules[rule.Name]; exists {
		return fmt.Errorf("rule %s already registered", rule.Name)
	}
	r.rules[rule.Name] = rule
	return nil
}

// MustRegister is Register for static rule tables; it panics on error.
func (r *Registry) MustRegister(rules ...Rule) {
	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the rule registered under name.
func (r *Registry) Lookup(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[name]
	return rule, ok
}

// Rules returns a snapshot of the registered rules sorted by name.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	out := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the registered rule names sorted.
func (r *Registry) Names() []string {
	rules := r.Rules()
	names := make([]string, len(rules))
	for i, rule := range rules {
		names[i] = rule.Name
	}
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// MaxTotal is the highest overall score a manifest can reach.
func (r *Registry) MaxTotal() float64 {
	var total float64
	for _, rule := range r.Rules() {
		total += rule.Max
	}
	return total
}

// Default returns a fresh registry holding every built-in rule.
func Default() *Registry {
	reg := NewRegistry()
	reg.MustRegister(BuiltinRules()...)
	return reg
}
