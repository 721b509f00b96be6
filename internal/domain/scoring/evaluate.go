package scoring

import "github.com/abdidvp/pkgkraft/internal/domain"

// Observer is notified after each rule completes successfully.
type Observer func(rule string, res domain.ScoreResult)

// Evaluate runs every rule in reg against in and aggregates the results.
// The first rule fault aborts the pass; no partial report is returned.
func Evaluate(reg *Registry, in Input, observers ...Observer) (*domain.Report, error) {
	report := domain.NewReport()

	for _, rule := range reg.Rules() {
		res, err := rule.Run(in)
		if err != nil {
			return nil, err
		}
		report.Add(rule.Name, res)
		for _, obs := range observers {
			obs(rule.Name, res)
		}
	}

	return report, nil
}
