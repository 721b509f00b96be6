package scoring

// BuiltinRules returns the standard manifest checks. Their maxima add up to 26.
func BuiltinRules() []Rule {
	return []Rule{
		{
			Name:        RuleNameWithoutNode,
			Max:         1,
			Description: `name has no leading "node-" or trailing "-node" component`,
			Eval:        scoreNameWithoutNode,
		},
		{
			Name:        RuleNameWithoutJS,
			Max:         1,
			Description: `name has no leading "js-" or trailing "-js" component`,
			Eval:        scoreNameWithoutJS,
		},
		{
			Name:        RuleHasRepo,
			Max:         1,
			Description: "repository is declared",
			Eval:        scoreHasRepo,
		},
		{
			Name:        RuleSufficientDescription,
			Max:         2,
			Description: "description is at least 30 characters long",
			Eval:        scoreSufficientDescription,
		},
		{
			Name:        RuleSPDXLicense,
			Max:         4,
			Description: "license is a known SPDX identifier (+3), OSI approved (+1)",
			Eval:        scoreSPDXLicense,
		},
		{
			Name:        RuleValidSemver,
			Max:         6,
			Description: "version is a valid semantic version",
			Eval:        scoreValidSemver,
		},
		{
			Name:        RuleSemverWithBaseValue,
			Max:         3,
			Description: "version is valid and at least 1.0.0",
			Eval:        scoreSemverWithBaseValue,
		},
		{
			Name:        RuleMinimumKeywords,
			Max:         2,
			Description: "at least 3 keywords",
			Eval:        scoreMinimumKeywords,
		},
		{
			Name:        RuleHasAuthor,
			Max:         1,
			Description: "author is an object whose name is longer than 5 characters",
			Eval:        scoreHasAuthor,
		},
		{
			Name:        RuleHasTestScript,
			Max:         5,
			Description: "scripts.test is a non-empty command",
			Eval:        scoreHasTestScript,
		},
	}
}
