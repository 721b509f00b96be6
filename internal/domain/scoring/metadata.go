package scoring

import "unicode/utf8"

const (
	RuleHasRepo               = "package_has_repo"
	RuleSufficientDescription = "package_has_sufficient_description"
	RuleMinimumKeywords       = "package_has_minimum_keywords"
	RuleHasAuthor             = "package_has_author"
	RuleHasTestScript         = "package_has_test_script"
)

const (
	minDescriptionLength = 30
	minKeywords          = 3
	minAuthorNameLength  = 6
)

// scoreHasRepo: any truthy repository value counts. Reachability of the
// repository is not checked.
func scoreHasRepo(in Input) (float64, error) {
	if in.Manifest.Truthy("repository") {
		return 1, nil
	}
	return 0, nil
}

// scoreSufficientDescription: all or nothing at 30 characters.
func scoreSufficientDescription(in Input) (float64, error) {
	desc, ok := in.Manifest.String("description")
	if !ok || utf8.RuneCountInString(desc) < minDescriptionLength {
		return 0, nil
	}
	return 2, nil
}

func scoreMinimumKeywords(in Input) (float64, error) {
	keywords, ok := in.Manifest.List("keywords")
	if !ok || len(keywords) < minKeywords {
		return 0, nil
	}
	return 2, nil
}

// scoreHasAuthor requires the structured form {"name": ...}; the
// "Name <email> (url)" shorthand string earns nothing.
func scoreHasAuthor(in Input) (float64, error) {
	author, ok := in.Manifest.Object("author")
	if !ok {
		return 0, nil
	}
	name, ok := author["name"].(string)
	if !ok || utf8.RuneCountInString(name) < minAuthorNameLength {
		return 0, nil
	}
	return 1, nil
}

func scoreHasTestScript(in Input) (float64, error) {
	scripts, ok := in.Manifest.Object("scripts")
	if !ok {
		return 0, nil
	}
	test, ok := scripts["test"].(string)
	if !ok || test == "" {
		return 0, nil
	}
	return 5, nil
}
