package scoring

import (
	"errors"
	"regexp"
)

const (
	RuleNameWithoutNode = "packagename_does_not_include_node"
	RuleNameWithoutJS   = "packagename_does_not_include_js"
)

// errMissingName faults the naming rules: a manifest without a string name is
// not something they can judge.
var errMissingName = errors.New("manifest has no string name field")

// Ecosystem words are redundant in a package name: the registry already says
// what the package is for. Only a leading or trailing component counts.
var (
	nodeComponent = regexp.MustCompile(`(?:^node[-_]|[-_]node$)`)
	jsComponent   = regexp.MustCompile(`(?:^js[-_]|[-_]js$)`)
)

func scoreNameWithoutNode(in Input) (float64, error) {
	return scoreNameWithout(in, nodeComponent)
}

func scoreNameWithoutJS(in Input) (float64, error) {
	return scoreNameWithout(in, jsComponent)
}

func scoreNameWithout(in Input, component *regexp.Regexp) (float64, error) {
	name, ok := in.Manifest.String("name")
	if !ok {
		return 0, errMissingName
	}
	if component.MatchString(name) {
		return 0, nil
	}
	return 1, nil
}
